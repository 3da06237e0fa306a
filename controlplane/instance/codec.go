/*
 Fleet, an orchestrator for ephemeral multiplayer game servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package instance

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

// request and response bodies of the playfab multiplayer api
// and the gsdk heartbeat protocol.

const (
	gamePortName     = "gameport"
	gamePortProtocol = "TCP"
)

type requestServerRequest struct {
	PreferredRegions []string `json:"PreferredRegions"`
	SessionID        string   `json:"SessionId"`
	BuildID          string   `json:"BuildId"`
	SessionCookie    string   `json:"SessionCookie"`
	InitialPlayers   []string `json:"InitialPlayers"`
}

func (r requestServerRequest) validate() error {
	var violations []apierrs.FieldViolation

	if r.PreferredRegions == nil {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "PreferredRegions",
			Description: "is required",
		})
	}

	if err := uuid.Validate(r.SessionID); err != nil {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "SessionId",
			Description: "must be a uuid",
		})
	}

	if strings.TrimSpace(r.BuildID) == "" {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "BuildId",
			Description: "must not be empty",
		})
	}

	if len(violations) > 0 {
		return apierrs.Validation(violations...)
	}
	return nil
}

func (r requestServerRequest) toDomain() AllocationRequest {
	return AllocationRequest{
		BuildID:          r.BuildID,
		SessionID:        r.SessionID,
		SessionCookie:    r.SessionCookie,
		PreferredRegions: r.PreferredRegions,
		InitialPlayers:   r.InitialPlayers,
	}
}

type requestServerResponse struct {
	Code   int              `json:"code"`
	Status string           `json:"status,omitempty"`
	Data   *requestedServer `json:"data,omitempty"`
}

type requestedServer struct {
	ServerID                string    `json:"ServerId"`
	IPv4Address             string    `json:"IPV4Address"`
	Ports                   []port    `json:"Ports"`
	LastStateTransitionTime time.Time `json:"LastStateTransitionTime"`
	BuildID                 string    `json:"BuildId"`
	SessionID               string    `json:"SessionId"`
	State                   string    `json:"State"`
}

type port struct {
	Name     string `json:"Name"`
	Num      int    `json:"Num"`
	Protocol string `json:"Protocol"`
}

func allocationToTransport(a Allocation) requestServerResponse {
	// ports are always generated from a numeric range
	num, _ := strconv.Atoi(a.Port)
	return requestServerResponse{
		Code:   http.StatusOK,
		Status: "OK",
		Data: &requestedServer{
			ServerID:    a.ServerID,
			IPv4Address: a.IPv4Address,
			Ports: []port{
				{
					Name:     gamePortName,
					Num:      num,
					Protocol: gamePortProtocol,
				},
			},
			LastStateTransitionTime: a.LastStateTransitionTime,
			BuildID:                 a.BuildID,
			SessionID:               a.SessionID,
			State:                   string(StatusStandingBy),
		},
	}
}

type heartbeatRequest struct {
	CurrentGameState  *GameState        `json:"CurrentGameState"`
	CurrentGameHealth *string           `json:"CurrentGameHealth"`
	CurrentPlayers    []connectedPlayer `json:"CurrentPlayers"`
}

type connectedPlayer struct {
	PlayerID string `json:"PlayerId"`
}

func (r heartbeatRequest) validate() error {
	var violations []apierrs.FieldViolation

	if r.CurrentGameState == nil {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "CurrentGameState",
			Description: "is required",
		})
	} else if !r.CurrentGameState.Valid() {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "CurrentGameState",
			Description: "is not a known game state",
		})
	}

	if r.CurrentGameHealth == nil {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "CurrentGameHealth",
			Description: "is required",
		})
	}

	if r.CurrentPlayers == nil {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "CurrentPlayers",
			Description: "is required",
		})
	}

	if len(violations) > 0 {
		return apierrs.Validation(violations...)
	}
	return nil
}

// toDomain must only be called after validate succeeded.
func (r heartbeatRequest) toDomain() Heartbeat {
	players := make([]ConnectedPlayer, 0, len(r.CurrentPlayers))
	for _, p := range r.CurrentPlayers {
		players = append(players, ConnectedPlayer{PlayerID: p.PlayerID})
	}
	return Heartbeat{
		CurrentGameState:  *r.CurrentGameState,
		CurrentGameHealth: *r.CurrentGameHealth,
		CurrentPlayers:    players,
	}
}

type heartbeatResponse struct {
	Operation     Operation      `json:"operation"`
	SessionConfig *SessionConfig `json:"sessionConfig,omitempty"`
}

func heartbeatToTransport(r HeartbeatResponse) heartbeatResponse {
	return heartbeatResponse{
		Operation:     r.Operation,
		SessionConfig: r.SessionConfig,
	}
}

type terminateResponse struct {
	Success bool `json:"success"`
}

// Transport is the JSON representation of an instance.
type Transport struct {
	ServerID      string        `json:"serverId"`
	AgentID       int64         `json:"agentId"`
	BuildID       string        `json:"buildId"`
	Port          string        `json:"port"`
	SessionConfig SessionConfig `json:"sessionConfig"`
	Status        Status        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func ToTransport(ins Instance) Transport {
	return Transport{
		ServerID:      ins.ServerID,
		AgentID:       ins.AgentID,
		BuildID:       ins.BuildID,
		Port:          ins.Port,
		SessionConfig: ins.SessionConfig,
		Status:        ins.Status,
		CreatedAt:     ins.CreatedAt,
		UpdatedAt:     ins.UpdatedAt,
	}
}
