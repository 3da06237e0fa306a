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

import "time"

// Status is the lifecycle state of an instance as persisted by the control
// plane. it only ever advances in the order the constants are declared.
type Status string

const (
	StatusStandingBy Status = "StandingBy"
	StatusActive     Status = "Active"
	StatusTerminated Status = "Terminated"
)

func (s Status) rank() int {
	switch s {
	case StatusStandingBy:
		return 1
	case StatusActive:
		return 2
	case StatusTerminated:
		return 3
	default:
		return 0
	}
}

// Before reports whether s comes earlier in the lifecycle than other.
func (s Status) Before(other Status) bool {
	return s.rank() < other.rank()
}

// GameState is the state a game server process reports in its heartbeat.
// the spelling of the values is part of the gsdk wire format.
type GameState string

const (
	GameStateInvalid      GameState = "Invalid"
	GameStateInitializing GameState = "Initializing"
	GameStateStandingBy   GameState = "StandingBy"
	GameStateActive       GameState = "Active"
	GameStateTerminating  GameState = "Terminating"
	GameStateTerminated   GameState = "Terminated"
	GameStateQuarentined  GameState = "Quarentined"
)

func (g GameState) Valid() bool {
	switch g {
	case GameStateInvalid,
		GameStateInitializing,
		GameStateStandingBy,
		GameStateActive,
		GameStateTerminating,
		GameStateTerminated,
		GameStateQuarentined:
		return true
	}
	return false
}

// Operation tells the game server process what to do next.
type Operation string

const (
	OperationInvalid   Operation = "Invalid"
	OperationContinue  Operation = "Continue"
	OperationActive    Operation = "Active"
	OperationTerminate Operation = "Terminate"
)

// SessionConfig is handed to the game server process once it is
// told to become active.
type SessionConfig struct {
	SessionID      string            `json:"sessionId"`
	SessionCookie  string            `json:"sessionCookie"`
	InitialPlayers []string          `json:"initialPlayers,omitempty"`
	Metadata       map[string]string `json:"metadata"`
}

type Instance struct {
	// ServerID is the id of the container as reported by the agent.
	ServerID      string
	AgentID       int64
	BuildID       string
	Port          string
	SessionConfig SessionConfig
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ConnectedPlayer struct {
	PlayerID string
}

type Heartbeat struct {
	CurrentGameState  GameState
	CurrentGameHealth string
	CurrentPlayers    []ConnectedPlayer
}

type HeartbeatResponse struct {
	Operation Operation
	// SessionConfig is only set if Operation is [OperationActive].
	SessionConfig *SessionConfig
}

type AllocationRequest struct {
	BuildID          string
	SessionID        string
	SessionCookie    string
	PreferredRegions []string
	InitialPlayers   []string
}

type Allocation struct {
	ServerID                string
	BuildID                 string
	SessionID               string
	IPv4Address             string
	Port                    string
	LastStateTransitionTime time.Time
}
