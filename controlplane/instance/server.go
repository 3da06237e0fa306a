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
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/internal/httpjson"
)

type Server struct {
	logger  *slog.Logger
	service Service
}

func NewServer(logger *slog.Logger, service Service) *Server {
	return &Server{
		logger:  logger.With("component", "instance-server"),
		service: service,
	}
}

func (s *Server) Register(r *mux.Router) {
	r.HandleFunc("/requestMultiplayerServer", s.RequestMultiplayerServer).Methods(http.MethodPost)
	r.HandleFunc("/v1/sessionHosts/{serverId}", s.Heartbeat).Methods(http.MethodPatch)
	r.HandleFunc("/terminateGameServerInstance/{serverId}", s.TerminateGameServerInstance).Methods(http.MethodPost)
	r.HandleFunc("/gameServerInstances", s.ListGameServerInstances).Methods(http.MethodGet)
}

func (s *Server) RequestMultiplayerServer(w http.ResponseWriter, r *http.Request) {
	var req requestServerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, err)
		return
	}

	if err := req.validate(); err != nil {
		httpjson.Error(w, err)
		return
	}

	alloc, err := s.service.RequestServer(r.Context(), req.toDomain())
	if err != nil {
		s.error(r.Context(), w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, allocationToTransport(alloc))
}

func (s *Server) Heartbeat(w http.ResponseWriter, r *http.Request) {
	serverID := mux.Vars(r)["serverId"]

	var req heartbeatRequest
	err := httpjson.Decode(r, &req)
	if err == nil {
		err = req.validate()
	}

	if err != nil {
		// unknown servers are reported before problems with the body
		if _, lookupErr := s.service.GetInstance(r.Context(), serverID); lookupErr != nil {
			s.error(r.Context(), w, lookupErr)
			return
		}
		httpjson.Error(w, err)
		return
	}

	resp, err := s.service.Heartbeat(r.Context(), serverID, req.toDomain())
	if err != nil {
		s.error(r.Context(), w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, heartbeatToTransport(resp))
}

func (s *Server) TerminateGameServerInstance(w http.ResponseWriter, r *http.Request) {
	if err := s.service.TerminateInstance(r.Context(), mux.Vars(r)["serverId"]); err != nil {
		s.error(r.Context(), w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, terminateResponse{Success: true})
}

func (s *Server) ListGameServerInstances(w http.ResponseWriter, r *http.Request) {
	instances, err := s.service.ListInstances(r.Context())
	if err != nil {
		s.error(r.Context(), w, err)
		return
	}

	transport := make([]Transport, 0, len(instances))
	for _, ins := range instances {
		transport = append(transport, ToTransport(ins))
	}

	httpjson.Write(w, http.StatusOK, transport)
}

// error renders err and logs it if it is not an api error, because
// those details never reach the caller.
func (s *Server) error(ctx context.Context, w http.ResponseWriter, err error) {
	if e := apierrs.From(err); e.Code == apierrs.CodeInternal {
		s.logger.ErrorContext(ctx, "request failed", "err", err)
	}
	httpjson.Error(w, err)
}
