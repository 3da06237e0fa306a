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

package container

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/internal/httpjson"
)

type Server struct {
	logger   *slog.Logger
	service  Service
	publicIP string
}

// NewServer returns the provisioning api called by the control plane.
// publicIP is reported back for every started container.
func NewServer(logger *slog.Logger, service Service, publicIP string) *Server {
	return &Server{
		logger:   logger.With("component", "container-server"),
		service:  service,
		publicIP: publicIP,
	}
}

func (s *Server) Register(r *mux.Router) {
	r.HandleFunc("/createContainer", s.CreateContainer).Methods(http.MethodPost)
	r.HandleFunc("/startContainer/{containerId}", s.StartContainer).Methods(http.MethodPost)
	r.HandleFunc("/isPortAvailable", s.IsPortAvailable).Methods(http.MethodPost)
}

func (s *Server) CreateContainer(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		s.error(r.Context(), w, err)
		return
	}

	if err := req.validate(); err != nil {
		s.error(r.Context(), w, err)
		return
	}

	id, err := s.service.CreateContainer(r.Context(), req.ImageName, req.Port)
	if err != nil {
		s.error(r.Context(), w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, createResponse{
		ContainerID: id,
	})
}

func (s *Server) StartContainer(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := httpjson.Decode(r, &req); err != nil {
		s.error(r.Context(), w, err)
		return
	}

	if err := req.validate(); err != nil {
		s.error(r.Context(), w, err)
		return
	}

	if err := s.service.StartContainer(
		r.Context(),
		mux.Vars(r)["containerId"],
		req.ServerID,
		req.HeartbeatEndpoint,
		req.Port,
	); err != nil {
		s.error(r.Context(), w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, startResponse{
		PublicIP: s.publicIP,
	})
}

func (s *Server) IsPortAvailable(w http.ResponseWriter, r *http.Request) {
	var req portRequest
	if err := httpjson.Decode(r, &req); err != nil {
		s.error(r.Context(), w, err)
		return
	}

	if req.Port < 1 || req.Port > 65535 {
		s.error(r.Context(), w, apierrs.Validation(apierrs.FieldViolation{
			Field:       "port",
			Description: "must be a port number",
		}))
		return
	}

	httpjson.Write(w, http.StatusOK, portResponse{
		IsPortAvailable: s.service.IsPortAvailable(r.Context(), req.Port),
	})
}

func (s *Server) error(ctx context.Context, w http.ResponseWriter, err error) {
	if apierrs.From(err).Code == apierrs.CodeInternal {
		s.logger.ErrorContext(ctx, "request failed", "err", err)
	}
	httpjson.Error(w, err)
}
