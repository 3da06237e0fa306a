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

package agent

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/internal/httpjson"
)

type Server struct {
	service Service
}

func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

func (s *Server) Register(r *mux.Router) {
	r.HandleFunc("/agent", s.CreateAgent).Methods(http.MethodPost)
	r.HandleFunc("/agent", s.ListAgents).Methods(http.MethodGet)
	r.HandleFunc("/agent/{id}", s.GetAgent).Methods(http.MethodGet)
	r.HandleFunc("/agent/{id}", s.UpdateAgent).Methods(http.MethodPatch)
	r.HandleFunc("/agent/{id}", s.DeleteAgent).Methods(http.MethodDelete)
}

func (s *Server) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req hostRequest
	if err := httpjson.DecodeStrict(r, &req); err != nil {
		httpjson.Error(w, err)
		return
	}

	a, err := s.service.CreateAgent(r.Context(), req.Host)
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	httpjson.Write(w, http.StatusCreated, ToTransport(a))
}

func (s *Server) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := s.service.ListAgents(r.Context())
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	transport := make([]Transport, 0, len(agents))
	for _, a := range agents {
		transport = append(transport, ToTransport(a))
	}

	httpjson.Write(w, http.StatusOK, transport)
}

func (s *Server) GetAgent(w http.ResponseWriter, r *http.Request) {
	id, err := agentID(r)
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	a, err := s.service.GetAgent(r.Context(), id)
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, ToTransport(a))
}

func (s *Server) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := agentID(r)
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	var req hostRequest
	if err := httpjson.DecodeStrict(r, &req); err != nil {
		httpjson.Error(w, err)
		return
	}

	a, err := s.service.UpdateAgent(r.Context(), id, req.Host)
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, ToTransport(a))
}

func (s *Server) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id, err := agentID(r)
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	if err := s.service.DeleteAgent(r.Context(), id); err != nil {
		httpjson.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func agentID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, apierrs.ErrInvalidAgentID
	}
	return id, nil
}
