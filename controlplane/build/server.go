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

package build

import (
	"net/http"

	"github.com/gorilla/mux"
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
	r.HandleFunc("/build", s.CreateBuild).Methods(http.MethodPost)
	r.HandleFunc("/build", s.ListBuilds).Methods(http.MethodGet)
	r.HandleFunc("/build/{buildId}", s.GetBuild).Methods(http.MethodGet)
	r.HandleFunc("/build/{buildId}", s.UpdateBuild).Methods(http.MethodPatch)
	r.HandleFunc("/build/{buildId}", s.DeleteBuild).Methods(http.MethodDelete)
}

func (s *Server) CreateBuild(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.DecodeStrict(r, &req); err != nil {
		httpjson.Error(w, err)
		return
	}

	b, err := s.service.CreateBuild(r.Context(), Build{
		BuildID:   req.BuildID,
		ImageName: req.ImageName,
	})
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	httpjson.Write(w, http.StatusCreated, ToTransport(b))
}

func (s *Server) ListBuilds(w http.ResponseWriter, r *http.Request) {
	builds, err := s.service.ListBuilds(r.Context())
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	transport := make([]Transport, 0, len(builds))
	for _, b := range builds {
		transport = append(transport, ToTransport(b))
	}

	httpjson.Write(w, http.StatusOK, transport)
}

func (s *Server) GetBuild(w http.ResponseWriter, r *http.Request) {
	b, err := s.service.GetBuild(r.Context(), mux.Vars(r)["buildId"])
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, ToTransport(b))
}

func (s *Server) UpdateBuild(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := httpjson.DecodeStrict(r, &req); err != nil {
		httpjson.Error(w, err)
		return
	}

	b, err := s.service.UpdateBuild(r.Context(), mux.Vars(r)["buildId"], req.ImageName)
	if err != nil {
		httpjson.Error(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, ToTransport(b))
}

func (s *Server) DeleteBuild(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteBuild(r.Context(), mux.Vars(r)["buildId"]); err != nil {
		httpjson.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
