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
	"context"
	"fmt"
	"net/url"

	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

type Service interface {
	CreateAgent(ctx context.Context, host string) (Agent, error)
	GetAgent(ctx context.Context, id int64) (Agent, error)
	ListAgents(ctx context.Context) ([]Agent, error)
	UpdateAgent(ctx context.Context, id int64, host string) (Agent, error)
	DeleteAgent(ctx context.Context, id int64) error
}

type svc struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &svc{
		repo: repo,
	}
}

func (s *svc) CreateAgent(ctx context.Context, host string) (Agent, error) {
	if err := validateHost(host); err != nil {
		return Agent{}, err
	}

	a, err := s.repo.CreateAgent(ctx, Agent{Host: host})
	if err != nil {
		return Agent{}, fmt.Errorf("create agent: %w", err)
	}
	return a, nil
}

func (s *svc) GetAgent(ctx context.Context, id int64) (Agent, error) {
	a, err := s.repo.GetAgent(ctx, id)
	if err != nil {
		return Agent{}, err
	}
	return a, nil
}

func (s *svc) ListAgents(ctx context.Context) ([]Agent, error) {
	l, err := s.repo.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *svc) UpdateAgent(ctx context.Context, id int64, host string) (Agent, error) {
	if err := validateHost(host); err != nil {
		return Agent{}, err
	}

	a, err := s.repo.UpdateAgent(ctx, Agent{
		ID:   id,
		Host: host,
	})
	if err != nil {
		return Agent{}, fmt.Errorf("update agent: %w", err)
	}
	return a, nil
}

func (s *svc) DeleteAgent(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAgent(ctx, id); err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	return nil
}

// validateHost makes sure the host can be used as base url by the gateway.
func validateHost(host string) error {
	u, err := url.Parse(host)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apierrs.Validation(apierrs.FieldViolation{
			Field:       "host",
			Description: "must be an absolute http(s) url",
		})
	}
	return nil
}
