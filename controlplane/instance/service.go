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
	"fmt"
)

type Service interface {
	RequestServer(ctx context.Context, req AllocationRequest) (Allocation, error)
	Heartbeat(ctx context.Context, serverID string, hb Heartbeat) (HeartbeatResponse, error)
	TerminateInstance(ctx context.Context, serverID string) error
	ListInstances(ctx context.Context) ([]Instance, error)
	GetInstance(ctx context.Context, serverID string) (Instance, error)
}

type svc struct {
	repo      Repository
	allocator *Allocator
	lifecycle *Lifecycle
}

func NewService(repo Repository, allocator *Allocator, lifecycle *Lifecycle) Service {
	return &svc{
		repo:      repo,
		allocator: allocator,
		lifecycle: lifecycle,
	}
}

func (s *svc) RequestServer(ctx context.Context, req AllocationRequest) (Allocation, error) {
	return s.allocator.RequestServer(ctx, req)
}

func (s *svc) Heartbeat(ctx context.Context, serverID string, hb Heartbeat) (HeartbeatResponse, error) {
	return s.lifecycle.HandleHeartbeat(ctx, serverID, hb)
}

func (s *svc) TerminateInstance(ctx context.Context, serverID string) error {
	return s.lifecycle.RequestTermination(ctx, serverID)
}

func (s *svc) ListInstances(ctx context.Context) ([]Instance, error) {
	l, err := s.repo.ListUnterminatedInstances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	return l, nil
}

func (s *svc) GetInstance(ctx context.Context, serverID string) (Instance, error) {
	return s.repo.GetInstance(ctx, serverID)
}
