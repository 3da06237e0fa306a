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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacechunks/fleet/controlplane/agent"
	"github.com/spacechunks/fleet/controlplane/build"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"golang.org/x/sync/semaphore"
)

type AllocatorConfig struct {
	// HeartbeatEndpoint is the address game server processes
	// send their heartbeats to, in the form of ip:port.
	HeartbeatEndpoint string
	Ports             PortRange
	ProbePorts        bool
}

// Allocator places new game server instances on agents.
//
// only one allocation is in flight at any time. the lock is held for the whole
// allocation, including the calls to the agent, because the store is the only
// source of truth for which ports are taken and a concurrent allocation must
// not see a port as free before the instance holding it has been persisted.
type Allocator struct {
	logger   *slog.Logger
	cfg      AllocatorConfig
	repo     Repository
	builds   build.Service
	gateway  agent.Gateway
	capacity *capacity
	metrics  *Metrics
	lock     *semaphore.Weighted
	now      func() time.Time
}

func NewAllocator(
	logger *slog.Logger,
	cfg AllocatorConfig,
	repo Repository,
	builds build.Service,
	gateway agent.Gateway,
	metrics *Metrics,
) *Allocator {
	return &Allocator{
		logger:  logger.With("component", "allocator"),
		cfg:     cfg,
		repo:    repo,
		builds:  builds,
		gateway: gateway,
		capacity: &capacity{
			repo:    repo,
			gateway: gateway,
			ports:   cfg.Ports,
			probe:   cfg.ProbePorts,
		},
		metrics: metrics,
		lock:    semaphore.NewWeighted(1),
		now:     time.Now,
	}
}

// RequestServer allocates a new game server instance for the build.
// if the container was created, but could not be started, the instance
// stays persisted in [StatusStandingBy]. the container itself is never
// removed by the control plane.
func (a *Allocator) RequestServer(ctx context.Context, req AllocationRequest) (Allocation, error) {
	start := a.now()

	alloc, err := a.requestServer(ctx, req)

	a.metrics.allocationDuration.Observe(a.now().Sub(start).Seconds())
	if err != nil {
		a.metrics.allocations.WithLabelValues(string(apierrs.From(err).Code)).Inc()
		return Allocation{}, err
	}

	a.metrics.allocations.WithLabelValues("success").Inc()
	return alloc, nil
}

func (a *Allocator) requestServer(ctx context.Context, req AllocationRequest) (Allocation, error) {
	if err := a.lock.Acquire(ctx, 1); err != nil {
		return Allocation{}, fmt.Errorf("acquire allocation lock: %w", err)
	}
	defer a.lock.Release(1)

	// once we hold the lock the allocation has to run to completion,
	// otherwise a caller going away between creating and persisting
	// would leave a container behind that nobody knows about.
	ctx = context.WithoutCancel(ctx)

	b, err := a.builds.GetBuild(ctx, req.BuildID)
	if err != nil {
		if errors.Is(err, apierrs.ErrBuildNotExists) {
			return Allocation{}, apierrs.ErrBuildNotFound
		}
		return Allocation{}, fmt.Errorf("get build: %w", err)
	}

	ag, err := a.capacity.availableAgent(ctx)
	if err != nil {
		return Allocation{}, fmt.Errorf("available agent: %w", err)
	}

	port, err := a.capacity.allocatePort(ctx, ag)
	if err != nil {
		return Allocation{}, fmt.Errorf("allocate port: %w", err)
	}

	logger := a.logger.With("build_id", b.BuildID, "agent_id", ag.ID, "port", port)

	now := a.now().UTC()
	ins := Instance{
		ServerID: "",
		AgentID:  ag.ID,
		BuildID:  b.BuildID,
		Port:     port,
		SessionConfig: SessionConfig{
			SessionID:      req.SessionID,
			SessionCookie:  req.SessionCookie,
			InitialPlayers: req.InitialPlayers,
			Metadata: map[string]string{
				"gamePort": port,
			},
		},
		Status:    StatusStandingBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	containerID, err := a.gateway.CreateContainer(ctx, ag, b.ImageName, port)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create container", "err", err)
		return Allocation{}, apierrs.ErrContainerCreateFailed
	}

	ins.ServerID = containerID
	logger = logger.With("server_id", containerID)

	created, err := a.repo.CreateInstance(ctx, ins)
	if err != nil {
		return Allocation{}, fmt.Errorf("create instance: %w", err)
	}

	publicIP, err := a.gateway.StartContainer(ctx, ag, containerID, a.cfg.HeartbeatEndpoint, created.ServerID, port)
	if err != nil {
		// no heartbeat will ever arrive, so the reaper marks the
		// instance as terminated once the timeout has passed.
		logger.ErrorContext(ctx, "failed to start container", "err", err)
		return Allocation{}, apierrs.ErrContainerStartFailed
	}

	logger.InfoContext(ctx, "allocated game server", "public_ip", publicIP)

	return Allocation{
		ServerID:                created.ServerID,
		BuildID:                 created.BuildID,
		SessionID:               created.SessionConfig.SessionID,
		IPv4Address:             publicIP,
		Port:                    port,
		LastStateTransitionTime: now,
	}, nil
}
