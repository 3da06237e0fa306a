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

package instance_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spacechunks/fleet/controlplane/agent"
	"github.com/spacechunks/fleet/controlplane/build"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/internal/mock"
	"github.com/spacechunks/fleet/test/fixture"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	heartbeatEndpoint = "203.0.113.10:9006"
	publicIP          = "198.51.100.1"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newAllocator(
	repo instance.Repository,
	builds build.Service,
	gw agent.Gateway,
	ports instance.PortRange,
	probe bool,
) *instance.Allocator {
	a := instance.NewAllocator(
		slog.New(slog.NewTextHandler(os.Stdout, nil)),
		instance.AllocatorConfig{
			HeartbeatEndpoint: heartbeatEndpoint,
			Ports:             ports,
			ProbePorts:        probe,
		},
		repo,
		builds,
		gw,
		instance.NewMetrics(prometheus.NewRegistry()),
	)
	a.SetClock(func() time.Time { return now })
	return a
}

func allocRequest() instance.AllocationRequest {
	return instance.AllocationRequest{
		BuildID:          fixture.BuildID,
		SessionID:        fixture.SessionID,
		SessionCookie:    "cookie",
		PreferredRegions: []string{"EastUs"},
	}
}

func TestRequestServer(t *testing.T) {
	var (
		ag    = fixture.Agent()
		b     = fixture.Build()
		ports = instance.PortRange{Start: 30000, End: 30001}
	)

	tests := []struct {
		name      string
		agents    []agent.Agent
		probe     bool
		expected  instance.Allocation
		persisted *instance.Instance
		err       error
		prep      func(*mock.MockBuildService, *mock.MockAgentGateway)
	}{
		{
			name:   "works",
			agents: []agent.Agent{ag},
			probe:  true,
			expected: instance.Allocation{
				ServerID:                "srv-1",
				BuildID:                 b.BuildID,
				SessionID:               fixture.SessionID,
				IPv4Address:             publicIP,
				Port:                    "30000",
				LastStateTransitionTime: now,
			},
			persisted: &instance.Instance{
				ServerID: "srv-1",
				AgentID:  ag.ID,
				BuildID:  b.BuildID,
				Port:     "30000",
				SessionConfig: instance.SessionConfig{
					SessionID:     fixture.SessionID,
					SessionCookie: "cookie",
					Metadata: map[string]string{
						"gamePort": "30000",
					},
				},
				Status:    instance.StatusStandingBy,
				CreatedAt: now,
				UpdatedAt: now,
			},
			prep: func(builds *mock.MockBuildService, gw *mock.MockAgentGateway) {
				builds.EXPECT().
					GetBuild(mocky.Anything, b.BuildID).
					Return(b, nil)
				gw.EXPECT().
					IsPortAvailable(mocky.Anything, ag, 30000).
					Return(true)
				gw.EXPECT().
					CreateContainer(mocky.Anything, ag, b.ImageName, "30000").
					Return("srv-1", nil)
				gw.EXPECT().
					StartContainer(mocky.Anything, ag, "srv-1", heartbeatEndpoint, "srv-1", "30000").
					Return(publicIP, nil)
			},
		},
		{
			name:   "skips ports the agent reports as bound",
			agents: []agent.Agent{ag},
			probe:  true,
			expected: instance.Allocation{
				ServerID:                "srv-1",
				BuildID:                 b.BuildID,
				SessionID:               fixture.SessionID,
				IPv4Address:             publicIP,
				Port:                    "30001",
				LastStateTransitionTime: now,
			},
			prep: func(builds *mock.MockBuildService, gw *mock.MockAgentGateway) {
				builds.EXPECT().
					GetBuild(mocky.Anything, b.BuildID).
					Return(b, nil)
				gw.EXPECT().
					IsPortAvailable(mocky.Anything, ag, 30000).
					Return(false)
				gw.EXPECT().
					IsPortAvailable(mocky.Anything, ag, 30001).
					Return(true)
				gw.EXPECT().
					CreateContainer(mocky.Anything, ag, b.ImageName, "30001").
					Return("srv-1", nil)
				gw.EXPECT().
					StartContainer(mocky.Anything, ag, "srv-1", heartbeatEndpoint, "srv-1", "30001").
					Return(publicIP, nil)
			},
		},
		{
			name:   "build not found",
			agents: []agent.Agent{ag},
			err:    apierrs.ErrBuildNotFound,
			prep: func(builds *mock.MockBuildService, _ *mock.MockAgentGateway) {
				builds.EXPECT().
					GetBuild(mocky.Anything, b.BuildID).
					Return(build.Build{}, apierrs.ErrBuildNotExists)
			},
		},
		{
			name: "no agents",
			err:  apierrs.ErrNoAgentsAvailable,
			prep: func(builds *mock.MockBuildService, _ *mock.MockAgentGateway) {
				builds.EXPECT().
					GetBuild(mocky.Anything, b.BuildID).
					Return(b, nil)
			},
		},
		{
			name:   "no ports",
			agents: []agent.Agent{ag},
			probe:  true,
			err:    apierrs.ErrNoPortsAvailable,
			prep: func(builds *mock.MockBuildService, gw *mock.MockAgentGateway) {
				builds.EXPECT().
					GetBuild(mocky.Anything, b.BuildID).
					Return(b, nil)
				gw.EXPECT().
					IsPortAvailable(mocky.Anything, ag, mocky.Anything).
					Return(false).
					Times(2)
			},
		},
		{
			name:   "container creation fails",
			agents: []agent.Agent{ag},
			err:    apierrs.ErrContainerCreateFailed,
			prep: func(builds *mock.MockBuildService, gw *mock.MockAgentGateway) {
				builds.EXPECT().
					GetBuild(mocky.Anything, b.BuildID).
					Return(b, nil)
				gw.EXPECT().
					CreateContainer(mocky.Anything, ag, b.ImageName, "30000").
					Return("", fmt.Errorf("%w: boom", agent.ErrRequestFailed))
			},
		},
		{
			name:   "container start fails",
			agents: []agent.Agent{ag},
			err:    apierrs.ErrContainerStartFailed,
			persisted: &instance.Instance{
				ServerID: "srv-1",
				AgentID:  ag.ID,
				BuildID:  b.BuildID,
				Port:     "30000",
				SessionConfig: instance.SessionConfig{
					SessionID:     fixture.SessionID,
					SessionCookie: "cookie",
					Metadata: map[string]string{
						"gamePort": "30000",
					},
				},
				Status:    instance.StatusStandingBy,
				CreatedAt: now,
				UpdatedAt: now,
			},
			prep: func(builds *mock.MockBuildService, gw *mock.MockAgentGateway) {
				builds.EXPECT().
					GetBuild(mocky.Anything, b.BuildID).
					Return(b, nil)
				gw.EXPECT().
					CreateContainer(mocky.Anything, ag, b.ImageName, "30000").
					Return("srv-1", nil)
				gw.EXPECT().
					StartContainer(mocky.Anything, ag, "srv-1", heartbeatEndpoint, "srv-1", "30000").
					Return("", fmt.Errorf("%w: boom", agent.ErrRequestFailed))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				ctx    = context.Background()
				repo   = newMemRepo(tt.agents...)
				builds = mock.NewMockBuildService(t)
				gw     = mock.NewMockAgentGateway(t)
				alloc  = newAllocator(repo, builds, gw, ports, tt.probe)
			)

			tt.prep(builds, gw)

			actual, err := alloc.RequestServer(ctx, allocRequest())

			if tt.persisted != nil {
				if d := cmp.Diff(*tt.persisted, repo.get(tt.persisted.ServerID)); d != "" {
					t.Fatalf("persisted instance mismatch (-want +got):\n%s", d)
				}
			}

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				if tt.persisted == nil {
					instances, err := repo.ListUnterminatedInstances(ctx)
					require.NoError(t, err)
					require.Empty(t, instances)
				}
				return
			}

			require.NoError(t, err)
			if d := cmp.Diff(tt.expected, actual); d != "" {
				t.Fatalf("RequestServer() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestRequestServerFillsAgentsInOrder(t *testing.T) {
	var (
		ctx    = context.Background()
		first  = fixture.Agent()
		second = fixture.Agent(func(a *agent.Agent) {
			a.ID = 2
			a.Host = "http://198.51.100.2:9007"
		})
		b       = fixture.Build()
		repo    = newMemRepo(first, second)
		builds  = mock.NewMockBuildService(t)
		gw      = mock.NewMockAgentGateway(t)
		alloc   = newAllocator(repo, builds, gw, instance.PortRange{Start: 5000, End: 5001}, false)
		counter atomic.Int32
	)

	builds.EXPECT().
		GetBuild(mocky.Anything, b.BuildID).
		Return(b, nil)

	gw.EXPECT().
		CreateContainer(mocky.Anything, mocky.Anything, b.ImageName, mocky.Anything).
		RunAndReturn(func(context.Context, agent.Agent, string, string) (string, error) {
			return fmt.Sprintf("srv-%d", counter.Add(1)), nil
		})

	gw.EXPECT().
		StartContainer(mocky.Anything, mocky.Anything, mocky.Anything, heartbeatEndpoint, mocky.Anything, mocky.Anything).
		Return(publicIP, nil)

	expected := []struct {
		agentID int64
		port    string
	}{
		{agentID: first.ID, port: "5000"},
		{agentID: first.ID, port: "5001"},
		{agentID: second.ID, port: "5000"},
		{agentID: second.ID, port: "5001"},
	}

	for _, e := range expected {
		a, err := alloc.RequestServer(ctx, allocRequest())
		require.NoError(t, err)
		require.Equal(t, e.port, a.Port)
		require.Equal(t, e.agentID, repo.get(a.ServerID).AgentID)
	}

	_, err := alloc.RequestServer(ctx, allocRequest())
	require.ErrorIs(t, err, apierrs.ErrNoAgentsAvailable)
	require.Equal(t, apierrs.CodeCapacityExhausted, apierrs.From(err).Code)
}

func TestRequestServerConcurrent(t *testing.T) {
	const (
		requests = 12
		capacity = 4
	)

	var (
		ctx     = context.Background()
		ag      = fixture.Agent()
		b       = fixture.Build()
		repo    = newMemRepo(ag)
		builds  = mock.NewMockBuildService(t)
		gw      = mock.NewMockAgentGateway(t)
		alloc   = newAllocator(repo, builds, gw, instance.PortRange{Start: 30000, End: 30000 + capacity - 1}, false)
		counter atomic.Int32
	)

	builds.EXPECT().
		GetBuild(mocky.Anything, b.BuildID).
		Return(b, nil)

	gw.EXPECT().
		CreateContainer(mocky.Anything, ag, b.ImageName, mocky.Anything).
		RunAndReturn(func(context.Context, agent.Agent, string, string) (string, error) {
			// widen the window in which a second allocation could interleave
			time.Sleep(5 * time.Millisecond)
			return fmt.Sprintf("srv-%d", counter.Add(1)), nil
		})

	gw.EXPECT().
		StartContainer(mocky.Anything, ag, mocky.Anything, heartbeatEndpoint, mocky.Anything, mocky.Anything).
		Return(publicIP, nil)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allocs  []instance.Allocation
		failed  []error
		barrier = make(chan struct{})
	)

	for range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-barrier
			a, err := alloc.RequestServer(ctx, allocRequest())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, err)
				return
			}
			allocs = append(allocs, a)
		}()
	}

	close(barrier)
	wg.Wait()

	require.Len(t, allocs, capacity)
	require.Len(t, failed, requests-capacity)

	for _, err := range failed {
		require.Equal(t, apierrs.CodeCapacityExhausted, apierrs.From(err).Code)
	}

	ports := make(map[string]struct{})
	for _, a := range allocs {
		ports[a.Port] = struct{}{}
	}
	require.Len(t, ports, capacity)
}

func TestRequestServerWaitingCallerGivesUp(t *testing.T) {
	var (
		ag      = fixture.Agent()
		b       = fixture.Build()
		repo    = newMemRepo(ag)
		builds  = mock.NewMockBuildService(t)
		gw      = mock.NewMockAgentGateway(t)
		alloc   = newAllocator(repo, builds, gw, instance.PortRange{Start: 30000, End: 30009}, false)
		entered = make(chan struct{})
		release = make(chan struct{})
		done    = make(chan error)
	)

	builds.EXPECT().
		GetBuild(mocky.Anything, b.BuildID).
		Return(b, nil).
		Once()

	gw.EXPECT().
		CreateContainer(mocky.Anything, ag, b.ImageName, "30000").
		RunAndReturn(func(context.Context, agent.Agent, string, string) (string, error) {
			close(entered)
			<-release
			return "srv-1", nil
		}).
		Once()

	gw.EXPECT().
		StartContainer(mocky.Anything, ag, "srv-1", heartbeatEndpoint, "srv-1", "30000").
		Return(publicIP, nil).
		Once()

	go func() {
		_, err := alloc.RequestServer(context.Background(), allocRequest())
		done <- err
	}()

	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := alloc.RequestServer(ctx, allocRequest())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, <-done)
}

func TestRequestServerCompletesAfterCallerLeft(t *testing.T) {
	var (
		ag          = fixture.Agent()
		b           = fixture.Build()
		repo        = newMemRepo(ag)
		builds      = mock.NewMockBuildService(t)
		gw          = mock.NewMockAgentGateway(t)
		alloc       = newAllocator(repo, builds, gw, instance.PortRange{Start: 30000, End: 30009}, false)
		ctx, cancel = context.WithCancel(context.Background())
	)
	defer cancel()

	builds.EXPECT().
		GetBuild(mocky.Anything, b.BuildID).
		Return(b, nil)

	gw.EXPECT().
		CreateContainer(mocky.Anything, ag, b.ImageName, "30000").
		RunAndReturn(func(context.Context, agent.Agent, string, string) (string, error) {
			cancel()
			return "srv-1", nil
		})

	gw.EXPECT().
		StartContainer(mocky.Anything, ag, "srv-1", heartbeatEndpoint, "srv-1", "30000").
		RunAndReturn(func(ctx context.Context, _ agent.Agent, _, _, _, _ string) (string, error) {
			if ctx.Err() != nil {
				return "", errors.New("context canceled inside critical section")
			}
			return publicIP, nil
		})

	actual, err := alloc.RequestServer(ctx, allocRequest())
	require.NoError(t, err)
	require.Equal(t, "srv-1", actual.ServerID)
	require.Equal(t, instance.StatusStandingBy, repo.get("srv-1").Status)
}
