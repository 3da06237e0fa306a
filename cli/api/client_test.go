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

package api_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spacechunks/fleet/cli/api"
	"github.com/spacechunks/fleet/controlplane/agent"
	"github.com/spacechunks/fleet/controlplane/build"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/internal/mock"
	"github.com/spacechunks/fleet/internal/router"
	"github.com/spacechunks/fleet/test/fixture"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type env struct {
	client    *api.Client
	builds    *mock.MockBuildService
	agents    *mock.MockAgentService
	instances *mock.MockInstanceService
}

func newEnv(t *testing.T) env {
	var (
		logger    = slog.New(slog.NewTextHandler(os.Stdout, nil))
		builds    = mock.NewMockBuildService(t)
		agents    = mock.NewMockAgentService(t)
		instances = mock.NewMockInstanceService(t)
		r         = router.New()
	)

	build.NewServer(builds).Register(r)
	agent.NewServer(agents).Register(r)
	instance.NewServer(logger, instances).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return env{
		client:    api.NewClient(srv.URL+"/", srv.Client()),
		builds:    builds,
		agents:    agents,
		instances: instances,
	}
}

func TestBuilds(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t)
		b   = fixture.Build()
	)

	e.builds.EXPECT().
		CreateBuild(mocky.Anything, build.Build{BuildID: b.BuildID, ImageName: b.ImageName}).
		Return(b, nil)
	e.builds.EXPECT().
		ListBuilds(mocky.Anything).
		Return([]build.Build{b}, nil)
	e.builds.EXPECT().
		DeleteBuild(mocky.Anything, b.BuildID).
		Return(nil)

	created, err := e.client.CreateBuild(ctx, b.BuildID, b.ImageName)
	require.NoError(t, err)
	require.Equal(t, build.ToTransport(b).BuildID, created.BuildID)

	l, err := e.client.ListBuilds(ctx)
	require.NoError(t, err)

	if d := cmp.Diff([]build.Transport{build.ToTransport(b)}, l); d != "" {
		t.Fatalf("ListBuilds() mismatch (-want +got):\n%s", d)
	}

	require.NoError(t, e.client.DeleteBuild(ctx, b.BuildID))
}

func TestAgents(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t)
		a   = fixture.Agent()
	)

	e.agents.EXPECT().
		CreateAgent(mocky.Anything, a.Host).
		Return(a, nil)
	e.agents.EXPECT().
		ListAgents(mocky.Anything).
		Return([]agent.Agent{a}, nil)
	e.agents.EXPECT().
		DeleteAgent(mocky.Anything, a.ID).
		Return(nil)

	created, err := e.client.CreateAgent(ctx, a.Host)
	require.NoError(t, err)
	require.Equal(t, a.ID, created.ID)

	l, err := e.client.ListAgents(ctx)
	require.NoError(t, err)

	if d := cmp.Diff([]agent.Transport{agent.ToTransport(a)}, l); d != "" {
		t.Fatalf("ListAgents() mismatch (-want +got):\n%s", d)
	}

	require.NoError(t, e.client.DeleteAgent(ctx, a.ID))
}

func TestRequestServer(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t)
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	)

	e.instances.EXPECT().
		RequestServer(mocky.Anything, instance.AllocationRequest{
			BuildID:          fixture.BuildID,
			SessionID:        fixture.SessionID,
			SessionCookie:    "cookie",
			PreferredRegions: []string{},
		}).
		Return(instance.Allocation{
			ServerID:                fixture.ServerID,
			BuildID:                 fixture.BuildID,
			SessionID:               fixture.SessionID,
			IPv4Address:             "198.51.100.1",
			Port:                    "30000",
			LastStateTransitionTime: now,
		}, nil)

	a, err := e.client.RequestServer(ctx, fixture.BuildID, fixture.SessionID, "cookie", nil)
	require.NoError(t, err)

	expected := api.Allocation{
		ServerID:    fixture.ServerID,
		IPv4Address: "198.51.100.1",
		Ports: []api.Port{
			{
				Name:     "gameport",
				Num:      30000,
				Protocol: "TCP",
			},
		},
		LastStateTransitionTime: now,
		BuildID:                 fixture.BuildID,
		SessionID:               fixture.SessionID,
		State:                   "StandingBy",
	}

	if d := cmp.Diff(expected, a); d != "" {
		t.Fatalf("RequestServer() mismatch (-want +got):\n%s", d)
	}
}

func TestInstances(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t)
		ins = fixture.Instance()
	)

	e.instances.EXPECT().
		ListInstances(mocky.Anything).
		Return([]instance.Instance{ins}, nil)
	e.instances.EXPECT().
		TerminateInstance(mocky.Anything, ins.ServerID).
		Return(nil)

	l, err := e.client.ListInstances(ctx)
	require.NoError(t, err)

	if d := cmp.Diff([]instance.Transport{instance.ToTransport(ins)}, l); d != "" {
		t.Fatalf("ListInstances() mismatch (-want +got):\n%s", d)
	}

	require.NoError(t, e.client.TerminateInstance(ctx, ins.ServerID))
}

func TestErrorsAreDecoded(t *testing.T) {
	var (
		ctx = context.Background()
		e   = newEnv(t)
	)

	e.instances.EXPECT().
		RequestServer(mocky.Anything, mocky.Anything).
		Return(instance.Allocation{}, apierrs.ErrNoAgentsAvailable)
	e.instances.EXPECT().
		TerminateInstance(mocky.Anything, "unknown").
		Return(apierrs.ErrInstanceNotFound)

	_, err := e.client.RequestServer(ctx, fixture.BuildID, fixture.SessionID, "", nil)
	require.ErrorIs(t, err, apierrs.ErrNoAgentsAvailable)
	require.Equal(t, apierrs.RetryLater, apierrs.From(err).Code.Retry())

	err = e.client.TerminateInstance(ctx, "unknown")
	require.ErrorIs(t, err, apierrs.ErrInstanceNotFound)
}
