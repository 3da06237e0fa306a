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

package cmd_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/spacechunks/fleet/cli"
	"github.com/spacechunks/fleet/cli/api"
	clicmd "github.com/spacechunks/fleet/cli/cmd"
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

func run(t *testing.T, r *mux.Router, args ...string) (string, error) {
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	root := clicmd.Root(context.Background(), cli.Context{
		Config: cli.DefaultConfig,
		Client: api.NewClient(srv.URL, srv.Client()),
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestBuildList(t *testing.T) {
	var (
		svc = mock.NewMockBuildService(t)
		r   = router.New()
	)

	build.NewServer(svc).Register(r)

	svc.EXPECT().
		ListBuilds(mocky.Anything).
		Return([]build.Build{fixture.Build()}, nil)

	out, err := run(t, r, "build", "list")
	require.NoError(t, err)
	require.Contains(t, out, "BUILD ID")
	require.Contains(t, out, fixture.BuildID)
	require.Contains(t, out, fixture.Build().ImageName)
}

func TestAgentDeleteRejectsNonNumericID(t *testing.T) {
	var (
		svc = mock.NewMockAgentService(t)
		r   = router.New()
	)

	agent.NewServer(svc).Register(r)

	_, err := run(t, r, "agent", "delete", "abc")
	require.ErrorContains(t, err, "agent id must be a number")
}

func TestInstanceList(t *testing.T) {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		svc    = mock.NewMockInstanceService(t)
		r      = router.New()
	)

	instance.NewServer(logger, svc).Register(r)

	svc.EXPECT().
		ListInstances(mocky.Anything).
		Return([]instance.Instance{fixture.Instance()}, nil)

	out, err := run(t, r, "instance", "list")
	require.NoError(t, err)
	require.Contains(t, out, fixture.ServerID[:12])
	require.NotContains(t, out, fixture.ServerID)
	require.Contains(t, out, "StandingBy")
}

func TestInstanceTerminateNotFound(t *testing.T) {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		svc    = mock.NewMockInstanceService(t)
		r      = router.New()
	)

	instance.NewServer(logger, svc).Register(r)

	svc.EXPECT().
		TerminateInstance(mocky.Anything, "unknown").
		Return(apierrs.ErrInstanceNotFound)

	_, err := run(t, r, "instance", "terminate", "unknown")
	require.ErrorContains(t, err, "server not found")
}

func TestAllocateRequiresBuild(t *testing.T) {
	_, err := run(t, router.New(), "allocate")
	require.ErrorContains(t, err, `required flag(s) "build" not set`)
}

func TestAllocate(t *testing.T) {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		svc    = mock.NewMockInstanceService(t)
		r      = router.New()
	)

	instance.NewServer(logger, svc).Register(r)

	svc.EXPECT().
		RequestServer(mocky.Anything, mocky.MatchedBy(func(req instance.AllocationRequest) bool {
			return req.BuildID == fixture.BuildID && req.SessionCookie == "cookie" && req.SessionID != ""
		})).
		Return(instance.Allocation{
			ServerID:    fixture.ServerID,
			BuildID:     fixture.BuildID,
			SessionID:   fixture.SessionID,
			IPv4Address: "198.51.100.1",
			Port:        "30000",
		}, nil)

	out, err := run(t, r, "allocate", "--build", fixture.BuildID, "--session-cookie", "cookie")
	require.NoError(t, err)
	require.Contains(t, out, "198.51.100.1")
	require.Contains(t, out, "gameport 30000/TCP")
}
