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

package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/spacechunks/fleet/agentd/container"
	"github.com/spacechunks/fleet/controlplane"
	"github.com/spacechunks/fleet/internal/middleware"
	"github.com/spacechunks/fleet/internal/mock"
	"github.com/spacechunks/fleet/internal/router"
	"github.com/spacechunks/fleet/test"
	"github.com/stretchr/testify/require"
)

const (
	PublicIP      = "127.0.0.1"
	AgentPublicIP = "198.51.100.1"
)

type ControlPlaneRunOption func(*controlplane.Config)

func WithHeartbeatTimeout(d time.Duration) ControlPlaneRunOption {
	return func(cfg *controlplane.Config) {
		cfg.HeartbeatTimeout = d
	}
}

func WithActiveCeiling(d time.Duration) ControlPlaneRunOption {
	return func(cfg *controlplane.Config) {
		cfg.ActiveCeiling = d
	}
}

func WithPortRange(start, end uint16) ControlPlaneRunOption {
	return func(cfg *controlplane.Config) {
		cfg.StartPort = start
		cfg.EndPort = end
	}
}

// RunControlPlane starts postgres and a control plane connected to it.
// it returns the base url of the control plane api.
func RunControlPlane(t *testing.T, pg *Postgres, opts ...ControlPlaneRunOption) string {
	ctx := context.Background()
	pg.Run(t, ctx)

	addr := fmt.Sprintf("%s:%d", PublicIP, test.FreePort(t))

	cfg := controlplane.Config{
		ListenAddr:          addr,
		DBConnString:        pg.ConnString,
		PublicIP:            PublicIP,
		StartPort:           30000,
		EndPort:             30009,
		HeartbeatTimeout:    30 * time.Second,
		ActiveCeiling:       24 * time.Hour,
		ReaperInterval:      100 * time.Millisecond,
		AgentRequestTimeout: 5 * time.Second,
		ProbePorts:          false,
		ShutdownTimeout:     5 * time.Second,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil)).With("service", "control-plane")
		server = controlplane.NewServer(logger, cfg)
	)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	t.Cleanup(func() {
		server.Stop()
		require.NoError(t, <-done)
	})

	test.WaitServerReady(t, "tcp", addr, 20*time.Second)

	return "http://" + addr
}

// RunAgent serves the agent daemon api on top of a mocked container runtime.
// it returns the runtime mock and the url the agent can be registered with.
func RunAgent(t *testing.T) (*mock.MockContainerRuntime, string) {
	var (
		logger  = slog.New(slog.NewTextHandler(os.Stdout, nil)).With("service", "agentd")
		runtime = mock.NewMockContainerRuntime(t)
		r       = router.New()
		svc     = container.NewService(logger, container.Config{
			ConfigDir: t.TempDir(),
			LogsDir:   t.TempDir(),
		}, runtime)
	)

	container.NewServer(logger, svc, AgentPublicIP).Register(r)

	srv := httptest.NewServer(middleware.LogRequests(logger, r))
	t.Cleanup(srv.Close)

	return runtime, srv.URL
}
