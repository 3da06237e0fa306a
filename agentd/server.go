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

package agentd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/docker/docker/client"
	"github.com/hashicorp/go-multierror"
	"github.com/spacechunks/fleet/agentd/container"
	"github.com/spacechunks/fleet/internal/middleware"
	"github.com/spacechunks/fleet/internal/router"
)

const defaultShutdownTimeout = 10 * time.Second

type Server struct {
	logger   *slog.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

func NewServer(logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		stop:   make(chan struct{}),
	}
}

func (s *Server) Run(ctx context.Context, cfg Config) error {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if cfg.DockerHost != "" {
		opts = append(opts, client.WithHost(cfg.DockerHost))
	}

	docker, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return fmt.Errorf("create docker client: %w", err)
	}
	defer docker.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()

	if _, err := docker.Ping(pingCtx); err != nil {
		return fmt.Errorf("ping docker: %w", err)
	}

	var (
		svc = container.NewService(s.logger, container.Config{
			ConfigDir: cfg.ConfigDir,
			LogsDir:   cfg.LogsDir,
		}, container.NewDockerRuntime(s.logger, docker))
		r = router.New()
	)

	container.NewServer(s.logger, svc, cfg.PublicIP).Register(r)

	httpServer := &http.Server{
		Handler:           middleware.RecoverPanics(s.logger, middleware.LogRequests(s.logger, r)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g multierror.Group
	g.Go(func() error {
		if err := httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cancel()
			return fmt.Errorf("failed to serve http server: %w", err)
		}
		return nil
	})

	s.logger.InfoContext(ctx, "agent started", "listen_address", lis.Addr().String(), "public_ip", cfg.PublicIP)

	select {
	case <-ctx.Done():
	case <-s.stop:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancelShutdown()

	var shutdownErr error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		shutdownErr = fmt.Errorf("shutdown http server: %w", err)
	}

	return multierror.Append(g.Wait(), shutdownErr).ErrorOrNil()
}

func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}
