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

package controlplane

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spacechunks/fleet/controlplane/agent"
	"github.com/spacechunks/fleet/controlplane/build"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/controlplane/postgres"
	"github.com/spacechunks/fleet/internal/httpjson"
	"github.com/spacechunks/fleet/internal/middleware"
	"github.com/spacechunks/fleet/internal/router"
)

const defaultShutdownTimeout = 10 * time.Second

var errDatabaseUnavailable = apierrs.New(
	apierrs.CodeUpstreamFailure,
	http.StatusServiceUnavailable,
	"database unavailable",
)

type Server struct {
	logger   *slog.Logger
	cfg      Config
	stop     chan struct{}
	stopOnce sync.Once
}

func NewServer(logger *slog.Logger, cfg Config) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Server{
		logger: logger,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}
}

func (s *Server) Run(ctx context.Context) error {
	ports := instance.PortRange{
		Start: s.cfg.StartPort,
		End:   s.cfg.EndPort,
	}

	if err := ports.Validate(); err != nil {
		return fmt.Errorf("port range: %w", err)
	}

	_, listenPort, err := net.SplitHostPort(s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	pool, err := pgxpool.New(ctx, s.cfg.DBConnString)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var (
		db       = postgres.NewDB(pool)
		registry = prometheus.NewRegistry()
		metrics  = instance.NewMetrics(registry)
		gateway  = agent.NewGateway(s.logger, s.cfg.AgentRequestTimeout)

		buildService = build.NewService(db)
		agentService = agent.NewService(db)

		allocator = instance.NewAllocator(s.logger, instance.AllocatorConfig{
			HeartbeatEndpoint: net.JoinHostPort(s.cfg.PublicIP, listenPort),
			Ports:             ports,
			ProbePorts:        s.cfg.ProbePorts,
		}, db, buildService, gateway, metrics)
		lifecycle = instance.NewLifecycle(s.logger, instance.LifecycleConfig{
			ActiveCeiling: s.cfg.ActiveCeiling,
		}, db, metrics)
		reaper = instance.NewReaper(s.logger, instance.ReaperConfig{
			Interval:         s.cfg.ReaperInterval,
			HeartbeatTimeout: s.cfg.HeartbeatTimeout,
		}, db, lifecycle, metrics)
		insService = instance.NewService(db, allocator, lifecycle)

		r = router.New()
	)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	build.NewServer(buildService).Register(r)
	agent.NewServer(agentService).Register(r)
	instance.NewServer(s.logger, insService).Register(r)

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(req.Context()); err != nil {
			s.logger.ErrorContext(req.Context(), "health check failed", "err", err)
			httpjson.Error(w, errDatabaseUnavailable)
			return
		}
		httpjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	httpServer := &http.Server{
		Handler:           middleware.RecoverPanics(s.logger, middleware.LogRequests(s.logger, r)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := multierror.Group{}
	g.Go(func() error {
		if err := httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cancel()
			return fmt.Errorf("failed to serve http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		reaper.Start(ctx)
		return nil
	})

	s.logger.InfoContext(
		ctx,
		"control plane started",
		"listen_address", lis.Addr().String(),
		"heartbeat_endpoint", net.JoinHostPort(s.cfg.PublicIP, listenPort),
		"start_port", ports.Start,
		"end_port", ports.End,
	)

	select {
	case <-ctx.Done():
	case <-s.stop:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancelShutdown()

	reaper.Stop()

	var shutdownErr error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		shutdownErr = fmt.Errorf("shutdown http server: %w", err)
	}

	return multierror.Append(g.Wait(), shutdownErr).ErrorOrNil()
}

// Stop makes Run return after in-flight requests have finished.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}
