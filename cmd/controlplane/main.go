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

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/peterbourgon/ff/v3"
	"github.com/spacechunks/fleet/controlplane"
	"github.com/spacechunks/fleet/controlplane/postgres/migrations"
	"github.com/spacechunks/fleet/internal/logging"
	"github.com/spacechunks/fleet/internal/publicip"
)

func main() {
	var (
		logger              = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		fs                  = flag.NewFlagSet("controlplane", flag.ContinueOnError)
		listenAddr          = fs.String("listen-address", ":9006", "address and port the control plane server listens on")                                                                //nolint:lll
		pgConnString        = fs.String("postgres-dsn", "", "connection string in the form of postgres://[user[:password]@][netloc][:port][/dbname][?param1=value1&...]") //nolint:lll
		publicIP            = fs.String("public-ip", "", "ipv4 address game servers send heartbeats to. discovered if empty")                                             //nolint:lll
		startPort           = fs.Uint("start-port", 30000, "first port of the range game servers are assigned ports from")                                                 //nolint:lll
		endPort             = fs.Uint("end-port", 30099, "last port of the range game servers are assigned ports from")                                                    //nolint:lll
		heartbeatTimeout    = fs.Duration("heartbeat-timeout", 30*time.Second, "how long an instance may stay silent before it is terminated")                            //nolint:lll
		activeCeiling       = fs.Duration("active-ceiling", 24*time.Hour, "maximum lifetime of an instance before it is asked to terminate")                              //nolint:lll
		reaperInterval      = fs.Duration("reaper-interval", time.Second, "how often instances are checked for missed heartbeats")                                        //nolint:lll
		agentRequestTimeout = fs.Duration("agent-request-timeout", 10*time.Second, "timeout for requests sent to agents")                                                 //nolint:lll
		probePorts          = fs.Bool("probe-ports", true, "whether to ask the agent if a port is free before assigning it")                                              //nolint:lll
		migrationTimeout    = fs.Duration("migration-timeout", 30*time.Second, "how long to wait for the database before running migrations")                            //nolint:lll
		shutdownTimeout     = fs.Duration("shutdown-timeout", 10*time.Second, "how long to wait for in-flight requests on shutdown")                                      //nolint:lll
		logFormat           = fs.String("log-format", "json", "log format, one of json or text")
		logLevel            = fs.String("log-level", "info", "minimum level of logged messages")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("FLEET"),
	); err != nil {
		die(logger, "failed to parse config", err)
	}

	l, err := logging.New(os.Stdout, *logFormat, *logLevel)
	if err != nil {
		die(logger, "failed to create logger", err)
	}
	logger = l

	ctx := context.Background()

	if *startPort > 65535 || *endPort > 65535 {
		die(logger, "invalid port range", errors.New("ports must be smaller than 65536"))
	}

	if *publicIP == "" {
		discoverCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		ip, err := publicip.Discover(discoverCtx, http.DefaultClient)
		cancel()
		if err != nil {
			die(logger, "failed to discover public ip", err)
		}
		logger.Info("discovered public ip", "public_ip", ip)
		*publicIP = ip
	}

	var (
		cfg = controlplane.Config{
			ListenAddr:          *listenAddr,
			DBConnString:        *pgConnString,
			PublicIP:            *publicIP,
			StartPort:           uint16(*startPort),
			EndPort:             uint16(*endPort),
			HeartbeatTimeout:    *heartbeatTimeout,
			ActiveCeiling:       *activeCeiling,
			ReaperInterval:      *reaperInterval,
			AgentRequestTimeout: *agentRequestTimeout,
			ProbePorts:          *probePorts,
			ShutdownTimeout:     *shutdownTimeout,
		}
		server = controlplane.NewServer(logger, cfg)
	)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		s := <-c
		logger.Info("received shutdown signal", "signal", s)
		server.Stop()
	}()

	if err := migrations.Migrate(cfg.DBConnString, *migrationTimeout); err != nil {
		die(logger, "failed to run migrations", err)
	}

	if err := server.Run(ctx); err != nil {
		var multi *multierror.Error
		if errors.As(err, &multi) {
			errs := make([]string, 0, len(multi.WrappedErrors()))
			for _, err := range multi.WrappedErrors() {
				errs = append(errs, err.Error())
			}
			die(logger, "failed to run server", errors.New(strings.Join(errs, ",")))
			return
		}
		die(logger, "failed to run server", err)
	}
}

func die(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
