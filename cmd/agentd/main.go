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
	"github.com/spacechunks/fleet/agentd"
	"github.com/spacechunks/fleet/internal/logging"
	"github.com/spacechunks/fleet/internal/publicip"
)

func main() {
	var (
		logger          = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		fs              = flag.NewFlagSet("agentd", flag.ContinueOnError)
		listenAddr      = fs.String("listen-address", ":9007", "address and port the agent listens on")                                     //nolint:lll
		publicIP        = fs.String("public-ip", "", "ipv4 address players connect to. discovered if empty")                                //nolint:lll
		configDir       = fs.String("config-dir", "/var/lib/fleet/config", "directory the gsdk config of every game server is written to") //nolint:lll
		logsDir         = fs.String("logs-dir", "/var/lib/fleet/logs", "directory game servers write their logs to")                        //nolint:lll
		dockerHost      = fs.String("docker-host", "", "docker daemon address. DOCKER_HOST is used if empty")                               //nolint:lll
		shutdownTimeout = fs.Duration("shutdown-timeout", 10*time.Second, "how long to wait for in-flight requests on shutdown")            //nolint:lll
		logFormat       = fs.String("log-format", "json", "log format, one of json or text")
		logLevel        = fs.String("log-level", "info", "minimum level of logged messages")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("FLEET_AGENT"),
	); err != nil {
		die(logger, "failed to parse config", err)
	}

	l, err := logging.New(os.Stdout, *logFormat, *logLevel)
	if err != nil {
		die(logger, "failed to create logger", err)
	}
	logger = l

	ctx := context.Background()

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
		cfg = agentd.Config{
			ListenAddr:      *listenAddr,
			PublicIP:        *publicIP,
			ConfigDir:       *configDir,
			LogsDir:         *logsDir,
			DockerHost:      *dockerHost,
			ShutdownTimeout: *shutdownTimeout,
		}
		server = agentd.NewServer(logger)
	)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		s := <-c
		logger.Info("received shutdown signal", "signal", s)
		server.Stop()
	}()

	if err := server.Run(ctx, cfg); err != nil {
		var multi *multierror.Error
		if errors.As(err, &multi) {
			errs := make([]string, 0, len(multi.WrappedErrors()))
			for _, err := range multi.WrappedErrors() {
				errs = append(errs, err.Error())
			}
			die(logger, "failed to run agent", errors.New(strings.Join(errs, ",")))
			return
		}
		die(logger, "failed to run agent", err)
	}
}

func die(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
