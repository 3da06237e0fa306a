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
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spacechunks/fleet/cli"
	"github.com/spacechunks/fleet/cli/api"
	clicmd "github.com/spacechunks/fleet/cli/cmd"
	"github.com/spacechunks/fleet/cli/fshelper"
)

func main() {
	cfg, err := createOrReadConfig()
	if err != nil {
		die("Config error", err)
	}

	timeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		die("Invalid request timeout", err)
	}

	var (
		ctx    = context.Background()
		cliCtx = cli.Context{
			Config: cfg,
			Client: api.NewClient(cfg.ControlPlaneEndpoint, &http.Client{
				Timeout: timeout,
			}),
		}
	)

	if err := clicmd.Root(ctx, cliCtx).Execute(); err != nil {
		os.Exit(1)
	}
}

func die(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func createOrReadConfig() (cli.Config, error) {
	cfgHome, err := fshelper.ConfigHome()
	if err != nil {
		return cli.Config{}, fmt.Errorf("determine config directory: %w", err)
	}
	return cli.LoadOrCreateConfig(filepath.Join(cfgHome, "config.yaml"))
}
