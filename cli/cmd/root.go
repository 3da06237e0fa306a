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

package cmd

import (
	"context"

	"github.com/spacechunks/fleet/cli"
	"github.com/spacechunks/fleet/cli/cmd/agent"
	"github.com/spacechunks/fleet/cli/cmd/allocate"
	"github.com/spacechunks/fleet/cli/cmd/build"
	"github.com/spacechunks/fleet/cli/cmd/instance"
	"github.com/spacechunks/fleet/cli/cmd/version"
	"github.com/spf13/cobra"
)

func Root(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	root := &cobra.Command{
		Use:   "fleetctl",
		Short: "Manage builds, agents and game server instances of a fleet control plane.",
	}

	root.AddCommand(
		build.NewCommand(ctx, cliCtx),
		agent.NewCommand(ctx, cliCtx),
		instance.NewCommand(ctx, cliCtx),
		allocate.NewCommand(ctx, cliCtx),
		version.NewCommand(),
	)

	return root
}
