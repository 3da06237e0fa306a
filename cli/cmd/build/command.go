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

package build

import (
	"context"
	"fmt"
	"time"

	"github.com/rodaine/table"
	"github.com/spacechunks/fleet/cli"
	"github.com/spf13/cobra"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	c := &cobra.Command{
		Use:   "build",
		Short: "Commands related to working with builds.",
	}
	c.AddCommand(
		newCreateCommand(ctx, cliCtx),
		newListCommand(ctx, cliCtx),
		newDeleteCommand(ctx, cliCtx),
	)
	return c
}

func newCreateCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		b, err := cliCtx.Client.CreateBuild(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("error while creating build: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created build %s\n", b.BuildID)
		return nil
	}

	return &cobra.Command{
		Use:          "create BUILD_ID IMAGE",
		Short:        "Registers a container image game servers can be allocated from.",
		Args:         cobra.ExactArgs(2),
		RunE:         run,
		SilenceUsage: true,
	}
}

func newListCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		builds, err := cliCtx.Client.ListBuilds(ctx)
		if err != nil {
			return fmt.Errorf("error while listing builds: %w", err)
		}

		t := table.New("BUILD ID", "IMAGE", "CREATED").WithWriter(cmd.OutOrStdout())
		for _, b := range builds {
			t.AddRow(b.BuildID, b.ImageName, b.CreatedAt.Format(time.RFC1123Z))
		}
		t.Print()

		return nil
	}

	return &cobra.Command{
		Use:          "list",
		Short:        "Lists all registered builds.",
		RunE:         run,
		SilenceUsage: true,
	}
}

func newDeleteCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		if err := cliCtx.Client.DeleteBuild(ctx, args[0]); err != nil {
			return fmt.Errorf("error while deleting build: %w", err)
		}
		return nil
	}

	return &cobra.Command{
		Use:          "delete BUILD_ID",
		Short:        "Deletes a build. builds referenced by instances cannot be deleted.",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
}
