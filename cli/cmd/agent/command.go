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

package agent

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rodaine/table"
	"github.com/spacechunks/fleet/cli"
	"github.com/spf13/cobra"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	c := &cobra.Command{
		Use:   "agent",
		Short: "Commands related to working with agents.",
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
		a, err := cliCtx.Client.CreateAgent(ctx, args[0])
		if err != nil {
			return fmt.Errorf("error while creating agent: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created agent %d\n", a.ID)
		return nil
	}

	return &cobra.Command{
		Use:          "create HOST",
		Short:        "Registers an agent by the base url of its api, e.g. http://10.0.0.4:9007.",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
}

func newListCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		agents, err := cliCtx.Client.ListAgents(ctx)
		if err != nil {
			return fmt.Errorf("error while listing agents: %w", err)
		}

		t := table.New("ID", "HOST", "CREATED").WithWriter(cmd.OutOrStdout())
		for _, a := range agents {
			t.AddRow(a.ID, a.Host, a.CreatedAt.Format(time.RFC1123Z))
		}
		t.Print()

		return nil
	}

	return &cobra.Command{
		Use:          "list",
		Short:        "Lists all registered agents in the order they are filled.",
		RunE:         run,
		SilenceUsage: true,
	}
}

func newDeleteCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("agent id must be a number: %w", err)
		}

		if err := cliCtx.Client.DeleteAgent(ctx, id); err != nil {
			return fmt.Errorf("error while deleting agent: %w", err)
		}
		return nil
	}

	return &cobra.Command{
		Use:          "delete ID",
		Short:        "Deletes an agent. agents still hosting instances cannot be deleted.",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
}
