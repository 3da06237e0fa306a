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

package instance

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
		Use:   "instance",
		Short: "Commands related to working with game server instances.",
	}
	c.AddCommand(
		newListCommand(ctx, cliCtx),
		newTerminateCommand(ctx, cliCtx),
	)
	return c
}

func newListCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		instances, err := cliCtx.Client.ListInstances(ctx)
		if err != nil {
			return fmt.Errorf("error while listing instances: %w", err)
		}

		t := table.New("SERVER ID", "BUILD", "AGENT", "PORT", "STATUS", "AGE").WithWriter(cmd.OutOrStdout())
		for _, ins := range instances {
			t.AddRow(
				shortID(ins.ServerID),
				ins.BuildID,
				ins.AgentID,
				ins.Port,
				ins.Status,
				time.Since(ins.CreatedAt).Truncate(time.Second),
			)
		}
		t.Print()

		return nil
	}

	return &cobra.Command{
		Use:          "list",
		Short:        "Lists all instances that have not been terminated.",
		RunE:         run,
		SilenceUsage: true,
	}
}

func newTerminateCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	run := func(cmd *cobra.Command, args []string) error {
		if err := cliCtx.Client.TerminateInstance(ctx, args[0]); err != nil {
			return fmt.Errorf("error while terminating instance: %w", err)
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Instance will be told to terminate on its next heartbeat")
		return nil
	}

	return &cobra.Command{
		Use:          "terminate SERVER_ID",
		Short:        "Asks a game server to shut down gracefully.",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
}

// shortID shortens container ids the same way the docker cli does.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
