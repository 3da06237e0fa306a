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

package allocate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spacechunks/fleet/cli"
	"github.com/spf13/cobra"
)

func NewCommand(ctx context.Context, cliCtx cli.Context) *cobra.Command {
	var (
		buildID       string
		sessionID     string
		sessionCookie string
		regions       []string
	)

	run := func(cmd *cobra.Command, args []string) error {
		if sessionID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("generate session id: %w", err)
			}
			sessionID = id.String()
		}

		a, err := cliCtx.Client.RequestServer(ctx, buildID, sessionID, sessionCookie, regions)
		if err != nil {
			return fmt.Errorf("error while allocating server: %w", err)
		}

		s := cli.Section(cmd.OutOrStdout())
		s.AddRow("Server ID:", a.ServerID)
		s.AddRow("Session ID:", a.SessionID)
		s.AddRow("Build ID:", a.BuildID)
		s.AddRow("IPv4 Address:", a.IPv4Address)
		for _, p := range a.Ports {
			s.AddRow("Port:", p.Name+" "+strconv.Itoa(p.Num)+"/"+p.Protocol)
		}
		s.AddRow("State:", a.State)
		s.AddRow("Last transition:", a.LastStateTransitionTime.Format(time.RFC1123Z))
		s.Print()

		return nil
	}

	cmd := &cobra.Command{
		Use:          "allocate",
		Short:        "Requests a new game server for a build.",
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&buildID, "build", "", "id of the build to allocate a game server from")
	cmd.Flags().StringVar(&sessionID, "session-id", "", "uuid of the session. generated if empty")
	cmd.Flags().StringVar(&sessionCookie, "session-cookie", "", "opaque data handed to the game server")
	cmd.Flags().StringSliceVar(&regions, "region", []string{}, "preferred regions, may be repeated")
	_ = cmd.MarkFlagRequired("build")

	return cmd
}
