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

package fixture

import (
	"time"

	"github.com/spacechunks/fleet/controlplane/agent"
	"github.com/spacechunks/fleet/controlplane/build"
	"github.com/spacechunks/fleet/controlplane/instance"
)

const (
	BuildID   = "lobby-1.4.2"
	ServerID  = "4c1f0a6e3b2d9f8e7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f"
	SessionID = "0195f1f0-8c3a-7d8e-9a1b-2c3d4e5f6a7b"
)

func Build(mod ...func(b *build.Build)) build.Build {
	b := build.Build{
		BuildID:   BuildID,
		ImageName: "registry.example.com/games/lobby:1.4.2",
		CreatedAt: time.Date(2025, 2, 23, 13, 12, 15, 0, time.UTC),
		UpdatedAt: time.Date(2025, 2, 28, 10, 26, 0, 0, time.UTC),
	}

	for _, fn := range mod {
		fn(&b)
	}

	return b
}

func Agent(mod ...func(a *agent.Agent)) agent.Agent {
	a := agent.Agent{
		ID:        1,
		Host:      "http://198.51.100.1:9007",
		CreatedAt: time.Date(2025, 2, 23, 13, 12, 15, 0, time.UTC),
		UpdatedAt: time.Date(2025, 2, 28, 10, 26, 0, 0, time.UTC),
	}

	for _, fn := range mod {
		fn(&a)
	}

	return a
}

func Instance(mod ...func(i *instance.Instance)) instance.Instance {
	ins := instance.Instance{
		ServerID: ServerID,
		AgentID:  Agent().ID,
		BuildID:  BuildID,
		Port:     "30000",
		SessionConfig: instance.SessionConfig{
			SessionID:     SessionID,
			SessionCookie: "cookie",
			Metadata: map[string]string{
				"gamePort": "30000",
			},
		},
		Status:    instance.StatusStandingBy,
		CreatedAt: time.Date(2025, 2, 23, 13, 12, 15, 0, time.UTC),
		UpdatedAt: time.Date(2025, 2, 23, 13, 12, 15, 0, time.UTC),
	}

	for _, fn := range mod {
		fn(&ins)
	}

	return ins
}
