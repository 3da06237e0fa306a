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
	"strconv"

	"github.com/spacechunks/fleet/controlplane/agent"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

// PortRange is the inclusive range of ports game servers can bind to on
// every agent. each agent can run at most Size() instances.
type PortRange struct {
	Start uint16
	End   uint16
}

func (r PortRange) Size() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End) - int(r.Start) + 1
}

func (r PortRange) Validate() error {
	if r.Start == 0 || r.End < r.Start {
		return fmt.Errorf("invalid port range %d-%d", r.Start, r.End)
	}
	return nil
}

// capacity selects the agent and port a new instance will be placed on.
// it is only safe to use while holding the allocation lock, because the
// result depends on instances that have not been persisted yet otherwise.
type capacity struct {
	repo    Repository
	gateway agent.Gateway
	ports   PortRange
	probe   bool
}

// availableAgent returns the first agent that has not reached the maximum
// number of instances. there is intentionally no load balancing.
func (c *capacity) availableAgent(ctx context.Context) (agent.Agent, error) {
	a, err := c.repo.AvailableAgent(ctx, c.ports.Size())
	if err != nil {
		return agent.Agent{}, err
	}
	return a, nil
}

func (c *capacity) usedPorts(ctx context.Context, agentID int64) (map[string]struct{}, error) {
	ports, err := c.repo.UsedPorts(ctx, agentID)
	if err != nil {
		return nil, err
	}

	used := make(map[string]struct{}, len(ports))
	for _, p := range ports {
		used[p] = struct{}{}
	}
	return used, nil
}

// allocatePort returns the lowest port of the range that is not used by
// any of the agent's instances. if probing is enabled, the agent also has
// to confirm that nothing is bound to the port on its host, which protects
// against processes the store does not know about.
func (c *capacity) allocatePort(ctx context.Context, a agent.Agent) (string, error) {
	used, err := c.usedPorts(ctx, a.ID)
	if err != nil {
		return "", fmt.Errorf("used ports: %w", err)
	}

	for p := int(c.ports.Start); p <= int(c.ports.End); p++ {
		port := strconv.Itoa(p)
		if _, ok := used[port]; ok {
			continue
		}

		if c.probe && !c.gateway.IsPortAvailable(ctx, a, p) {
			continue
		}

		return port, nil
	}

	return "", apierrs.ErrNoPortsAvailable
}
