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

	"github.com/spacechunks/fleet/controlplane/agent"
)

type Repository interface {
	CreateInstance(ctx context.Context, ins Instance) (Instance, error)

	// GetInstance returns [errors.ErrInstanceNotFound] if no instance
	// with the given server id exists.
	GetInstance(ctx context.Context, serverID string) (Instance, error)

	// ListUnterminatedInstances returns all instances that are
	// not in [StatusTerminated].
	ListUnterminatedInstances(ctx context.Context) ([]Instance, error)

	// AdvanceStatus sets the status of the instance, but only if the
	// current status comes before the new one in the lifecycle. it
	// reports whether the instance has been updated.
	AdvanceStatus(ctx context.Context, serverID string, status Status) (bool, error)

	// UsedPorts returns the ports held by instances of the agent
	// that are not in [StatusTerminated].
	UsedPorts(ctx context.Context, agentID int64) ([]string, error)

	// AvailableAgent returns the agent with the lowest id that runs less than
	// maxInstances instances not in [StatusTerminated]. if there is no such
	// agent, [errors.ErrNoAgentsAvailable] is returned.
	AvailableAgent(ctx context.Context, maxInstances int) (agent.Agent, error)
}
