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

package instance_test

import (
	"context"
	"slices"
	"sync"

	"github.com/spacechunks/fleet/controlplane/agent"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
)

// memRepo keeps instances in memory and mirrors the
// behavior of the postgres repository.
type memRepo struct {
	mu        sync.Mutex
	agents    []agent.Agent
	instances map[string]instance.Instance
	order     []string
	advances  int
}

func newMemRepo(agents ...agent.Agent) *memRepo {
	return &memRepo{
		agents:    agents,
		instances: make(map[string]instance.Instance),
	}
}

func (r *memRepo) CreateInstance(_ context.Context, ins instance.Instance) (instance.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instances[ins.ServerID]; ok {
		return instance.Instance{}, apierrs.New(apierrs.CodeConflict, "duplicate server id")
	}
	for _, other := range r.instances {
		if other.AgentID == ins.AgentID && other.Port == ins.Port && other.Status != instance.StatusTerminated {
			return instance.Instance{}, apierrs.New(apierrs.CodeConflict, "port already in use")
		}
	}
	r.instances[ins.ServerID] = ins
	r.order = append(r.order, ins.ServerID)
	return ins, nil
}

func (r *memRepo) GetInstance(_ context.Context, serverID string) (instance.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ins, ok := r.instances[serverID]
	if !ok {
		return instance.Instance{}, apierrs.ErrInstanceNotFound
	}
	return ins, nil
}

func (r *memRepo) ListUnterminatedInstances(_ context.Context) ([]instance.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret := make([]instance.Instance, 0)
	for _, id := range r.order {
		if ins := r.instances[id]; ins.Status != instance.StatusTerminated {
			ret = append(ret, ins)
		}
	}
	return ret, nil
}

func (r *memRepo) AdvanceStatus(_ context.Context, serverID string, status instance.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ins, ok := r.instances[serverID]
	if !ok || !ins.Status.Before(status) {
		return false, nil
	}
	ins.Status = status
	r.instances[serverID] = ins
	r.advances++
	return true, nil
}

func (r *memRepo) UsedPorts(_ context.Context, agentID int64) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ports := make([]string, 0)
	for _, ins := range r.instances {
		if ins.AgentID == agentID && ins.Status != instance.StatusTerminated {
			ports = append(ports, ins.Port)
		}
	}
	slices.Sort(ports)
	return ports, nil
}

func (r *memRepo) AvailableAgent(_ context.Context, maxInstances int) (agent.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.agents {
		count := 0
		for _, ins := range r.instances {
			if ins.AgentID == a.ID && ins.Status != instance.StatusTerminated {
				count++
			}
		}
		if count < maxInstances {
			return a, nil
		}
	}
	return agent.Agent{}, apierrs.ErrNoAgentsAvailable
}

func (r *memRepo) put(ins instance.Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instances[ins.ServerID]; !ok {
		r.order = append(r.order, ins.ServerID)
	}
	r.instances[ins.ServerID] = ins
}

func (r *memRepo) get(serverID string) instance.Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.instances[serverID]
}

func (r *memRepo) advanceCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advances
}
