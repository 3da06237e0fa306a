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
	"sync"
	"time"
)

// heartbeatTracker remembers when an instance has last been seen alive.
// it is never persisted, after a restart instances are seen for the first
// time again once the reaper observes them.
type heartbeatTracker struct {
	seen map[string]time.Time
	mu   sync.Mutex
}

func newHeartbeatTracker() *heartbeatTracker {
	return &heartbeatTracker{
		seen: make(map[string]time.Time),
	}
}

func (t *heartbeatTracker) Record(serverID string, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[serverID] = at
}

// SeedIfAbsent records at for serverID if nothing has been recorded yet
// and returns the time the instance has last been seen.
func (t *heartbeatTracker) SeedIfAbsent(serverID string, at time.Time) time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	if last, ok := t.seen[serverID]; ok {
		return last
	}
	t.seen[serverID] = at
	return at
}

func (t *heartbeatTracker) LastSeen(serverID string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	last, ok := t.seen[serverID]
	return last, ok
}

func (t *heartbeatTracker) Delete(serverID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.seen, serverID)
}

func (t *heartbeatTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}

// pendingTerminations holds the server ids whose next heartbeat
// must be answered with [OperationTerminate].
type pendingTerminations struct {
	ids map[string]struct{}
	mu  sync.Mutex
}

func newPendingTerminations() *pendingTerminations {
	return &pendingTerminations{
		ids: make(map[string]struct{}),
	}
}

// Add flags the server id and reports whether it was not flagged before.
func (p *pendingTerminations) Add(serverID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.ids[serverID]; ok {
		return false
	}
	p.ids[serverID] = struct{}{}
	return true
}

func (p *pendingTerminations) Contains(serverID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.ids[serverID]
	return ok
}

// Take removes the flag and reports whether it was set.
func (p *pendingTerminations) Take(serverID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.ids[serverID]; !ok {
		return false
	}
	delete(p.ids, serverID)
	return true
}

func (p *pendingTerminations) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ids)
}
