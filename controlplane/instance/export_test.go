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
	"time"
)

func HeartbeatRuleNames() []string {
	names := make([]string, 0, len(heartbeatRules))
	for _, r := range heartbeatRules {
		names = append(names, r.name)
	}
	return names
}

func (a *Allocator) SetClock(now func() time.Time) {
	a.now = now
}

func (l *Lifecycle) SetClock(now func() time.Time) {
	l.now = now
}

func (r *Reaper) SetClock(now func() time.Time) {
	r.now = now
}

func (r *Reaper) Tick(ctx context.Context) {
	r.tick(ctx)
}

func (l *Lifecycle) LastSeen(serverID string) (time.Time, bool) {
	return l.seen.LastSeen(serverID)
}

func (l *Lifecycle) Pending(serverID string) bool {
	return l.pending.Contains(serverID)
}

func (l *Lifecycle) Tracked() int {
	return l.seen.Len()
}
