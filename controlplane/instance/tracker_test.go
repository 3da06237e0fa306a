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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHeartbeatTracker(t *testing.T) {
	var (
		tracker = newHeartbeatTracker()
		t0      = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	)

	_, ok := tracker.LastSeen("a")
	require.False(t, ok)

	require.Equal(t, t0, tracker.SeedIfAbsent("a", t0))
	require.Equal(t, t0, tracker.SeedIfAbsent("a", t0.Add(time.Second)))

	tracker.Record("a", t0.Add(5*time.Second))
	seen, ok := tracker.LastSeen("a")
	require.True(t, ok)
	require.Equal(t, t0.Add(5*time.Second), seen)
	require.Equal(t, 1, tracker.Len())

	tracker.Delete("a")
	require.Equal(t, 0, tracker.Len())
}

func TestPendingTerminations(t *testing.T) {
	pending := newPendingTerminations()

	require.False(t, pending.Take("a"))
	require.True(t, pending.Add("a"))
	require.False(t, pending.Add("a"))
	require.True(t, pending.Contains("a"))
	require.Equal(t, 1, pending.Len())

	require.True(t, pending.Take("a"))
	require.False(t, pending.Contains("a"))
	require.False(t, pending.Take("a"))
}

func TestPortRange(t *testing.T) {
	tests := []struct {
		name  string
		r     PortRange
		size  int
		valid bool
	}{
		{
			name:  "single port",
			r:     PortRange{Start: 5000, End: 5000},
			size:  1,
			valid: true,
		},
		{
			name:  "default range",
			r:     PortRange{Start: 30000, End: 30099},
			size:  100,
			valid: true,
		},
		{
			name: "inverted",
			r:    PortRange{Start: 5001, End: 5000},
		},
		{
			name: "zero start",
			r:    PortRange{Start: 0, End: 10},
			size: 11,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.size, tt.r.Size())
			if tt.valid {
				require.NoError(t, tt.r.Validate())
				return
			}
			require.Error(t, tt.r.Validate())
		})
	}
}
