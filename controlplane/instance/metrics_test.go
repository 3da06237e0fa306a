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
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/test/fixture"
	"github.com/stretchr/testify/require"
)

func TestLifecycleMetrics(t *testing.T) {
	var (
		ctx     = context.Background()
		logger  = slog.New(slog.NewTextHandler(os.Stdout, nil))
		reg     = prometheus.NewRegistry()
		metrics = instance.NewMetrics(reg)
		repo    = newMemRepo(fixture.Agent())
		clock   = now
		l       = instance.NewLifecycle(logger, instance.LifecycleConfig{ActiveCeiling: activeCeiling}, repo, metrics)
		r       = instance.NewReaper(logger, instance.ReaperConfig{
			Interval:         time.Second,
			HeartbeatTimeout: heartbeatTimeout,
		}, repo, l, metrics)
		ins = fixture.Instance(func(i *instance.Instance) {
			i.Status = instance.StatusActive
			i.CreatedAt = now
		})
	)

	l.SetClock(func() time.Time { return clock })
	r.SetClock(func() time.Time { return clock })

	repo.put(ins)

	_, err := l.HandleHeartbeat(ctx, ins.ServerID, heartbeat(instance.GameStateActive))
	require.NoError(t, err)

	require.NoError(t, l.RequestTermination(ctx, ins.ServerID))

	_, err = l.HandleHeartbeat(ctx, ins.ServerID, heartbeat(instance.GameStateActive))
	require.NoError(t, err)

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP fleet_tracked_instances Number of instances whose last heartbeat is tracked.
# TYPE fleet_tracked_instances gauge
fleet_tracked_instances 1
`), "fleet_tracked_instances"))

	clock = now.Add(heartbeatTimeout + time.Second)
	r.Tick(ctx)

	expected := `
# HELP fleet_heartbeats_total Number of answered heartbeats by operation.
# TYPE fleet_heartbeats_total counter
fleet_heartbeats_total{operation="Continue"} 1
fleet_heartbeats_total{operation="Terminate"} 1
# HELP fleet_reaped_instances_total Number of instances terminated because their heartbeat went silent.
# TYPE fleet_reaped_instances_total counter
fleet_reaped_instances_total 1
# HELP fleet_termination_flags_total Number of instances flagged for graceful termination by reason.
# TYPE fleet_termination_flags_total counter
fleet_termination_flags_total{reason="requested"} 1
# HELP fleet_tracked_instances Number of instances whose last heartbeat is tracked.
# TYPE fleet_tracked_instances gauge
fleet_tracked_instances 0
`

	require.NoError(t, testutil.GatherAndCompare(
		reg,
		strings.NewReader(expected),
		"fleet_heartbeats_total",
		"fleet_reaped_instances_total",
		"fleet_termination_flags_total",
		"fleet_tracked_instances",
	))
}
