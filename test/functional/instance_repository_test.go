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

package functional

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/spacechunks/fleet/controlplane/agent"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/test"
	"github.com/spacechunks/fleet/test/fixture"
	"github.com/stretchr/testify/require"
)

func TestDBCreateInstance(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
		b   = fixture.Build()
		a   = fixture.Agent()
	)

	pg.Run(t, ctx)
	pg.CreateBuild(t, &b)
	pg.CreateAgent(t, &a)

	expected := fixture.Instance(func(i *instance.Instance) {
		i.AgentID = a.ID
	})

	actual, err := pg.DB.CreateInstance(ctx, expected)
	require.NoError(t, err)

	if d := cmp.Diff(expected, actual); d != "" {
		t.Fatalf("CreateInstance() mismatch (-want +got):\n%s", d)
	}

	fetched, err := pg.DB.GetInstance(ctx, expected.ServerID)
	require.NoError(t, err)

	if d := cmp.Diff(expected, fetched); d != "" {
		t.Fatalf("GetInstance() mismatch (-want +got):\n%s", d)
	}

	_, err = pg.DB.GetInstance(ctx, "unknown")
	require.ErrorIs(t, err, apierrs.ErrInstanceNotFound)
}

func TestDBCreateInstanceRejectsDuplicatePort(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
		ins = fixture.Instance()
	)

	pg.Run(t, ctx)
	pg.CreateInstance(t, &ins)

	dup := fixture.Instance(func(i *instance.Instance) {
		i.ServerID = "duplicate"
		i.AgentID = ins.AgentID
	})

	_, err := pg.DB.CreateInstance(ctx, dup)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	require.Equal(t, "23505", pgErr.Code)

	// once the first instance is terminated the port is free again
	advanced, err := pg.DB.AdvanceStatus(ctx, ins.ServerID, instance.StatusTerminated)
	require.NoError(t, err)
	require.True(t, advanced)

	_, err = pg.DB.CreateInstance(ctx, dup)
	require.NoError(t, err)
}

func TestDBListUnterminatedInstances(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
		b   = fixture.Build()
		a   = fixture.Agent()
	)

	pg.Run(t, ctx)

	actual, err := pg.DB.ListUnterminatedInstances(ctx)
	require.NoError(t, err)
	require.NotNil(t, actual)
	require.Empty(t, actual)

	pg.CreateBuild(t, &b)
	pg.CreateAgent(t, &a)

	var (
		standingBy = fixture.Instance(func(i *instance.Instance) {
			i.ServerID = "standing-by"
			i.AgentID = a.ID
			i.Port = "30000"
		})
		active = fixture.Instance(func(i *instance.Instance) {
			i.ServerID = "active"
			i.AgentID = a.ID
			i.Port = "30001"
			i.Status = instance.StatusActive
		})
		terminated = fixture.Instance(func(i *instance.Instance) {
			i.ServerID = "terminated"
			i.AgentID = a.ID
			i.Port = "30002"
			i.Status = instance.StatusTerminated
		})
	)

	for _, ins := range []instance.Instance{standingBy, active, terminated} {
		_, err := pg.DB.CreateInstance(ctx, ins)
		require.NoError(t, err)
	}

	actual, err = pg.DB.ListUnterminatedInstances(ctx)
	require.NoError(t, err)

	if d := cmp.Diff([]instance.Instance{standingBy, active}, actual); d != "" {
		t.Fatalf("ListUnterminatedInstances() mismatch (-want +got):\n%s", d)
	}
}

func TestDBAdvanceStatus(t *testing.T) {
	tests := []struct {
		name     string
		from     instance.Status
		to       instance.Status
		advanced bool
		expected instance.Status
	}{
		{
			name:     "standing by to active",
			from:     instance.StatusStandingBy,
			to:       instance.StatusActive,
			advanced: true,
			expected: instance.StatusActive,
		},
		{
			name:     "standing by to terminated",
			from:     instance.StatusStandingBy,
			to:       instance.StatusTerminated,
			advanced: true,
			expected: instance.StatusTerminated,
		},
		{
			name:     "active to terminated",
			from:     instance.StatusActive,
			to:       instance.StatusTerminated,
			advanced: true,
			expected: instance.StatusTerminated,
		},
		{
			name:     "same status is a noop",
			from:     instance.StatusActive,
			to:       instance.StatusActive,
			expected: instance.StatusActive,
		},
		{
			name:     "active does not go back to standing by",
			from:     instance.StatusActive,
			to:       instance.StatusStandingBy,
			expected: instance.StatusActive,
		},
		{
			name:     "terminated is final",
			from:     instance.StatusTerminated,
			to:       instance.StatusActive,
			expected: instance.StatusTerminated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				ctx = context.Background()
				pg  = fixture.NewPostgres()
				ins = fixture.Instance(func(i *instance.Instance) {
					i.Status = tt.from
				})
			)

			pg.Run(t, ctx)
			pg.CreateInstance(t, &ins)

			advanced, err := pg.DB.AdvanceStatus(ctx, ins.ServerID, tt.to)
			require.NoError(t, err)
			require.Equal(t, tt.advanced, advanced)

			actual, err := pg.DB.GetInstance(ctx, ins.ServerID)
			require.NoError(t, err)

			expected := ins
			expected.Status = tt.expected

			if d := cmp.Diff(expected, actual, test.IgnoreFields("UpdatedAt")); d != "" {
				t.Fatalf("GetInstance() mismatch (-want +got):\n%s", d)
			}

			if !tt.advanced {
				require.Equal(t, ins.UpdatedAt, actual.UpdatedAt)
			}
		})
	}
}

func TestDBAdvanceStatusUnknownInstance(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	advanced, err := pg.DB.AdvanceStatus(ctx, "unknown", instance.StatusActive)
	require.NoError(t, err)
	require.False(t, advanced)
}

func TestDBUsedPorts(t *testing.T) {
	var (
		ctx   = context.Background()
		pg    = fixture.NewPostgres()
		b     = fixture.Build()
		a     = fixture.Agent()
		other = fixture.Agent(func(a *agent.Agent) {
			a.Host = "http://198.51.100.2:9007"
		})
	)

	pg.Run(t, ctx)
	pg.CreateBuild(t, &b)
	pg.CreateAgent(t, &a)
	pg.CreateAgent(t, &other)

	ports, err := pg.DB.UsedPorts(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, ports)
	require.Empty(t, ports)

	for _, ins := range []instance.Instance{
		fixture.Instance(func(i *instance.Instance) {
			i.ServerID = "s1"
			i.AgentID = a.ID
			i.Port = "30000"
		}),
		fixture.Instance(func(i *instance.Instance) {
			i.ServerID = "s2"
			i.AgentID = a.ID
			i.Port = "30001"
			i.Status = instance.StatusActive
		}),
		fixture.Instance(func(i *instance.Instance) {
			i.ServerID = "s3"
			i.AgentID = a.ID
			i.Port = "30002"
			i.Status = instance.StatusTerminated
		}),
		fixture.Instance(func(i *instance.Instance) {
			i.ServerID = "s4"
			i.AgentID = other.ID
			i.Port = "30003"
		}),
	} {
		_, err := pg.DB.CreateInstance(ctx, ins)
		require.NoError(t, err)
	}

	ports, err = pg.DB.UsedPorts(ctx, a.ID)
	require.NoError(t, err)

	if d := cmp.Diff(
		[]string{"30000", "30001"},
		ports,
		cmpopts.SortSlices(func(a, b string) bool { return a < b }),
	); d != "" {
		t.Fatalf("UsedPorts() mismatch (-want +got):\n%s", d)
	}
}

func TestDBInstanceReferencesBuild(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
		a   = fixture.Agent()
	)

	pg.Run(t, ctx)
	pg.CreateAgent(t, &a)

	_, err := pg.DB.CreateInstance(ctx, fixture.Instance(func(i *instance.Instance) {
		i.AgentID = a.ID
		i.BuildID = "does-not-exist"
	}))

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	require.Equal(t, "23503", pgErr.Code)
}
