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
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spacechunks/fleet/controlplane/agent"
	"github.com/spacechunks/fleet/controlplane/build"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/controlplane/postgres"
	"github.com/spacechunks/fleet/controlplane/postgres/migrations"
	"github.com/spacechunks/fleet/test"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type Postgres struct {
	DB         *postgres.DB
	Pool       *pgxpool.Pool
	ConnString string
}

func NewPostgres() *Postgres {
	return &Postgres{}
}

// Run starts a postgres container and applies all migrations. the test is
// skipped if FUNCTESTS_POSTGRES_IMAGE is not set.
func (p *Postgres) Run(t *testing.T, ctx context.Context) {
	var (
		image = os.Getenv("FUNCTESTS_POSTGRES_IMAGE")
		user  = os.Getenv("FUNCTESTS_POSTGRES_USER")
		pass  = os.Getenv("FUNCTESTS_POSTGRES_PASS")
		db    = os.Getenv("FUNCTESTS_POSTGRES_DB")
	)

	if image == "" {
		t.Skip("FUNCTESTS_POSTGRES_IMAGE is not set")
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "functests-db-" + test.RandHexStr(t),
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": pass,
				"POSTGRES_DB":       db,
			},
			HostConfigModifier: func(cfg *container.HostConfig) {
				cfg.AutoRemove = true
			},
			WaitingFor: wait.ForExposedPort(),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = ctr.Terminate(context.Background())
	})

	ip, err := ctr.Host(ctx)
	require.NoError(t, err)

	mapped, err := ctr.MappedPort(ctx, "5432")
	require.NoError(t, err)

	p.ConnString = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, ip, mapped.Port(), db)

	require.NoError(t, migrations.Migrate(p.ConnString, 20*time.Second))

	pool, err := pgxpool.New(ctx, p.ConnString)
	require.NoError(t, err)

	t.Cleanup(pool.Close)

	p.Pool = pool
	p.DB = postgres.NewDB(pool)
}

// CreateBuild inserts the build. it also updates the passed object so
// that dynamically generated values like created_at have the correct value.
func (p *Postgres) CreateBuild(t *testing.T, b *build.Build) {
	created, err := p.DB.CreateBuild(context.Background(), *b)
	require.NoError(t, err)
	*b = created
}

// CreateAgent inserts the agent. it also updates the passed object so
// that dynamically generated values like id or created_at have the correct value.
func (p *Postgres) CreateAgent(t *testing.T, a *agent.Agent) {
	created, err := p.DB.CreateAgent(context.Background(), *a)
	require.NoError(t, err)
	*a = created
}

// CreateInstance inserts the instance together with its build and agent.
func (p *Postgres) CreateInstance(t *testing.T, ins *instance.Instance) {
	var (
		b = Build(func(b *build.Build) {
			b.BuildID = ins.BuildID
		})
		a = Agent(func(a *agent.Agent) {
			a.Host = "http://" + test.RandHexStr(t) + ".example.com:9007"
		})
	)

	p.CreateBuild(t, &b)
	p.CreateAgent(t, &a)

	ins.AgentID = a.ID

	created, err := p.DB.CreateInstance(context.Background(), *ins)
	require.NoError(t, err)
	*ins = created
}
