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

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spacechunks/fleet/controlplane/agent"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/postgres/query"
)

func agentFromRow(a query.Agent) agent.Agent {
	return agent.Agent{
		ID:        a.ID,
		Host:      a.Host,
		CreatedAt: a.CreatedAt.Time.UTC(),
		UpdatedAt: a.UpdatedAt.Time.UTC(),
	}
}

func (db *DB) CreateAgent(ctx context.Context, a agent.Agent) (agent.Agent, error) {
	now := timestamptz(time.Now())

	var ret agent.Agent
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.CreateAgent(ctx, query.CreateAgentParams{
			Host:      a.Host,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if hasCode(err, codeUniqueViolation) {
			return apierrs.ErrAgentExists
		}

		if err != nil {
			return fmt.Errorf("create agent: %w", err)
		}

		ret = agentFromRow(row)
		return nil
	}); err != nil {
		return agent.Agent{}, err
	}

	return ret, nil
}

func (db *DB) GetAgent(ctx context.Context, id int64) (agent.Agent, error) {
	var ret agent.Agent
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.GetAgent(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrAgentNotFound
		}

		if err != nil {
			return fmt.Errorf("get agent: %w", err)
		}

		ret = agentFromRow(row)
		return nil
	}); err != nil {
		return agent.Agent{}, err
	}

	return ret, nil
}

func (db *DB) ListAgents(ctx context.Context) ([]agent.Agent, error) {
	ret := make([]agent.Agent, 0)
	if err := db.do(ctx, func(q *query.Queries) error {
		rows, err := q.ListAgents(ctx)
		if err != nil {
			return fmt.Errorf("list agents: %w", err)
		}

		for _, row := range rows {
			ret = append(ret, agentFromRow(row))
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return ret, nil
}

func (db *DB) UpdateAgent(ctx context.Context, a agent.Agent) (agent.Agent, error) {
	var ret agent.Agent
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.UpdateAgent(ctx, query.UpdateAgentParams{
			ID:        a.ID,
			Host:      a.Host,
			UpdatedAt: timestamptz(time.Now()),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrAgentNotFound
		}

		if hasCode(err, codeUniqueViolation) {
			return apierrs.ErrAgentExists
		}

		if err != nil {
			return fmt.Errorf("update agent: %w", err)
		}

		ret = agentFromRow(row)
		return nil
	}); err != nil {
		return agent.Agent{}, err
	}

	return ret, nil
}

func (db *DB) DeleteAgent(ctx context.Context, id int64) error {
	return db.do(ctx, func(q *query.Queries) error {
		n, err := q.DeleteAgent(ctx, id)
		if hasCode(err, codeForeignKeyViolation) {
			return apierrs.ErrAgentInUse
		}

		if err != nil {
			return fmt.Errorf("delete agent: %w", err)
		}

		if n == 0 {
			return apierrs.ErrAgentNotFound
		}

		return nil
	})
}

// AvailableAgent returns the agent with the lowest id that runs less
// than maxInstances instances which are not terminated.
func (db *DB) AvailableAgent(ctx context.Context, maxInstances int) (agent.Agent, error) {
	var ret agent.Agent
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.AvailableAgent(ctx, int64(maxInstances))
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrNoAgentsAvailable
		}

		if err != nil {
			return fmt.Errorf("available agent: %w", err)
		}

		ret = agentFromRow(row)
		return nil
	}); err != nil {
		return agent.Agent{}, err
	}

	return ret, nil
}
