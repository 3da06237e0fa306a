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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/controlplane/postgres/query"
)

func instanceFromRow(row query.GameServerInstance) (instance.Instance, error) {
	var cfg instance.SessionConfig
	if err := json.Unmarshal(row.SessionConfig, &cfg); err != nil {
		return instance.Instance{}, fmt.Errorf("unmarshal session config: %w", err)
	}

	return instance.Instance{
		ServerID:      row.ServerID,
		AgentID:       row.AgentID,
		BuildID:       row.BuildID,
		Port:          row.Port,
		SessionConfig: cfg,
		Status:        instance.Status(row.Status),
		CreatedAt:     row.CreatedAt.Time.UTC(),
		UpdatedAt:     row.UpdatedAt.Time.UTC(),
	}, nil
}

func (db *DB) CreateInstance(ctx context.Context, ins instance.Instance) (instance.Instance, error) {
	cfg, err := json.Marshal(ins.SessionConfig)
	if err != nil {
		return instance.Instance{}, fmt.Errorf("marshal session config: %w", err)
	}

	var ret instance.Instance
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.CreateInstance(ctx, query.CreateInstanceParams{
			ServerID:      ins.ServerID,
			AgentID:       ins.AgentID,
			BuildID:       ins.BuildID,
			Port:          ins.Port,
			SessionConfig: cfg,
			Status:        query.InstanceStatus(ins.Status),
			CreatedAt:     timestamptz(ins.CreatedAt),
			UpdatedAt:     timestamptz(ins.UpdatedAt),
		})
		if err != nil {
			return fmt.Errorf("create instance: %w", err)
		}

		ret, err = instanceFromRow(row)
		return err
	}); err != nil {
		return instance.Instance{}, err
	}

	return ret, nil
}

func (db *DB) GetInstance(ctx context.Context, serverID string) (instance.Instance, error) {
	var ret instance.Instance
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.GetInstance(ctx, serverID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrInstanceNotFound
		}

		if err != nil {
			return fmt.Errorf("get instance: %w", err)
		}

		ret, err = instanceFromRow(row)
		return err
	}); err != nil {
		return instance.Instance{}, err
	}

	return ret, nil
}

func (db *DB) ListUnterminatedInstances(ctx context.Context) ([]instance.Instance, error) {
	ret := make([]instance.Instance, 0)
	if err := db.do(ctx, func(q *query.Queries) error {
		rows, err := q.ListUnterminatedInstances(ctx)
		if err != nil {
			return fmt.Errorf("list instances: %w", err)
		}

		for _, row := range rows {
			ins, err := instanceFromRow(row)
			if err != nil {
				return fmt.Errorf("instance %s: %w", row.ServerID, err)
			}
			ret = append(ret, ins)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return ret, nil
}

func (db *DB) AdvanceStatus(ctx context.Context, serverID string, status instance.Status) (bool, error) {
	var advanced bool
	if err := db.do(ctx, func(q *query.Queries) error {
		n, err := q.AdvanceInstanceStatus(ctx, query.AdvanceInstanceStatusParams{
			ServerID:  serverID,
			Status:    query.InstanceStatus(status),
			UpdatedAt: timestamptz(time.Now()),
		})
		if err != nil {
			return fmt.Errorf("advance status: %w", err)
		}

		advanced = n > 0
		return nil
	}); err != nil {
		return false, err
	}

	return advanced, nil
}

func (db *DB) UsedPorts(ctx context.Context, agentID int64) ([]string, error) {
	ret := make([]string, 0)
	if err := db.do(ctx, func(q *query.Queries) error {
		ports, err := q.UsedPorts(ctx, agentID)
		if err != nil {
			return fmt.Errorf("used ports: %w", err)
		}

		ret = append(ret, ports...)
		return nil
	}); err != nil {
		return nil, err
	}

	return ret, nil
}
