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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/spacechunks/fleet/controlplane/build"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/postgres/query"
)

func buildFromRow(b query.Build) build.Build {
	return build.Build{
		BuildID:   b.BuildID,
		ImageName: b.ImageName,
		CreatedAt: b.CreatedAt.Time.UTC(),
		UpdatedAt: b.UpdatedAt.Time.UTC(),
	}
}

func (db *DB) CreateBuild(ctx context.Context, b build.Build) (build.Build, error) {
	now := timestamptz(time.Now())

	var ret build.Build
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.CreateBuild(ctx, query.CreateBuildParams{
			BuildID:   b.BuildID,
			ImageName: b.ImageName,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if hasCode(err, codeUniqueViolation) {
			return apierrs.ErrBuildExists
		}

		if err != nil {
			return fmt.Errorf("create build: %w", err)
		}

		ret = buildFromRow(row)
		return nil
	}); err != nil {
		return build.Build{}, err
	}

	return ret, nil
}

func (db *DB) GetBuild(ctx context.Context, buildID string) (build.Build, error) {
	var ret build.Build
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.GetBuild(ctx, buildID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrBuildNotExists
		}

		if err != nil {
			return fmt.Errorf("get build: %w", err)
		}

		ret = buildFromRow(row)
		return nil
	}); err != nil {
		return build.Build{}, err
	}

	return ret, nil
}

func (db *DB) ListBuilds(ctx context.Context) ([]build.Build, error) {
	ret := make([]build.Build, 0)
	if err := db.do(ctx, func(q *query.Queries) error {
		rows, err := q.ListBuilds(ctx)
		if err != nil {
			return fmt.Errorf("list builds: %w", err)
		}

		for _, row := range rows {
			ret = append(ret, buildFromRow(row))
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return ret, nil
}

func (db *DB) UpdateBuild(ctx context.Context, b build.Build) (build.Build, error) {
	var ret build.Build
	if err := db.do(ctx, func(q *query.Queries) error {
		row, err := q.UpdateBuild(ctx, query.UpdateBuildParams{
			BuildID:   b.BuildID,
			ImageName: b.ImageName,
			UpdatedAt: timestamptz(time.Now()),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrBuildNotExists
		}

		if err != nil {
			return fmt.Errorf("update build: %w", err)
		}

		ret = buildFromRow(row)
		return nil
	}); err != nil {
		return build.Build{}, err
	}

	return ret, nil
}

func (db *DB) DeleteBuild(ctx context.Context, buildID string) error {
	return db.do(ctx, func(q *query.Queries) error {
		n, err := q.DeleteBuild(ctx, buildID)
		if hasCode(err, codeForeignKeyViolation) {
			return apierrs.ErrBuildInUse
		}

		if err != nil {
			return fmt.Errorf("delete build: %w", err)
		}

		if n == 0 {
			return apierrs.ErrBuildNotExists
		}

		return nil
	})
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:  t.UTC(),
		Valid: true,
	}
}
