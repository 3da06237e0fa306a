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

package build

import "context"

type Repository interface {
	CreateBuild(ctx context.Context, b Build) (Build, error)
	GetBuild(ctx context.Context, buildID string) (Build, error)
	ListBuilds(ctx context.Context) ([]Build, error)
	UpdateBuild(ctx context.Context, b Build) (Build, error)

	// DeleteBuild fails with [errors.ErrBuildInUse] as long as
	// game server instances reference the build.
	DeleteBuild(ctx context.Context, buildID string) error
}
