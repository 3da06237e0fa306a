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

import (
	"context"
	"fmt"
	"strings"

	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

const maxBuildIDLength = 128

type Service interface {
	CreateBuild(ctx context.Context, b Build) (Build, error)
	GetBuild(ctx context.Context, buildID string) (Build, error)
	ListBuilds(ctx context.Context) ([]Build, error)
	UpdateBuild(ctx context.Context, buildID string, imageName string) (Build, error)
	DeleteBuild(ctx context.Context, buildID string) error
}

type svc struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &svc{
		repo: repo,
	}
}

func (s *svc) CreateBuild(ctx context.Context, b Build) (Build, error) {
	if err := validate(b); err != nil {
		return Build{}, err
	}

	ret, err := s.repo.CreateBuild(ctx, b)
	if err != nil {
		return Build{}, fmt.Errorf("create build: %w", err)
	}
	return ret, nil
}

func (s *svc) GetBuild(ctx context.Context, buildID string) (Build, error) {
	b, err := s.repo.GetBuild(ctx, buildID)
	if err != nil {
		return Build{}, err
	}
	return b, nil
}

func (s *svc) ListBuilds(ctx context.Context) ([]Build, error) {
	l, err := s.repo.ListBuilds(ctx)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *svc) UpdateBuild(ctx context.Context, buildID string, imageName string) (Build, error) {
	b := Build{
		BuildID:   buildID,
		ImageName: imageName,
	}

	if err := validate(b); err != nil {
		return Build{}, err
	}

	ret, err := s.repo.UpdateBuild(ctx, b)
	if err != nil {
		return Build{}, fmt.Errorf("update build: %w", err)
	}
	return ret, nil
}

func (s *svc) DeleteBuild(ctx context.Context, buildID string) error {
	if err := s.repo.DeleteBuild(ctx, buildID); err != nil {
		return fmt.Errorf("delete build: %w", err)
	}
	return nil
}

func validate(b Build) error {
	var violations []apierrs.FieldViolation

	if strings.TrimSpace(b.BuildID) == "" {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "buildId",
			Description: "must not be empty",
		})
	}

	if len(b.BuildID) > maxBuildIDLength {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "buildId",
			Description: fmt.Sprintf("must not be longer than %d characters", maxBuildIDLength),
		})
	}

	if strings.TrimSpace(b.ImageName) == "" {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "imageName",
			Description: "must not be empty",
		})
	}

	if len(violations) > 0 {
		return apierrs.Validation(violations...)
	}

	return nil
}
