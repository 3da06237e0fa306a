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

package container

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

// Runtime creates and starts game server containers on the local host.
type Runtime interface {
	// EnsureImage pulls the image if it is not present. it reports whether
	// the image had to be pulled.
	EnsureImage(ctx context.Context, imageName string) (bool, error)
	CreateContainer(ctx context.Context, spec Spec) (string, error)
	StartContainer(ctx context.Context, containerID string) error
}

type dockerRuntime struct {
	logger *slog.Logger
	client client.APIClient
}

func NewDockerRuntime(logger *slog.Logger, c client.APIClient) Runtime {
	return &dockerRuntime{
		logger: logger.With("component", "docker-runtime"),
		client: c,
	}
}

func (r *dockerRuntime) EnsureImage(ctx context.Context, imageName string) (bool, error) {
	_, err := r.client.ImageInspect(ctx, imageName)
	if err == nil {
		return false, nil
	}

	if !client.IsErrNotFound(err) {
		return false, fmt.Errorf("inspect image: %w", err)
	}

	r.logger.InfoContext(ctx, "pulling image", "image", imageName)

	rc, err := r.client.ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		return false, fmt.Errorf("pull image: %w", err)
	}
	defer rc.Close()

	// the pull is only finished once the progress stream is drained
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return false, fmt.Errorf("read pull progress: %w", err)
	}

	return true, nil
}

func (r *dockerRuntime) CreateContainer(ctx context.Context, spec Spec) (string, error) {
	p, err := nat.NewPort("tcp", spec.Port)
	if err != nil {
		return "", fmt.Errorf("parse port: %w", err)
	}

	resp, err := r.client.ContainerCreate(
		ctx,
		&container.Config{
			Image:        spec.Image,
			Env:          spec.Env,
			Labels:       spec.Labels,
			ExposedPorts: nat.PortSet{p: struct{}{}},
		},
		&container.HostConfig{
			NetworkMode: "host",
			PortBindings: nat.PortMap{
				p: []nat.PortBinding{{HostPort: spec.Port}},
			},
			Mounts: []mount.Mount{
				{
					Type:     mount.TypeBind,
					Source:   spec.HostConfigDir,
					Target:   containerConfigDir,
					ReadOnly: true,
				},
				{
					Type:   mount.TypeBind,
					Source: spec.HostLogsDir,
					Target: containerLogsDir,
				},
			},
		},
		nil,
		nil,
		spec.Name,
	)
	if err != nil {
		return "", fmt.Errorf("create container: %w", err)
	}

	for _, w := range resp.Warnings {
		r.logger.WarnContext(ctx, "container create warning", "container_id", resp.ID, "warning", w)
	}

	return resp.ID, nil
}

func (r *dockerRuntime) StartContainer(ctx context.Context, containerID string) error {
	if err := r.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		if client.IsErrNotFound(err) {
			return apierrs.ErrContainerNotFound
		}
		return fmt.Errorf("start container: %w", err)
	}
	return nil
}
