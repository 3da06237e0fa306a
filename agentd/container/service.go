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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

type Config struct {
	// ConfigDir holds one directory per port, containing the gsdk
	// config of the game server bound to that port.
	ConfigDir string
	LogsDir   string
}

type Service interface {
	CreateContainer(ctx context.Context, imageName string, port string) (string, error)
	StartContainer(ctx context.Context, containerID string, serverID string, heartbeatEndpoint string, port string) error
	IsPortAvailable(ctx context.Context, port int) bool
}

type svc struct {
	logger  *slog.Logger
	cfg     Config
	runtime Runtime
}

func NewService(logger *slog.Logger, cfg Config, runtime Runtime) Service {
	return &svc{
		logger:  logger.With("component", "container-service"),
		cfg:     cfg,
		runtime: runtime,
	}
}

func (s *svc) CreateContainer(ctx context.Context, imageName string, port string) (string, error) {
	logger := s.logger.With("image", imageName, "port", port)

	dir := s.gsdkConfigDir(port)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create gsdk config dir: %w", err)
	}

	if err := os.MkdirAll(s.cfg.LogsDir, 0o755); err != nil {
		return "", fmt.Errorf("create logs dir: %w", err)
	}

	pulled, err := s.runtime.EnsureImage(ctx, imageName)
	if err != nil {
		logger.ErrorContext(ctx, "failed to ensure image", "err", err)
		return "", apierrs.ErrRuntimeFailure
	}

	if pulled {
		logger.InfoContext(ctx, "pulled image")
	}

	id, err := s.runtime.CreateContainer(ctx, Spec{
		Name:          fmt.Sprintf("fleet-%s-%s", port, uuid.NewString()[:8]),
		Image:         imageName,
		Port:          port,
		HostConfigDir: dir,
		HostLogsDir:   s.cfg.LogsDir,
		Env:           []string{gsdkConfigEnv()},
		Labels: map[string]string{
			PortLabel: port,
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create container", "err", err)
		return "", apierrs.ErrRuntimeFailure
	}

	logger.InfoContext(ctx, "created container", "container_id", id)
	return id, nil
}

func (s *svc) StartContainer(
	ctx context.Context,
	containerID string,
	serverID string,
	heartbeatEndpoint string,
	port string,
) error {
	logger := s.logger.With("container_id", containerID, "server_id", serverID, "port", port)

	if err := s.writeGSDKConfig(port, GSDKConfig{
		HeartbeatEndpoint: heartbeatEndpoint,
		SessionHostID:     serverID,
		LogFolder:         logFolder(serverID),
	}); err != nil {
		return fmt.Errorf("write gsdk config: %w", err)
	}

	if err := s.runtime.StartContainer(ctx, containerID); err != nil {
		if errors.Is(err, apierrs.ErrContainerNotFound) {
			return err
		}
		logger.ErrorContext(ctx, "failed to start container", "err", err)
		return apierrs.ErrRuntimeFailure
	}

	logger.InfoContext(ctx, "started container")
	return nil
}

// IsPortAvailable reports whether a tcp listener can be bound to the port.
func (s *svc) IsPortAvailable(ctx context.Context, port int) bool {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		s.logger.DebugContext(ctx, "port is in use", "port", port, "err", err)
		return false
	}
	_ = lis.Close()
	return true
}

func (s *svc) gsdkConfigDir(port string) string {
	return filepath.Join(s.cfg.ConfigDir, port)
}

func (s *svc) writeGSDKConfig(port string, cfg GSDKConfig) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	dir := s.gsdkConfigDir(port)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, GSDKConfigFileName), data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
