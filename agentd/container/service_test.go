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

package container_test

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spacechunks/fleet/agentd/container"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/internal/mock"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	imageName = "ghcr.io/example/lobby:1.4.2"
	serverID  = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	endpoint  = "203.0.113.10:9006"
)

func newService(t *testing.T, rt container.Runtime) (container.Service, container.Config) {
	dir := t.TempDir()
	cfg := container.Config{
		ConfigDir: filepath.Join(dir, "config"),
		LogsDir:   filepath.Join(dir, "logs"),
	}
	return container.NewService(slog.New(slog.NewTextHandler(os.Stdout, nil)), cfg, rt), cfg
}

func TestCreateContainer(t *testing.T) {
	var (
		ctx      = context.Background()
		rt       = mock.NewMockContainerRuntime(t)
		svc, cfg = newService(t, rt)
	)

	rt.EXPECT().
		EnsureImage(mocky.Anything, imageName).
		Return(true, nil)

	rt.EXPECT().
		CreateContainer(mocky.Anything, mocky.Anything).
		RunAndReturn(func(_ context.Context, spec container.Spec) (string, error) {
			expected := container.Spec{
				Image:         imageName,
				Port:          "30000",
				HostConfigDir: filepath.Join(cfg.ConfigDir, "30000"),
				HostLogsDir:   cfg.LogsDir,
				Env:           []string{"GSDK_CONFIG_FILE=/data/Config/gsdkConfig.json"},
				Labels: map[string]string{
					container.PortLabel: "30000",
				},
			}
			if d := cmp.Diff(expected, spec, cmpopts.IgnoreFields(container.Spec{}, "Name")); d != "" {
				t.Errorf("spec mismatch (-want +got):\n%s", d)
			}
			require.Regexp(t, `^fleet-30000-[0-9a-f]{8}$`, spec.Name)
			return "c1", nil
		})

	id, err := svc.CreateContainer(ctx, imageName, "30000")
	require.NoError(t, err)
	require.Equal(t, "c1", id)

	require.DirExists(t, filepath.Join(cfg.ConfigDir, "30000"))
	require.DirExists(t, cfg.LogsDir)
}

func TestCreateContainerRuntimeFailures(t *testing.T) {
	tests := []struct {
		name string
		prep func(*mock.MockContainerRuntime)
	}{
		{
			name: "image cannot be pulled",
			prep: func(rt *mock.MockContainerRuntime) {
				rt.EXPECT().
					EnsureImage(mocky.Anything, imageName).
					Return(false, errors.New("manifest unknown"))
			},
		},
		{
			name: "container cannot be created",
			prep: func(rt *mock.MockContainerRuntime) {
				rt.EXPECT().
					EnsureImage(mocky.Anything, imageName).
					Return(false, nil)
				rt.EXPECT().
					CreateContainer(mocky.Anything, mocky.Anything).
					Return("", errors.New("conflict"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				rt     = mock.NewMockContainerRuntime(t)
				svc, _ = newService(t, rt)
			)

			tt.prep(rt)

			_, err := svc.CreateContainer(context.Background(), imageName, "30000")
			require.ErrorIs(t, err, apierrs.ErrRuntimeFailure)
		})
	}
}

func TestStartContainerWritesGSDKConfig(t *testing.T) {
	var (
		ctx      = context.Background()
		rt       = mock.NewMockContainerRuntime(t)
		svc, cfg = newService(t, rt)
	)

	rt.EXPECT().
		StartContainer(mocky.Anything, "c1").
		Return(nil)

	require.NoError(t, svc.StartContainer(ctx, "c1", serverID, endpoint, "30000"))

	data, err := os.ReadFile(filepath.Join(cfg.ConfigDir, "30000", container.GSDKConfigFileName))
	require.NoError(t, err)

	expected := `{
    "heartbeatEndpoint": "203.0.113.10:9006",
    "sessionHostId": "` + serverID + `",
    "logFolder": "/data/GameLogs/` + serverID + `/"
}`
	require.Equal(t, expected, string(data))
}

func TestStartContainerErrors(t *testing.T) {
	tests := []struct {
		name     string
		rtErr    error
		expected error
	}{
		{
			name:     "container does not exist",
			rtErr:    apierrs.ErrContainerNotFound,
			expected: apierrs.ErrContainerNotFound,
		},
		{
			name:     "runtime fails",
			rtErr:    errors.New("bind: address already in use"),
			expected: apierrs.ErrRuntimeFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				rt     = mock.NewMockContainerRuntime(t)
				svc, _ = newService(t, rt)
			)

			rt.EXPECT().
				StartContainer(mocky.Anything, "c1").
				Return(tt.rtErr)

			err := svc.StartContainer(context.Background(), "c1", serverID, endpoint, "30000")
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestIsPortAvailable(t *testing.T) {
	var (
		ctx    = context.Background()
		svc, _ = newService(t, mock.NewMockContainerRuntime(t))
	)

	lis, err := net.Listen("tcp", ":0")
	require.NoError(t, err)

	port := lis.Addr().(*net.TCPAddr).Port

	require.False(t, svc.IsPortAvailable(ctx, port))
	require.NoError(t, lis.Close())
	require.True(t, svc.IsPortAvailable(ctx, port))
}
