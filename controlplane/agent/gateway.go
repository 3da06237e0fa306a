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

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrRequestFailed is wrapped by every error returned from a [Gateway].
// Callers must not assume that any state was created on the agent side
// when they receive it.
var ErrRequestFailed = errors.New("agent request failed")

// maxResponseBytes caps how much of an agent response is read.
const maxResponseBytes = 64 << 10

// Gateway talks to the provisioning api exposed by an agent.
// No call is retried.
type Gateway interface {
	// CreateContainer asks the agent to create a container for the image
	// that will bind to the given port. port must be the string form of an
	// integer in the configured port range.
	CreateContainer(ctx context.Context, a Agent, imageName string, port string) (string, error)

	// StartContainer starts a container previously created with CreateContainer.
	// heartbeatEndpoint is the address the game server process will send
	// heartbeats to. the public ip of the agent is returned.
	StartContainer(
		ctx context.Context,
		a Agent,
		containerID string,
		heartbeatEndpoint string,
		serverID string,
		port string,
	) (string, error)

	// IsPortAvailable asks the agent whether nothing is bound to the port on
	// its host. failures are reported as not available.
	IsPortAvailable(ctx context.Context, a Agent, port int) bool
}

type httpGateway struct {
	logger *slog.Logger
	client *http.Client
}

// NewGateway returns a [Gateway] whose calls each fail after timeout.
func NewGateway(logger *slog.Logger, timeout time.Duration) Gateway {
	return &httpGateway{
		logger: logger.With("component", "agent-gateway"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (g *httpGateway) CreateContainer(ctx context.Context, a Agent, imageName string, port string) (string, error) {
	var resp createContainerResponse
	if err := g.post(ctx, a, "/createContainer", createContainerRequest{
		ImageName: imageName,
		Port:      port,
	}, &resp); err != nil {
		return "", fmt.Errorf("%w: create container: %w", ErrRequestFailed, err)
	}

	if resp.ContainerID == "" {
		return "", fmt.Errorf("%w: create container: response contains no container id", ErrRequestFailed)
	}

	return resp.ContainerID, nil
}

func (g *httpGateway) StartContainer(
	ctx context.Context,
	a Agent,
	containerID string,
	heartbeatEndpoint string,
	serverID string,
	port string,
) (string, error) {
	var resp startContainerResponse
	if err := g.post(ctx, a, "/startContainer/"+url.PathEscape(containerID), startContainerRequest{
		HeartbeatEndpoint: heartbeatEndpoint,
		ServerID:          serverID,
		Port:              port,
	}, &resp); err != nil {
		return "", fmt.Errorf("%w: start container: %w", ErrRequestFailed, err)
	}

	if resp.PublicIP == "" {
		return "", fmt.Errorf("%w: start container: response contains no public ip", ErrRequestFailed)
	}

	return resp.PublicIP, nil
}

func (g *httpGateway) IsPortAvailable(ctx context.Context, a Agent, port int) bool {
	var resp isPortAvailableResponse
	if err := g.post(ctx, a, "/isPortAvailable", isPortAvailableRequest{
		Port: port,
	}, &resp); err != nil {
		g.logger.WarnContext(ctx, "port probe failed", "agent_id", a.ID, "port", port, "err", err)
		return false
	}
	return resp.IsPortAvailable
}

func (g *httpGateway) post(ctx context.Context, a Agent, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(a.Host, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
