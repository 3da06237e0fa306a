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

// Package api is a client for the control plane http api.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spacechunks/fleet/controlplane/agent"
	"github.com/spacechunks/fleet/controlplane/build"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
)

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     httpClient,
	}
}

// Allocation is the result of requesting a game server.
type Allocation struct {
	ServerID                string    `json:"ServerId"`
	IPv4Address             string    `json:"IPV4Address"`
	Ports                   []Port    `json:"Ports"`
	LastStateTransitionTime time.Time `json:"LastStateTransitionTime"`
	BuildID                 string    `json:"BuildId"`
	SessionID               string    `json:"SessionId"`
	State                   string    `json:"State"`
}

type Port struct {
	Name     string `json:"Name"`
	Num      int    `json:"Num"`
	Protocol string `json:"Protocol"`
}

func (c *Client) CreateBuild(ctx context.Context, buildID string, imageName string) (build.Transport, error) {
	var b build.Transport
	err := c.do(ctx, http.MethodPost, "/build", map[string]string{
		"buildId":   buildID,
		"imageName": imageName,
	}, &b)
	return b, err
}

func (c *Client) ListBuilds(ctx context.Context) ([]build.Transport, error) {
	var l []build.Transport
	err := c.do(ctx, http.MethodGet, "/build", nil, &l)
	return l, err
}

func (c *Client) DeleteBuild(ctx context.Context, buildID string) error {
	return c.do(ctx, http.MethodDelete, "/build/"+url.PathEscape(buildID), nil, nil)
}

func (c *Client) CreateAgent(ctx context.Context, host string) (agent.Transport, error) {
	var a agent.Transport
	err := c.do(ctx, http.MethodPost, "/agent", map[string]string{
		"host": host,
	}, &a)
	return a, err
}

func (c *Client) ListAgents(ctx context.Context) ([]agent.Transport, error) {
	var l []agent.Transport
	err := c.do(ctx, http.MethodGet, "/agent", nil, &l)
	return l, err
}

func (c *Client) DeleteAgent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/agent/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) ListInstances(ctx context.Context) ([]instance.Transport, error) {
	var l []instance.Transport
	err := c.do(ctx, http.MethodGet, "/gameServerInstances", nil, &l)
	return l, err
}

func (c *Client) TerminateInstance(ctx context.Context, serverID string) error {
	return c.do(ctx, http.MethodPost, "/terminateGameServerInstance/"+url.PathEscape(serverID), nil, nil)
}

func (c *Client) RequestServer(
	ctx context.Context,
	buildID string,
	sessionID string,
	sessionCookie string,
	regions []string,
) (Allocation, error) {
	if regions == nil {
		regions = []string{}
	}

	var resp struct {
		Data Allocation `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/requestMultiplayerServer", map[string]any{
		"PreferredRegions": regions,
		"SessionId":        sessionID,
		"BuildId":          buildID,
		"SessionCookie":    sessionCookie,
	}, &resp); err != nil {
		return Allocation{}, err
	}

	return resp.Data, nil
}

// do sends body as json and decodes the response into out. error
// responses are returned as [apierrs.Error].
func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, r)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e apierrs.Response
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return apierrs.New(e.Error.Code, resp.StatusCode, e.Error.Message, e.Error.Fields)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
