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

package instance_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/controlplane/instance"
	"github.com/spacechunks/fleet/internal/mock"
	"github.com/spacechunks/fleet/internal/router"
	"github.com/spacechunks/fleet/test/fixture"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverEnv struct {
	url    string
	repo   *memRepo
	builds *mock.MockBuildService
	gw     *mock.MockAgentGateway
	l      *instance.Lifecycle
}

func newServerEnv(t *testing.T) serverEnv {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		repo   = newMemRepo(fixture.Agent())
		builds = mock.NewMockBuildService(t)
		gw     = mock.NewMockAgentGateway(t)
		alloc  = newAllocator(repo, builds, gw, instance.PortRange{Start: 30000, End: 30009}, false)
		l      = newLifecycle(repo, func() time.Time { return now })
		r      = router.New()
	)

	instance.NewServer(logger, instance.NewService(repo, alloc, l)).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return serverEnv{
		url:    srv.URL,
		repo:   repo,
		builds: builds,
		gw:     gw,
		l:      l,
	}
}

func do(t *testing.T, method string, url string, body string) (int, map[string]any) {
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var ret map[string]any
	if len(data) > 0 && data[0] == '{' {
		require.NoError(t, json.Unmarshal(data, &ret))
	}

	return resp.StatusCode, ret
}

func TestRequestMultiplayerServerAPI(t *testing.T) {
	var (
		env = newServerEnv(t)
		ag  = fixture.Agent()
		b   = fixture.Build()
	)

	env.builds.EXPECT().
		GetBuild(mocky.Anything, b.BuildID).
		Return(b, nil)
	env.gw.EXPECT().
		CreateContainer(mocky.Anything, ag, b.ImageName, "30000").
		Return("srv-1", nil)
	env.gw.EXPECT().
		StartContainer(mocky.Anything, ag, "srv-1", heartbeatEndpoint, "srv-1", "30000").
		Return(publicIP, nil)

	status, body := do(t, http.MethodPost, env.url+"/requestMultiplayerServer", `{
		"PreferredRegions": ["EastUs"],
		"SessionId": "`+fixture.SessionID+`",
		"BuildId": "`+b.BuildID+`",
		"SessionCookie": "cookie",
		"InitialPlayers": ["p1", "p2"]
	}`)

	require.Equal(t, http.StatusOK, status)

	expected := map[string]any{
		"code":   float64(200),
		"status": "OK",
		"data": map[string]any{
			"ServerId":    "srv-1",
			"IPV4Address": publicIP,
			"Ports": []any{
				map[string]any{
					"Name":     "gameport",
					"Num":      float64(30000),
					"Protocol": "TCP",
				},
			},
			"LastStateTransitionTime": now.Format(time.RFC3339Nano),
			"BuildId":                 b.BuildID,
			"SessionId":               fixture.SessionID,
			"State":                   "StandingBy",
		},
	}

	if d := cmp.Diff(expected, body); d != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", d)
	}

	require.Equal(t, []string{"p1", "p2"}, env.repo.get("srv-1").SessionConfig.InitialPlayers)

	status, body = do(t, http.MethodPatch, env.url+"/v1/sessionHosts/srv-1", `{
		"CurrentGameState": "StandingBy",
		"CurrentGameHealth": "Healthy",
		"CurrentPlayers": []
	}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []any{"p1", "p2"}, body["sessionConfig"].(map[string]any)["initialPlayers"])
}

func TestRequestMultiplayerServerValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "session id is not a uuid",
			body:   `{"PreferredRegions": [], "SessionId": "nope", "BuildId": "b", "SessionCookie": ""}`,
			fields: []string{"SessionId"},
		},
		{
			name:   "missing fields",
			body:   `{}`,
			fields: []string{"PreferredRegions", "SessionId", "BuildId"},
		},
		{
			name:   "wrong type",
			body:   `{"PreferredRegions": "EastUs"}`,
			fields: []string{"PreferredRegions"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newServerEnv(t)

			status, body := do(t, http.MethodPost, env.url+"/requestMultiplayerServer", tt.body)
			require.Equal(t, http.StatusBadRequest, status)

			e := body["error"].(map[string]any)
			require.Equal(t, string(apierrs.CodeValidation), e["code"])
			require.Equal(t, string(apierrs.RetryNever), e["retry"])

			var fields []string
			for _, f := range e["fields"].([]any) {
				fields = append(fields, f.(map[string]any)["field"].(string))
			}
			require.Equal(t, tt.fields, fields)
		})
	}
}

func TestHeartbeatAPI(t *testing.T) {
	tests := []struct {
		name     string
		serverID string
		body     string
		status   int
		expected map[string]any
	}{
		{
			name:     "standing by gets session config",
			serverID: fixture.ServerID,
			body:     `{"CurrentGameState": "StandingBy", "CurrentGameHealth": "Healthy", "CurrentPlayers": []}`,
			status:   http.StatusOK,
			expected: map[string]any{
				"operation": "Active",
				"sessionConfig": map[string]any{
					"sessionId":     fixture.SessionID,
					"sessionCookie": "cookie",
					"metadata": map[string]any{
						"gamePort": "30000",
					},
				},
			},
		},
		{
			name:     "active continues",
			serverID: fixture.ServerID,
			body:     `{"CurrentGameState": "Active", "CurrentGameHealth": "Healthy", "CurrentPlayers": [{"PlayerId": "p1"}]}`,
			status:   http.StatusOK,
			expected: map[string]any{
				"operation": "Continue",
			},
		},
		{
			name:     "unknown server",
			serverID: "unknown",
			body:     `{"CurrentGameState": "Active", "CurrentGameHealth": "Healthy", "CurrentPlayers": []}`,
			status:   http.StatusNotFound,
			expected: map[string]any{
				"error": map[string]any{
					"code":    "NotFound",
					"message": "server not found",
					"retry":   "never",
				},
			},
		},
		{
			name:     "unknown server with invalid body",
			serverID: "unknown",
			body:     `{"CurrentGameState": "Bogus"}`,
			status:   http.StatusNotFound,
			expected: map[string]any{
				"error": map[string]any{
					"code":    "NotFound",
					"message": "server not found",
					"retry":   "never",
				},
			},
		},
		{
			name:     "unknown server with malformed body",
			serverID: "unknown",
			body:     `{"CurrentGameState": `,
			status:   http.StatusNotFound,
			expected: map[string]any{
				"error": map[string]any{
					"code":    "NotFound",
					"message": "server not found",
					"retry":   "never",
				},
			},
		},
		{
			name:     "unknown game state",
			serverID: fixture.ServerID,
			body:     `{"CurrentGameState": "Sleeping", "CurrentGameHealth": "Healthy", "CurrentPlayers": []}`,
			status:   http.StatusBadRequest,
			expected: map[string]any{
				"error": map[string]any{
					"code":    "ValidationError",
					"message": "request validation failed",
					"retry":   "never",
					"fields": []any{
						map[string]any{
							"field":       "CurrentGameState",
							"description": "is not a known game state",
						},
					},
				},
			},
		},
		{
			name:     "malformed body",
			serverID: fixture.ServerID,
			body:     `{"CurrentGameState": `,
			status:   http.StatusBadRequest,
			expected: map[string]any{
				"error": map[string]any{
					"code":    "ValidationError",
					"message": "request body is not valid json",
					"retry":   "never",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newServerEnv(t)
			env.repo.put(fixture.Instance(func(i *instance.Instance) {
				i.CreatedAt = now
			}))

			status, body := do(t, http.MethodPatch, env.url+"/v1/sessionHosts/"+tt.serverID, tt.body)
			require.Equal(t, tt.status, status)

			if d := cmp.Diff(tt.expected, body); d != "" {
				t.Fatalf("response mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestTerminateGameServerInstanceAPI(t *testing.T) {
	env := newServerEnv(t)
	env.repo.put(fixture.Instance(func(i *instance.Instance) {
		i.CreatedAt = now
	}))

	status, body := do(t, http.MethodPost, env.url+"/terminateGameServerInstance/"+fixture.ServerID, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{"success": true}, body)
	require.True(t, env.l.Pending(fixture.ServerID))

	status, _ = do(t, http.MethodPost, env.url+"/terminateGameServerInstance/unknown", "")
	require.Equal(t, http.StatusNotFound, status)
}

func TestListGameServerInstancesAPI(t *testing.T) {
	env := newServerEnv(t)
	env.repo.put(fixture.Instance())
	env.repo.put(fixture.Instance(func(i *instance.Instance) {
		i.ServerID = "terminated"
		i.Status = instance.StatusTerminated
	}))

	resp, err := http.Get(env.url + "/gameServerInstances")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var actual []instance.Transport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&actual))

	if d := cmp.Diff([]instance.Transport{instance.ToTransport(fixture.Instance())}, actual); d != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", d)
	}
}
