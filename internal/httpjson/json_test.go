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

package httpjson_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrs "github.com/spacechunks/fleet/controlplane/errors"
	"github.com/spacechunks/fleet/internal/httpjson"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		strict   bool
		expected payload
		err      error
		fields   []apierrs.FieldViolation
	}{
		{
			name:     "works",
			body:     `{"name": "a", "count": 2}`,
			expected: payload{Name: "a", Count: 2},
		},
		{
			name:     "unknown fields are ignored",
			body:     `{"name": "a", "other": true}`,
			expected: payload{Name: "a"},
		},
		{
			name:   "strict rejects unknown fields",
			body:   `{"name": "a", "other": true}`,
			strict: true,
			err:    apierrs.ErrInvalidBody,
		},
		{
			name: "malformed",
			body: `{"name": `,
			err:  apierrs.ErrInvalidBody,
		},
		{
			name: "wrong type",
			body: `{"count": "two"}`,
			err:  apierrs.Validation(),
			fields: []apierrs.FieldViolation{
				{
					Field:       "count",
					Description: "expected int",
				},
			},
		},
		{
			name: "too large",
			body: `{"name": "` + strings.Repeat("a", 2<<20) + `"}`,
			err:  apierrs.ErrInvalidBody,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				r      = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
				actual payload
				err    error
			)

			if tt.strict {
				err = httpjson.DecodeStrict(r, &actual)
			} else {
				err = httpjson.Decode(r, &actual)
			}

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Equal(t, tt.fields, apierrs.From(err).Fields)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected apierrs.Response
	}{
		{
			name:     "api error",
			err:      apierrs.ErrNoPortsAvailable,
			status:   http.StatusBadRequest,
			expected: apierrs.ErrNoPortsAvailable.Response(),
		},
		{
			name:     "wrapped api error",
			err:      errors.Join(errors.New("context"), apierrs.ErrInstanceNotFound),
			status:   http.StatusNotFound,
			expected: apierrs.ErrInstanceNotFound.Response(),
		},
		{
			name:     "other errors are hidden",
			err:      errors.New("pq: connection refused"),
			status:   http.StatusInternalServerError,
			expected: apierrs.ErrInternal.Response(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			httpjson.Error(rec, tt.err)

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var actual apierrs.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&actual))
			require.Equal(t, tt.expected, actual)
		})
	}
}
