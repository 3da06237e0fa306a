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

package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

// maxBodyBytes limits how much of a request body is read before decoding fails.
const maxBodyBytes = 1 << 20

// Write encodes v as the response body with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error renders err using the API error envelope. Errors that are not
// API errors are answered with a generic internal error.
func Error(w http.ResponseWriter, err error) {
	e := apierrs.From(err)
	Write(w, e.Status, e.Response())
}

// Decode reads a single JSON object from the request body into v.
// Unknown fields are ignored.
func Decode(r *http.Request, v any) error {
	return decode(r, v, false)
}

// DecodeStrict is like Decode, but rejects unknown fields.
func DecodeStrict(r *http.Request, v any) error {
	return decode(r, v, true)
}

func decode(r *http.Request, v any, strict bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apierrs.Validation(apierrs.FieldViolation{
				Field:       typeErr.Field,
				Description: fmt.Sprintf("expected %s", typeErr.Type),
			})
		}
		return apierrs.ErrInvalidBody
	}
	return nil
}
