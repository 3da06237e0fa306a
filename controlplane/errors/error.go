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

package errors

import (
	"errors"
	"net/http"
)

// Code categorizes an error so callers can decide whether to retry
// immediately, retry later or give up.
type Code string

const (
	CodeValidation        Code = "ValidationError"
	CodeNotFound          Code = "NotFound"
	CodeCapacityExhausted Code = "CapacityExhausted"
	CodeUpstreamFailure   Code = "UpstreamFailure"
	CodeConflict          Code = "Conflict"
	CodeInternal          Code = "InternalError"
)

// Retry is the hint rendered next to every error response.
type Retry string

const (
	RetryNever Retry = "never"
	RetryLater Retry = "later"
	RetryNow   Retry = "now"
)

func (c Code) Retry() Retry {
	switch c {
	case CodeCapacityExhausted:
		return RetryLater
	case CodeUpstreamFailure, CodeInternal:
		return RetryNow
	default:
		return RetryNever
	}
}

/*
 * allocation related errors
 */

var (
	ErrBuildNotFound         = New(CodeNotFound, http.StatusBadRequest, "build not found")
	ErrNoAgentsAvailable     = New(CodeCapacityExhausted, http.StatusBadRequest, "no agents available")
	ErrNoPortsAvailable      = New(CodeCapacityExhausted, http.StatusBadRequest, "no ports available")
	ErrContainerCreateFailed = New(CodeUpstreamFailure, http.StatusInternalServerError, "failed to create container")
	ErrContainerStartFailed  = New(CodeUpstreamFailure, http.StatusInternalServerError, "failed to start container")
)

/*
 * instance related errors
 */

var (
	ErrInstanceNotFound          = New(CodeNotFound, http.StatusNotFound, "server not found")
	ErrInstanceAlreadyTerminated = New(CodeConflict, http.StatusBadRequest, "server is already terminated")
)

/*
 * agent daemon errors
 */

var (
	ErrContainerNotFound = New(CodeNotFound, http.StatusNotFound, "container not found")
	ErrRuntimeFailure    = New(CodeUpstreamFailure, http.StatusInternalServerError, "container runtime failed")
)

/*
 * catalog related errors
 */

var (
	ErrBuildExists      = New(CodeConflict, http.StatusConflict, "build already exists")
	ErrBuildInUse       = New(CodeConflict, http.StatusConflict, "build is referenced by game server instances")
	ErrBuildNotExists   = New(CodeNotFound, http.StatusNotFound, "build not found")
	ErrAgentNotFound    = New(CodeNotFound, http.StatusNotFound, "agent not found")
	ErrAgentExists      = New(CodeConflict, http.StatusConflict, "agent with this host already exists")
	ErrAgentInUse       = New(CodeConflict, http.StatusConflict, "agent is referenced by game server instances")
	ErrInvalidAgentID   = New(CodeValidation, http.StatusBadRequest, "agent id is invalid")
	ErrInvalidBody      = New(CodeValidation, http.StatusBadRequest, "request body is not valid json")
	ErrRouteNotFound    = New(CodeNotFound, http.StatusNotFound, "route not found")
	ErrMethodNotAllowed = New(CodeValidation, http.StatusMethodNotAllowed, "method not allowed")
	ErrInternal         = New(CodeInternal, http.StatusInternalServerError, "internal server error")
)

// FieldViolation describes why a single request field was rejected.
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type Error struct {
	Code    Code
	Status  int
	Message string
	Fields  []FieldViolation
}

func (e Error) Error() string {
	return e.Message
}

// Is reports equality on code, status and message, so errors carrying
// field violations still match their sentinel.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Status == t.Status && e.Message == t.Message
}

// Response is the JSON envelope every failed request is answered with.
type Response struct {
	Error ResponseError `json:"error"`
}

type ResponseError struct {
	Code    Code             `json:"code"`
	Message string           `json:"message"`
	Retry   Retry            `json:"retry"`
	Fields  []FieldViolation `json:"fields,omitempty"`
}

func (e Error) Response() Response {
	return Response{
		Error: ResponseError{
			Code:    e.Code,
			Message: e.Message,
			Retry:   e.Code.Retry(),
			Fields:  e.Fields,
		},
	}
}

func New(args ...any) Error {
	e := Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			e.Message = arg
		case Code:
			e.Code = arg
		case int:
			e.Status = arg
		case FieldViolation:
			e.Fields = append(e.Fields, arg)
		case []FieldViolation:
			e.Fields = append(e.Fields, arg...)
		default:
			continue
		}
	}

	if e.Code == "" {
		e.Code = CodeInternal
	}

	if e.Status == 0 {
		e.Status = statusFor(e.Code)
	}

	return e
}

// Validation returns a 400 validation error listing every rejected field.
func Validation(violations ...FieldViolation) Error {
	return New(CodeValidation, http.StatusBadRequest, "request validation failed", violations)
}

// From returns the API error carried by err. Errors that are not API
// errors are reported as internal errors, so no details leak to callers.
func From(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal
}

func statusFor(c Code) int {
	switch c {
	case CodeValidation, CodeCapacityExhausted:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
