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
	"strconv"
	"strings"

	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

type createRequest struct {
	ImageName string `json:"imageName"`
	Port      string `json:"port"`
}

func (r createRequest) validate() error {
	var violations []apierrs.FieldViolation

	if strings.TrimSpace(r.ImageName) == "" {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "imageName",
			Description: "must not be empty",
		})
	}

	if v, ok := validatePort(r.Port); !ok {
		violations = append(violations, v)
	}

	if len(violations) > 0 {
		return apierrs.Validation(violations...)
	}
	return nil
}

type createResponse struct {
	ContainerID string `json:"containerId"`
}

type startRequest struct {
	HeartbeatEndpoint string `json:"heartbeatEndpoint"`
	ServerID          string `json:"serverId"`
	Port              string `json:"port"`
}

func (r startRequest) validate() error {
	var violations []apierrs.FieldViolation

	if strings.TrimSpace(r.HeartbeatEndpoint) == "" {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "heartbeatEndpoint",
			Description: "must not be empty",
		})
	}

	if strings.TrimSpace(r.ServerID) == "" {
		violations = append(violations, apierrs.FieldViolation{
			Field:       "serverId",
			Description: "must not be empty",
		})
	}

	if v, ok := validatePort(r.Port); !ok {
		violations = append(violations, v)
	}

	if len(violations) > 0 {
		return apierrs.Validation(violations...)
	}
	return nil
}

type startResponse struct {
	PublicIP string `json:"publicIp"`
}

type portRequest struct {
	Port int `json:"port"`
}

type portResponse struct {
	IsPortAvailable bool `json:"isPortAvailable"`
}

func validatePort(port string) (apierrs.FieldViolation, bool) {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return apierrs.FieldViolation{
			Field:       "port",
			Description: "must be a port number",
		}, false
	}
	return apierrs.FieldViolation{}, true
}
