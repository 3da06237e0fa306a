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

import "time"

// Transport is the JSON representation of an agent.
type Transport struct {
	ID        int64     `json:"id"`
	Host      string    `json:"host"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type hostRequest struct {
	Host string `json:"host"`
}

func ToTransport(a Agent) Transport {
	return Transport{
		ID:        a.ID,
		Host:      a.Host,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

/*
 * agent provisioning api
 */

type createContainerRequest struct {
	ImageName string `json:"imageName"`
	Port      string `json:"port"`
}

type createContainerResponse struct {
	ContainerID string `json:"containerId"`
}

type startContainerRequest struct {
	HeartbeatEndpoint string `json:"heartbeatEndpoint"`
	ServerID          string `json:"serverId"`
	Port              string `json:"port"`
}

type startContainerResponse struct {
	PublicIP string `json:"publicIp"`
}

type isPortAvailableRequest struct {
	Port int `json:"port"`
}

type isPortAvailableResponse struct {
	IsPortAvailable bool `json:"isPortAvailable"`
}
