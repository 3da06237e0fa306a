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

import "path"

const (
	// directories inside the game server container
	containerConfigDir = "/data/Config"
	containerLogsDir   = "/data/GameLogs"

	GSDKConfigFileName = "gsdkConfig.json"
	PortLabel          = "fleet.port"
)

// Spec describes a game server container to create.
type Spec struct {
	Name  string
	Image string
	// Port is bound on the host network. containers run with host
	// networking, so the game server must listen on this port itself.
	Port          string
	HostConfigDir string
	HostLogsDir   string
	Env           []string
	Labels        map[string]string
}

// GSDKConfig is read by the game server sdk on startup. it tells the
// game process where to send heartbeats to and which id to report.
type GSDKConfig struct {
	HeartbeatEndpoint string `json:"heartbeatEndpoint"`
	SessionHostID     string `json:"sessionHostId"`
	LogFolder         string `json:"logFolder"`
}

func logFolder(serverID string) string {
	return path.Join(containerLogsDir, serverID) + "/"
}

func gsdkConfigEnv() string {
	return "GSDK_CONFIG_FILE=" + path.Join(containerConfigDir, GSDKConfigFileName)
}
