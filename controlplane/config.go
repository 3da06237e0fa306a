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

package controlplane

import "time"

type Config struct {
	ListenAddr   string
	DBConnString string
	// PublicIP is the address game servers reach the control plane at.
	// together with the port of ListenAddr it forms the heartbeat endpoint.
	PublicIP            string
	StartPort           uint16
	EndPort             uint16
	HeartbeatTimeout    time.Duration
	ActiveCeiling       time.Duration
	ReaperInterval      time.Duration
	AgentRequestTimeout time.Duration
	ProbePorts          bool
	ShutdownTimeout     time.Duration
}
