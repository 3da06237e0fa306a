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

package build

import "time"

// Transport is the JSON representation of a build.
type Transport struct {
	BuildID   string    `json:"buildId"`
	ImageName string    `json:"imageName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createRequest struct {
	BuildID   string `json:"buildId"`
	ImageName string `json:"imageName"`
}

type updateRequest struct {
	ImageName string `json:"imageName"`
}

func ToTransport(b Build) Transport {
	return Transport{
		BuildID:   b.BuildID,
		ImageName: b.ImageName,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
