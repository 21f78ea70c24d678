// Vidcue Core
// Copyright (c) 2026 The Vidcue Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Vidcue Core.
//
// Vidcue Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Vidcue Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Vidcue Core.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"path/filepath"

	"github.com/VidcueProject/vidcue-core/pkg/config"
	"github.com/adrg/xdg"
)

// ConfigDir returns the directory holding the user config file.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// LogDir returns the directory receiving rolling log files.
func LogDir() string {
	return filepath.Join(xdg.DataHome, config.AppName, config.LogsDir)
}
