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

package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/afero"
)

// csvVideo is the CSV row shape for catalog files. Timestamps stay strings
// here and are parsed explicitly, so an empty cell reads as an unknown
// publish time instead of an error.
type csvVideo struct {
	ExternalID  string `csv:"external_id"`
	Title       string `csv:"title"`
	PublishedAt string `csv:"published_at"`
}

// LoadFile reads a catalog from fs. The format follows the file
// extension: .csv with an external_id,title,published_at header, or .json
// holding an array of video objects. published_at values are RFC 3339;
// empty means unknown. Videos are returned in file order, unsorted.
func LoadFile(fs afero.Fs, path string) ([]Video, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check catalog file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("catalog file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return loadCSV(fs, path)
	case ".json":
		return loadJSON(fs, path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .csv or .json)", ext)
	}
}

func loadCSV(fs afero.Fs, path string) ([]Video, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows := make([]csvVideo, 0)
	if err := gocsv.Unmarshal(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog CSV: %w", err)
	}

	videos := make([]Video, 0, len(rows))
	for i, row := range rows {
		video := Video{
			ExternalID: row.ExternalID,
			Title:      row.Title,
		}
		if row.PublishedAt != "" {
			ts, err := time.Parse(time.RFC3339, row.PublishedAt)
			if err != nil {
				return nil, fmt.Errorf("bad published_at in catalog row %d: %w", i+1, err)
			}
			video.PublishedAt = ts
		}
		videos = append(videos, video)
	}
	return videos, nil
}

func loadJSON(fs afero.Fs, path string) ([]Video, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	videos := make([]Video, 0)
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}
	return videos, nil
}
