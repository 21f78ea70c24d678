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

// Package catalog models a channel's uploaded videos and the providers
// that supply them to the resolution engine.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Video is one uploaded video as the resolver sees it. ExternalID is the
// hosting platform's identifier and is treated as opaque. Title is the
// title as published, emoji and all; normalization happens at scoring
// time, never in storage.
type Video struct {
	PublishedAt time.Time `json:"published_at,omitzero"`
	ExternalID  string    `json:"external_id"`
	Title       string    `json:"title"`
}

// Provider supplies the most recent videos for a channel. Implementations
// return them ordered newest first, so positional lookups are valid on the
// result as returned.
type Provider interface {
	RecentVideos(ctx context.Context, channelID uuid.UUID, limit int) ([]Video, error)
}

// StaticProvider serves catalogs from an in-memory map of channel ID to
// videos. It backs file-loaded catalogs in the CLI and fixtures in tests.
type StaticProvider struct {
	channels map[uuid.UUID][]Video
}

// NewStatic builds a StaticProvider. Each channel's videos are copied and
// sorted newest first once, at construction.
func NewStatic(channels map[uuid.UUID][]Video) *StaticProvider {
	owned := make(map[uuid.UUID][]Video, len(channels))
	for id, videos := range channels {
		cp := make([]Video, len(videos))
		copy(cp, videos)
		SortByPublishedDesc(cp)
		owned[id] = cp
	}
	return &StaticProvider{channels: owned}
}

// RecentVideos implements Provider. Unknown channels yield an empty
// catalog, not an error. A non-positive limit means no limit.
func (p *StaticProvider) RecentVideos(
	_ context.Context, channelID uuid.UUID, limit int,
) ([]Video, error) {
	videos := p.channels[channelID]
	if limit > 0 && limit < len(videos) {
		videos = videos[:limit]
	}
	out := make([]Video, len(videos))
	copy(out, videos)
	return out, nil
}

// SortByPublishedDesc orders videos newest first, in place. The sort is
// stable; videos without a publish time sort last.
func SortByPublishedDesc(videos []Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})
}

// HasVideos reports whether the channel has at least one video. Callers use
// it to tell an empty channel apart from a failed resolution.
func HasVideos(ctx context.Context, p Provider, channelID uuid.UUID) (bool, error) {
	videos, err := p.RecentVideos(ctx, channelID, 1)
	if err != nil {
		return false, fmt.Errorf("failed to check channel videos: %w", err)
	}
	return len(videos) > 0, nil
}
