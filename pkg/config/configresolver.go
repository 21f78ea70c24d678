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

package config

import (
	"github.com/VidcueProject/vidcue-core/pkg/resolver"
)

// Resolver is the [resolver] config table: the engine's decision
// thresholds, on the 0-100 score scale.
type Resolver struct {
	MatchThreshold          float64 `toml:"match_threshold"`
	HighConfidenceThreshold float64 `toml:"high_confidence_threshold"`
	AmbiguityGap            float64 `toml:"ambiguity_gap"`
	PartialRatioMinLength   int     `toml:"partial_ratio_min_length"`
	ClarificationCandidates int     `toml:"clarification_candidates"`
}

// Similarity is the [similarity] config table: which scoring backend the
// engine is built with.
type Similarity struct {
	Backend string `toml:"backend"`
}

// Catalog is the [catalog] config table.
type Catalog struct {
	Limit int `toml:"limit"`
}

// ResolverOptions converts the [resolver] table into engine options. The
// result is a plain copy; validation happens at engine construction.
func (c *Instance) ResolverOptions() resolver.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolver.Options{
		MatchThreshold:              c.vals.Resolver.MatchThreshold,
		HighConfidenceThreshold:     c.vals.Resolver.HighConfidenceThreshold,
		AmbiguityGap:                c.vals.Resolver.AmbiguityGap,
		PartialRatioMinLength:       c.vals.Resolver.PartialRatioMinLength,
		ClarificationCandidateCount: c.vals.Resolver.ClarificationCandidates,
	}
}

func (c *Instance) SimilarityBackend() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Similarity.Backend
}

func (c *Instance) SetSimilarityBackend(backend string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Similarity.Backend = backend
}

func (c *Instance) CatalogLimit() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.Limit
}

func (c *Instance) SetCatalogLimit(limit int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Catalog.Limit = limit
}
