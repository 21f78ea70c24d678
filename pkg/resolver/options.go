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

package resolver

import "github.com/VidcueProject/vidcue-core/pkg/resolver/similarity"

// Options tunes the engine's decision thresholds. All scores are on the
// 0-100 scale the similarity backends produce. Options are validated once
// at engine construction and immutable afterwards.
type Options struct {
	// MatchThreshold is the minimum top score for a query to count as
	// matched at all. Below it the decision is rejected.
	MatchThreshold float64 `validate:"gte=0,lte=100"`

	// HighConfidenceThreshold accepts the top match outright, regardless
	// of how close the runner-up is. Must not be below MatchThreshold.
	HighConfidenceThreshold float64 `validate:"gte=0,lte=100,gtefield=MatchThreshold"`

	// AmbiguityGap is the minimum lead the top score needs over the
	// runner-up to accept in the mid-confidence band.
	AmbiguityGap float64 `validate:"gte=0,lte=100"`

	// PartialRatioMinLength gates the partial-window similarity strategy:
	// both strings must be strictly longer than this many runes.
	PartialRatioMinLength int `validate:"gte=0"`

	// ClarificationCandidateCount caps how many candidates a clarification
	// prompt lists.
	ClarificationCandidateCount int `validate:"gte=1"`
}

// DefaultOptions returns the stock thresholds. They match the documented
// config defaults in the [resolver] section.
func DefaultOptions() Options {
	return Options{
		MatchThreshold:              70,
		HighConfidenceThreshold:     85,
		AmbiguityGap:                10,
		PartialRatioMinLength:       similarity.DefaultPartialMinLength,
		ClarificationCandidateCount: 3,
	}
}
