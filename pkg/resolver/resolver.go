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

// Package resolver turns a free-text query like "the shararat video" into a
// concrete video from a channel's catalog, or into a clarification prompt
// when the match is not safe to act on. The engine is stateless across
// calls and safe for concurrent use.
package resolver

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/VidcueProject/vidcue-core/pkg/catalog"
	"github.com/VidcueProject/vidcue-core/pkg/resolver/normalize"
	"github.com/VidcueProject/vidcue-core/pkg/resolver/similarity"
	"github.com/VidcueProject/vidcue-core/pkg/validation"
	"github.com/rs/zerolog/log"
)

// defaultTopMatches is the ranking depth used when TopMatches is called
// with a non-positive limit.
const defaultTopMatches = 3

// Engine resolves queries against video catalogs using a fixed scorer and
// fixed thresholds. Construct with New; the zero value is not usable.
type Engine struct {
	scorer similarity.Scorer
	opts   Options
}

// New builds an Engine after validating opts. A nil scorer selects the
// default multistrategy backend configured with opts.PartialRatioMinLength.
func New(opts Options, scorer similarity.Scorer) (*Engine, error) {
	if err := validation.DefaultValidator.Validate(&opts); err != nil {
		return nil, fmt.Errorf("invalid resolver options: %w", err)
	}
	if scorer == nil {
		scorer = similarity.NewMultiStrategy(opts.PartialRatioMinLength)
	}
	return &Engine{scorer: scorer, opts: opts}, nil
}

// Options returns a copy of the engine's thresholds.
func (e *Engine) Options() Options { return e.opts }

// Resolve scores every catalog title against the query and classifies the
// result. It returns exactly one of:
//
//   - NoMatch when there is nothing to score: empty catalog, a query that
//     normalizes to nothing, or a catalog whose titles all normalize to
//     nothing.
//   - Accepted when the top candidate clears the thresholds.
//   - Clarification when candidates are too close to call, or when even the
//     best candidate scores below the match threshold. Both cases hand the
//     strongest candidates back to the user instead of guessing.
func (e *Engine) Resolve(query string, videos []catalog.Video) Outcome {
	if len(videos) == 0 {
		log.Debug().Str("query", query).Msg("resolve: catalog is empty")
		return NoMatch{}
	}

	normQuery := normalize.Text(query)
	if normQuery == "" {
		log.Debug().Str("query", query).Msg("resolve: query normalized to nothing")
		return NoMatch{}
	}

	log.Debug().
		Str("query", normQuery).
		Int("candidates", len(videos)).
		Str("scorer", e.scorer.Name()).
		Msg("resolving query against catalog")

	scored := e.scoreCandidates(normQuery, videos)
	if len(scored) == 0 {
		log.Debug().Str("query", normQuery).Msg("resolve: no scorable titles in catalog")
		return NoMatch{}
	}

	top := scored[0]
	secondScore := 0.0
	if len(scored) > 1 {
		secondScore = scored[1].Score
	}

	decision := e.Classify(top.Score, secondScore)
	meta := Metadata{
		Decision:    decision,
		TopScore:    top.Score,
		SecondScore: secondScore,
	}

	log.Debug().
		Str("decision", string(decision)).
		Float64("topScore", top.Score).
		Float64("gap", top.Score-secondScore).
		Str("title", top.Title).
		Msg("classified resolution")

	if decision == DecisionAccepted {
		return Accepted{
			VideoID:  top.VideoID,
			Title:    top.Title,
			Score:    top.Score,
			Metadata: meta,
		}
	}
	return e.clarification(scored, meta)
}

// TopMatches ranks the catalog against the query and returns the strongest
// limit candidates without applying the decision thresholds. A non-positive
// limit means 3. The result is empty when the query or every title
// normalizes to nothing.
func (e *Engine) TopMatches(query string, videos []catalog.Video, limit int) []ScoredCandidate {
	if limit <= 0 {
		limit = defaultTopMatches
	}
	if len(videos) == 0 {
		return []ScoredCandidate{}
	}
	normQuery := normalize.Text(query)
	if normQuery == "" {
		return []ScoredCandidate{}
	}
	scored := e.scoreCandidates(normQuery, videos)
	if limit > len(scored) {
		limit = len(scored)
	}
	return scored[:limit]
}

// LatestByOffset picks a video by recency position from a list already
// ordered newest first. Offset 0 is the most recent upload, 1 the one
// before it. Offsets outside the list, including negative ones, return
// NoMatch; negative values are invalid input, not an index-from-the-end
// convention. Positional selection cannot be ambiguous, so the outcome is
// always Accepted with a score of 100.
func (e *Engine) LatestByOffset(videos []catalog.Video, offset int) Outcome {
	if offset < 0 || offset >= len(videos) {
		log.Debug().
			Int("offset", offset).
			Int("videos", len(videos)).
			Msg("positional lookup out of range")
		return NoMatch{}
	}
	v := videos[offset]
	return Accepted{
		VideoID: v.ExternalID,
		Title:   v.Title,
		Score:   100.0,
		Metadata: Metadata{
			Decision:    DecisionAccepted,
			TopScore:    100.0,
			SecondScore: 0.0,
		},
	}
}

// scoreCandidates normalizes and scores every title against the normalized
// query, rounds each score to one decimal place, and sorts descending.
// Videos whose titles normalize to nothing are skipped. The sort is stable,
// so tied scores keep catalog order.
func (e *Engine) scoreCandidates(normQuery string, videos []catalog.Video) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(videos))
	for _, v := range videos {
		normTitle := normalize.Text(v.Title)
		if normTitle == "" {
			continue
		}
		scored = append(scored, ScoredCandidate{
			VideoID: v.ExternalID,
			Title:   v.Title,
			Score:   round1(e.scorer.Score(normQuery, normTitle)),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// clarification builds the follow-up prompt for ambiguous and rejected
// decisions: the strongest candidates with their scores, so the user can
// pick one or rephrase.
func (e *Engine) clarification(scored []ScoredCandidate, meta Metadata) Clarification {
	count := e.opts.ClarificationCandidateCount
	if count > len(scored) {
		count = len(scored)
	}
	candidates := make([]ScoredCandidate, count)
	copy(candidates, scored[:count])

	var msg strings.Builder
	msg.WriteString("I found a few similar videos. Did you mean:\n")
	for i, c := range candidates {
		_, _ = fmt.Fprintf(&msg, "  %d. %s (%.1f%%)\n", i+1, c.Title, c.Score)
	}

	return Clarification{
		Message:    msg.String(),
		Candidates: candidates,
		Metadata:   meta,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
