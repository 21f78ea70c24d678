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

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/VidcueProject/vidcue-core/pkg/catalog"
	"pgregory.net/rapid"
)

// ============================================================================
// GENERATORS
// ============================================================================

var titleWords = []string{
	"summer", "trip", "goa", "part", "father", "son", "duo", "shararat",
	"mode", "valentine", "day", "vlog", "morning", "routine", "studio",
	"setup", "cooking", "challenge", "family", "road", "behind", "scenes",
	"kids", "subscribers", "masti",
}

// wordQueryGen generates queries built from catalog vocabulary, the kind
// of free text the resolver is expected to score.
func wordQueryGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		count := rapid.IntRange(1, 6).Draw(t, "wordCount")
		words := make([]string, 0, count)
		for range count {
			words = append(words, rapid.SampledFrom(titleWords).Draw(t, "word"))
		}
		return strings.Join(words, " ")
	})
}

// videoGen generates catalog entries with realistic IDs and titles that
// survive normalization, sometimes decorated with emoji.
func videoGen() *rapid.Generator[catalog.Video] {
	return rapid.Custom(func(t *rapid.T) catalog.Video {
		title := wordQueryGen().Draw(t, "title")
		if rapid.Bool().Draw(t, "decorated") {
			title += " 🔥"
		}
		return catalog.Video{
			ExternalID: rapid.StringMatching(`vid_[0-9]{3}`).Draw(t, "externalID"),
			Title:      title,
		}
	})
}

// catalogGen generates a non-empty channel catalog.
func catalogGen() *rapid.Generator[[]catalog.Video] {
	return rapid.SliceOfN(videoGen(), 1, 8)
}

// blankQueryGen generates queries that normalize to nothing.
func blankQueryGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		"", "   ", "🔥😂", "!!!", "?!?!", "#shorts", "❤️", "🔥 🔥 🔥", "#a #b",
	})
}

// ============================================================================
// RESOLVE PROPERTIES
// ============================================================================

// TestPropertyResolveEmptyCatalogIsNoMatch tests that no query, however
// strange, resolves against an empty catalog.
func TestPropertyResolveEmptyCatalogIsNoMatch(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		query := rapid.String().Draw(t, "query")

		out := engine.Resolve(query, nil)
		if _, ok := out.(NoMatch); !ok {
			t.Fatalf("empty catalog produced %T for query %q", out, query)
		}
	})
}

// TestPropertyResolveBlankQueryIsNoMatch tests that queries with no
// comparable content never resolve, whatever the catalog holds.
func TestPropertyResolveBlankQueryIsNoMatch(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		query := blankQueryGen().Draw(t, "query")
		videos := catalogGen().Draw(t, "videos")

		out := engine.Resolve(query, videos)
		if _, ok := out.(NoMatch); !ok {
			t.Fatalf("blank query %q produced %T", query, out)
		}
	})
}

// TestPropertyResolveDeterministic tests that resolution is a pure
// function of query and catalog.
func TestPropertyResolveDeterministic(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		query := wordQueryGen().Draw(t, "query")
		videos := catalogGen().Draw(t, "videos")

		first := engine.Resolve(query, videos)
		second := engine.Resolve(query, videos)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("resolve is not deterministic: %#v vs %#v", first, second)
		}
	})
}

// TestPropertyResolveOutcomeInvariants tests the structural promises every
// outcome makes, over arbitrary word-built catalogs and queries.
func TestPropertyResolveOutcomeInvariants(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	opts := engine.Options()

	rapid.Check(t, func(t *rapid.T) {
		query := wordQueryGen().Draw(t, "query")
		videos := catalogGen().Draw(t, "videos")

		inCatalog := func(id, title string) bool {
			for _, v := range videos {
				if v.ExternalID == id && v.Title == title {
					return true
				}
			}
			return false
		}

		switch out := engine.Resolve(query, videos).(type) {
		case Accepted:
			if out.Metadata.Decision != DecisionAccepted {
				t.Fatalf("accepted outcome carries decision %q", out.Metadata.Decision)
			}
			if out.Score != out.Metadata.TopScore {
				t.Fatalf("score %v differs from top score %v", out.Score, out.Metadata.TopScore)
			}
			if out.Score < opts.MatchThreshold {
				t.Fatalf("accepted below the match threshold: %v", out.Score)
			}
			if !inCatalog(out.VideoID, out.Title) {
				t.Fatalf("accepted video %q / %q is not in the catalog", out.VideoID, out.Title)
			}
		case Clarification:
			if out.Metadata.Decision != DecisionAmbiguous && out.Metadata.Decision != DecisionRejected {
				t.Fatalf("clarification carries decision %q", out.Metadata.Decision)
			}
			if len(out.Candidates) < 1 || len(out.Candidates) > opts.ClarificationCandidateCount {
				t.Fatalf("clarification offers %d candidates", len(out.Candidates))
			}
			if out.Candidates[0].Score != out.Metadata.TopScore {
				t.Fatalf("top candidate score %v differs from metadata %v",
					out.Candidates[0].Score, out.Metadata.TopScore)
			}
			for i, c := range out.Candidates {
				if !inCatalog(c.VideoID, c.Title) {
					t.Fatalf("candidate %q / %q is not in the catalog", c.VideoID, c.Title)
				}
				if i > 0 && out.Candidates[i-1].Score < c.Score {
					t.Fatalf("candidates are not sorted: %v before %v",
						out.Candidates[i-1].Score, c.Score)
				}
			}
			if out.Message == "" {
				t.Fatalf("clarification has no message to show the user")
			}
		case NoMatch:
			t.Fatalf("word-built query %q against %d scorable titles produced NoMatch",
				query, len(videos))
		}
	})
}

// TestPropertyResolveNeverPanics tests total behavior over completely
// arbitrary catalogs and queries.
func TestPropertyResolveNeverPanics(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		query := rapid.String().Draw(t, "query")
		count := rapid.IntRange(0, 5).Draw(t, "count")
		videos := make([]catalog.Video, 0, count)
		for range count {
			videos = append(videos, catalog.Video{
				ExternalID: rapid.String().Draw(t, "externalID"),
				Title:      rapid.String().Draw(t, "title"),
			})
		}

		_ = engine.Resolve(query, videos)
	})
}

// ============================================================================
// RANKING AND POSITIONAL PROPERTIES
// ============================================================================

// TestPropertyTopMatchesInvariants tests length, ordering, and rounding of
// the ranked list across arbitrary limits.
func TestPropertyTopMatchesInvariants(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		query := wordQueryGen().Draw(t, "query")
		videos := catalogGen().Draw(t, "videos")
		limit := rapid.IntRange(-2, 10).Draw(t, "limit")

		matches := engine.TopMatches(query, videos, limit)
		if matches == nil {
			t.Fatalf("ranked list must never be nil")
		}

		effective := limit
		if effective <= 0 {
			effective = 3
		}
		if len(matches) > effective {
			t.Fatalf("limit %d produced %d matches", limit, len(matches))
		}
		if len(matches) > len(videos) {
			t.Fatalf("%d matches from a catalog of %d", len(matches), len(videos))
		}

		for i, m := range matches {
			if m.Score < 0 || m.Score > 100 {
				t.Fatalf("score %v outside the scale", m.Score)
			}
			if math.Abs(m.Score*10-math.Round(m.Score*10)) > 1e-9 {
				t.Fatalf("score %v is not rounded to one decimal", m.Score)
			}
			if i > 0 && matches[i-1].Score < m.Score {
				t.Fatalf("matches are not sorted: %v before %v", matches[i-1].Score, m.Score)
			}
		}
	})
}

// TestPropertyLatestByOffsetTotal tests positional lookup across the whole
// offset range, in and out of bounds.
func TestPropertyLatestByOffsetTotal(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	rapid.Check(t, func(t *rapid.T) {
		videos := catalogGen().Draw(t, "videos")
		offset := rapid.IntRange(-3, 12).Draw(t, "offset")

		out := engine.LatestByOffset(videos, offset)

		if offset < 0 || offset >= len(videos) {
			if _, ok := out.(NoMatch); !ok {
				t.Fatalf("offset %d over %d videos produced %T", offset, len(videos), out)
			}
			return
		}

		accepted, ok := out.(Accepted)
		if !ok {
			t.Fatalf("offset %d over %d videos produced %T", offset, len(videos), out)
		}
		if accepted.VideoID != videos[offset].ExternalID {
			t.Fatalf("offset %d selected %q, want %q",
				offset, accepted.VideoID, videos[offset].ExternalID)
		}
		if accepted.Score != 100.0 {
			t.Fatalf("positional selection scored %v", accepted.Score)
		}
	})
}

// TestPropertyClassifyTotal tests that classification always lands on a
// known decision and honors the two hard tiers.
func TestPropertyClassifyTotal(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	opts := engine.Options()

	rapid.Check(t, func(t *rapid.T) {
		top := rapid.Float64Range(0, 100).Draw(t, "top")
		second := rapid.Float64Range(0, top).Draw(t, "second")

		decision := engine.Classify(top, second)

		switch decision {
		case DecisionAccepted, DecisionAmbiguous, DecisionRejected:
		default:
			t.Fatalf("unknown decision %q", decision)
		}

		if top >= opts.HighConfidenceThreshold && decision != DecisionAccepted {
			t.Fatalf("top %v at high confidence classified %q", top, decision)
		}
		if top < opts.MatchThreshold && decision != DecisionRejected {
			t.Fatalf("top %v under the match threshold classified %q", top, decision)
		}
	})
}
