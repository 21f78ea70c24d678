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

package similarity

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// minDebugScore is the floor above which individual strategy breakdowns are
// logged at debug level. Logging every comparison drowns the log on large
// catalogs.
const minDebugScore = 70.0

// DefaultPartialMinLength is the shortest string length (in runes) at which
// the partial-window strategy activates. Below it, tiny fragments like "a"
// or "the" would score 100 against almost any title.
const DefaultPartialMinLength = 5

// MultiStrategy is the default scorer. It runs up to four strategies per
// comparison and keeps the best score:
//
//   - character ratio: longest common subsequence over both lengths, the
//     classic difflib-style ratio. Catches typos and small edits.
//   - token set ratio: character ratio of the sorted token intersection
//     against the sorted token union. Forgives extra words.
//   - token sort ratio: character ratio after sorting each side's tokens.
//     Forgives word reordering.
//   - partial ratio: the shorter string slid across the longer one, scored
//     by the longest contiguous run they share. Catches fragment queries
//     like a distinctive phrase from the middle of a title.
//
// Taking the max means each strategy only has to be good at its own failure
// mode.
type MultiStrategy struct {
	partialMinLength int
}

// NewMultiStrategy returns the multi-strategy scorer. partialMinLength
// gates the partial-window strategy; values below zero fall back to
// DefaultPartialMinLength.
func NewMultiStrategy(partialMinLength int) *MultiStrategy {
	if partialMinLength < 0 {
		partialMinLength = DefaultPartialMinLength
	}
	return &MultiStrategy{partialMinLength: partialMinLength}
}

// Name implements Scorer.
func (*MultiStrategy) Name() string { return BackendMultiStrategy }

// Score implements Scorer. Both inputs are expected to be normalized
// already; the scorer does not normalize.
func (s *MultiStrategy) Score(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	switch {
	case la == 0 && lb == 0:
		return 100
	case la == 0 || lb == 0:
		return 0
	}

	char := charRatio(a, b)
	tokenSet := tokenSetRatio(a, b)
	tokenSort := tokenSortRatio(a, b)
	partial := 0.0
	if min(la, lb) > s.partialMinLength {
		partial = partialRatio([]rune(a), []rune(b))
	}

	best := max(char, tokenSet, tokenSort, partial)
	if best >= minDebugScore {
		log.Debug().
			Str("a", a).
			Str("b", b).
			Float64("char", char).
			Float64("tokenSet", tokenSet).
			Float64("tokenSort", tokenSort).
			Float64("partial", partial).
			Msg("similarity strategy breakdown")
	}
	return best
}

// charRatio is 200 * lcs(a, b) / (len(a) + len(b)), the shared-subsequence
// mass over the combined length. 100 means identical, 0 means nothing in
// common.
func charRatio(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la+lb == 0 {
		return 100
	}
	common := edlib.LCS(a, b)
	return 200 * float64(common) / float64(la+lb)
}

// tokenSetRatio compares the sorted token intersection against the sorted
// token union. When one side is a subset of the other the intersection and
// union still differ by the extra tokens, so supersets score high without
// pinning to 100.
func tokenSetRatio(a, b string) float64 {
	intersection, union := intersectUnion(tokenSet(a), tokenSet(b))
	if len(union) == 0 {
		return 0
	}
	return charRatio(strings.Join(intersection, " "), strings.Join(union, " "))
}

// tokenSortRatio is the character ratio after sorting each side's tokens,
// duplicates kept. Word order stops mattering; word content still does.
func tokenSortRatio(a, b string) float64 {
	return charRatio(sortedJoin(a), sortedJoin(b))
}

// partialRatio slides the shorter string across the longer and scores the
// best window by the longest contiguous run the two share. Every window has
// the same denominator and the best window always contains the globally
// longest shared run, so the sweep collapses to a single substring search.
func partialRatio(a, b []rune) float64 {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	run := commonRunLength(shorter, longer)
	return 100 * float64(run) / float64(len(shorter))
}

func sortedJoin(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}
