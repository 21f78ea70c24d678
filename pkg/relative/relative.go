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

// Package relative detects recency references like "my last video" or
// "second most recent upload" in raw queries, before any normalization.
// These queries select by position rather than by title similarity, so
// callers route them to positional lookup instead of the scorer.
package relative

import "regexp"

// recencyPatterns match phrases that refer to uploads by recency. A bare
// "video" with no recency keyword must not match; these anchor on keyword
// plus noun pairs.
var recencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(last|latest|recent|newest)\s+(video|upload|content)\b`),
	regexp.MustCompile(`(?i)\b(my|the)\s+(last|latest|recent)\s+(video|upload)\b`),
	regexp.MustCompile(`(?i)\b(my|the)\s+last\s+upload\b`),
	regexp.MustCompile(`(?i)\b(previous)\s+(video|upload)\b`),
}

// Ordinal qualifiers shift the recency offset when they appear before the
// recency phrase: "second most recent video" means one back from the
// newest.
var (
	ordinalSecond = regexp.MustCompile(`(?i)\b(second|2nd)\b`)
	ordinalThird  = regexp.MustCompile(`(?i)\b(third|3rd)\b`)
)

// Detect reports whether query refers to an upload by recency, and at what
// offset from the newest: 0 for the most recent upload, 1 for the one
// before it, 2 for the one before that. The query is matched raw, not
// normalized.
func Detect(query string) (offset int, ok bool) {
	at := earliestRecencyMatch(query)
	if at < 0 {
		return 0, false
	}
	if idx := ordinalSecond.FindStringIndex(query); idx != nil && idx[0] < at {
		return 1, true
	}
	if idx := ordinalThird.FindStringIndex(query); idx != nil && idx[0] < at {
		return 2, true
	}
	return 0, true
}

// earliestRecencyMatch returns the byte index of the first recency phrase
// in query, or -1 when none match.
func earliestRecencyMatch(query string) int {
	best := -1
	for _, re := range recencyPatterns {
		if idx := re.FindStringIndex(query); idx != nil && (best < 0 || idx[0] < best) {
			best = idx[0]
		}
	}
	return best
}
