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

// Package normalize canonicalizes video titles and user queries for fuzzy
// comparison. Creator titles are full of social-media noise (emoji, hashtags,
// decorative punctuation, compatibility ligatures) that carries no matching
// signal; the pipeline strips all of it so the similarity layer compares
// plain lowercase words.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// emojiTable enumerates the code point ranges removed in Stage 3. The table
// covers the emoticon, pictograph, transport, flag, and dingbat blocks plus
// variation selectors and the zero-width joiner used in emoji sequences.
// Ranges in each slice must stay sorted ascending.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // zero-width joiner
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2702, Hi: 0x27B0, Stride: 1}, // dingbats
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1}, // regional indicators (flags)
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map symbols
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA00, Hi: 0x1FA6F, Stride: 1}, // symbols extended-A
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // symbols extended-B
	},
}

// hashtagRegex matches a # followed by at least one word character. The
// whole token is removed, not just the marker, so "#shorts" leaves no
// residue behind. Marks are included so non-Latin tags are consumed fully.
var hashtagRegex = regexp.MustCompile(`#[\p{L}\p{M}\p{N}_]+`)

// Text converts arbitrary title or query text to its canonical comparison
// form.
//
// 6-Stage Normalization Pipeline:
//
//	Stage 1: Lowercase
//	Stage 2: Unicode Compatibility Decomposition (NFKD) - "ﬁnal" → "final",
//	         "café" → "cafe" + combining mark
//	Stage 3: Emoji Removal - every code point in emojiTable dropped
//	Stage 4: Hashtag Removal - "#shorts" removed as a whole token
//	Stage 5: Punctuation Collapse - any remaining rune that is not a letter,
//	         digit, or whitespace becomes a space (combining marks left by
//	         Stage 2 fall in this class)
//	Stage 6: Whitespace Collapse - runs of whitespace become one space,
//	         leading/trailing whitespace trimmed
//
// Text is total: it accepts any input, including empty or emoji-only
// strings, and never fails. It is deterministic and idempotent:
//
//	Text(Text(x)) == Text(x)
//
// An empty result means the input had no comparable content.
func Text(input string) string {
	s := strings.ToLower(input)

	// Stages 2 and 3 share one transform pass. The chain is built per call
	// because chained transformers carry internal buffers and must not be
	// shared between goroutines.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(emojiTable)))
	if decomposed, _, err := transform.String(t, s); err == nil {
		s = decomposed
	}

	// Stage 4. Runs before punctuation collapse so the tag text vanishes
	// with its marker instead of surviving as a bare word.
	s = hashtagRegex.ReplaceAllString(s, "")

	// Stage 5. Kept letters are lowercased again: NFKD can surface
	// uppercase from characters Stage 1 had no simple mapping for (e.g.
	// mathematical alphanumerics), and idempotence requires the output to
	// be fully lowercase.
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		if unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)

	// Stage 6.
	return strings.Join(strings.Fields(s), " ")
}
