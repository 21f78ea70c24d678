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

// Basic is a self-contained fallback scorer: the better of the subsequence
// character ratio and token-set Jaccard similarity, both computed in-package.
// It trades the multistrategy backend's fragment and reorder handling for
// having no moving parts, which makes it the reference point in tests when a
// strategy's contribution needs isolating.
type Basic struct{}

// Name implements Scorer.
func (Basic) Name() string { return BackendBasic }

// Score implements Scorer.
func (Basic) Score(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	switch {
	case len(ra) == 0 && len(rb) == 0:
		return 100
	case len(ra) == 0 || len(rb) == 0:
		return 0
	}
	char := 200 * float64(lcsLength(ra, rb)) / float64(len(ra)+len(rb))
	return max(char, 100*jaccard(a, b))
}

// jaccard is the token-set Jaccard index: shared tokens over all tokens.
func jaccard(a, b string) float64 {
	intersection, union := intersectUnion(tokenSet(a), tokenSet(b))
	if len(union) == 0 {
		return 0
	}
	return float64(len(intersection)) / float64(len(union))
}
