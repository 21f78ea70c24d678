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

import "github.com/hbollon/go-edlib"

// JaroWinkler scores with Jaro-Winkler similarity scaled to 0-100.
// Jaro-Winkler heavily weights matching prefixes, which suits queries where
// the user remembers how a title starts but trails off. It has no
// fragment-matching behavior, so mid-title phrase queries score poorly
// compared to the multistrategy backend.
type JaroWinkler struct{}

// Name implements Scorer.
func (JaroWinkler) Name() string { return BackendJaroWinkler }

// Score implements Scorer.
func (JaroWinkler) Score(a, b string) float64 {
	switch {
	case a == "" && b == "":
		return 100
	case a == "" || b == "":
		return 0
	}
	return 100 * float64(edlib.JaroWinklerSimilarity(a, b))
}
