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

// Classify maps a score pair onto a decision. A top score at or above
// HighConfidenceThreshold accepts outright, even when the runner-up is
// nearly tied. Below MatchThreshold the decision is rejected. In between,
// the lead over the runner-up must reach AmbiguityGap to accept; a smaller
// lead is ambiguous.
//
// Pure over the engine's immutable thresholds: the same score pair always
// classifies to the same decision.
func (e *Engine) Classify(topScore, secondScore float64) Decision {
	switch {
	case topScore >= e.opts.HighConfidenceThreshold:
		return DecisionAccepted
	case topScore < e.opts.MatchThreshold:
		return DecisionRejected
	case topScore-secondScore >= e.opts.AmbiguityGap:
		return DecisionAccepted
	default:
		return DecisionAmbiguous
	}
}
