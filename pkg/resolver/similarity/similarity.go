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

// Package similarity scores how closely two normalized strings match, on a
// 0-100 scale. Scoring is a swappable strategy: the backend is picked once
// when the engine is constructed, never resolved per call.
package similarity

import (
	"fmt"
	"sort"
	"strings"
)

// Backend names accepted by NewScorer and the similarity config section.
const (
	BackendMultiStrategy = "multistrategy"
	BackendJaroWinkler   = "jarowinkler"
	BackendBasic         = "basic"
)

// Scorer computes a similarity score between two normalized strings.
// Implementations are stateless and safe for concurrent use. Scores fall in
// [0, 100]. The contract does not promise symmetry: Score(a, b) and
// Score(b, a) may differ for backends whose strategies treat the shorter and
// longer string differently.
type Scorer interface {
	Score(a, b string) float64
	Name() string
}

// NewScorer builds the scorer for a configured backend name.
// partialMinLength is consulted only by the multistrategy backend.
func NewScorer(backend string, partialMinLength int) (Scorer, error) {
	switch backend {
	case BackendMultiStrategy:
		return NewMultiStrategy(partialMinLength), nil
	case BackendJaroWinkler:
		return JaroWinkler{}, nil
	case BackendBasic:
		return Basic{}, nil
	default:
		return nil, fmt.Errorf("unknown similarity backend %q (known: %s)",
			backend, strings.Join(Backends(), ", "))
	}
}

// Backends returns the known backend names in stable order.
func Backends() []string {
	return []string{BackendMultiStrategy, BackendJaroWinkler, BackendBasic}
}

// KnownBackend reports whether name is a valid backend selector.
func KnownBackend(name string) bool {
	switch name {
	case BackendMultiStrategy, BackendJaroWinkler, BackendBasic:
		return true
	default:
		return false
	}
}

// tokenSet splits s on whitespace and returns the unique tokens sorted
// alphabetically.
func tokenSet(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]struct{}, len(fields))
	unique := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		unique = append(unique, tok)
	}
	sort.Strings(unique)
	return unique
}

// intersectUnion merges two sorted unique token slices into their sorted
// intersection and sorted union in a single walk.
func intersectUnion(a, b []string) (intersection, union []string) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			intersection = append(intersection, a[i])
			union = append(union, a[i])
			i++
			j++
		case a[i] < b[j]:
			union = append(union, a[i])
			i++
		default:
			union = append(union, b[j])
			j++
		}
	}
	union = append(union, a[i:]...)
	union = append(union, b[j:]...)
	return intersection, union
}
