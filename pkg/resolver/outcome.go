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

// Decision labels how the classifier read a score distribution. It
// serializes as its string value.
type Decision string

// The three classifier decisions. There is no fourth branch.
const (
	DecisionAccepted  Decision = "accepted"
	DecisionAmbiguous Decision = "ambiguous"
	DecisionRejected  Decision = "rejected"
)

// Metadata reports the signals behind a resolution decision so callers can
// log or display why the engine chose as it did.
type Metadata struct {
	Decision    Decision `json:"decision"`
	TopScore    float64  `json:"top_score"`
	SecondScore float64  `json:"second_score"`
}

// ScoredCandidate pairs a catalog video with its similarity score against a
// query. Title is the original title, not its normalized form, so it can be
// shown to the user as published.
type ScoredCandidate struct {
	VideoID string  `json:"video_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
}

// Outcome is the closed result type of a resolution. Exactly one of the
// three variants is returned per call: NoMatch, Accepted, or Clarification.
// Callers switch on the concrete type; no variant shares fields with
// another beyond Metadata.
type Outcome interface {
	isOutcome()
}

// NoMatch means resolution had nothing to work with: the catalog was empty,
// the query normalized to nothing, or no title survived normalization. A
// scored-but-weak result is not a NoMatch; that becomes a Clarification.
type NoMatch struct{}

// Accepted carries the single video the query resolved to. It is scoped to
// that one video: no catalog or channel aggregates ride along.
type Accepted struct {
	VideoID  string   `json:"video_id"`
	Title    string   `json:"title"`
	Score    float64  `json:"score"`
	Metadata Metadata `json:"resolution_metadata"`
}

// Clarification asks the user to choose between candidates the engine could
// not decide among, or to rephrase when nothing scored well enough. It never
// names a single winning video.
type Clarification struct {
	Message    string            `json:"message"`
	Candidates []ScoredCandidate `json:"candidates"`
	Metadata   Metadata          `json:"resolution_metadata"`
}

func (NoMatch) isOutcome()       {}
func (Accepted) isOutcome()      {}
func (Clarification) isOutcome() {}
