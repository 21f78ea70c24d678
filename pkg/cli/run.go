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

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/VidcueProject/vidcue-core/pkg/catalog"
	"github.com/VidcueProject/vidcue-core/pkg/config"
	"github.com/VidcueProject/vidcue-core/pkg/relative"
	"github.com/VidcueProject/vidcue-core/pkg/resolver"
	"github.com/VidcueProject/vidcue-core/pkg/resolver/similarity"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Run executes the query described by the parsed flags: load the catalog,
// build the engine from config, route the query to the right engine
// operation, and render the outcome.
//
// Routing order: an explicit -offset flag wins, then a detected relative
// reference ("my last video"), then -rank, then a full resolution.
func Run(f *Flags, cfg *config.Instance) error {
	if *f.Catalog == "" {
		return errors.New("no catalog file given (use -catalog)")
	}

	channelID := uuid.Nil
	if *f.Channel != "" {
		id, err := uuid.Parse(*f.Channel)
		if err != nil {
			return fmt.Errorf("invalid channel id: %w", err)
		}
		channelID = id
	}

	videos, err := catalog.LoadFile(afero.NewOsFs(), *f.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx := context.Background()
	provider := catalog.NewStatic(map[uuid.UUID][]catalog.Video{channelID: videos})

	hasVideos, err := catalog.HasVideos(ctx, provider, channelID)
	if err != nil {
		return fmt.Errorf("failed to check channel videos: %w", err)
	}
	if !hasVideos && !*f.JSON {
		_, _ = fmt.Println("This channel has no videos yet.")
		return nil
	}

	recent, err := provider.RecentVideos(ctx, channelID, cfg.CatalogLimit())
	if err != nil {
		return fmt.Errorf("failed to fetch channel videos: %w", err)
	}

	scorer, err := similarity.NewScorer(
		cfg.SimilarityBackend(),
		cfg.ResolverOptions().PartialRatioMinLength,
	)
	if err != nil {
		return fmt.Errorf("failed to build scorer: %w", err)
	}

	engine, err := resolver.New(cfg.ResolverOptions(), scorer)
	if err != nil {
		return fmt.Errorf("failed to build resolver: %w", err)
	}

	query := strings.TrimSpace(flag.Arg(0))

	if isFlagPassed("offset") {
		return render(f, engine.LatestByOffset(recent, *f.Offset))
	}

	if query == "" {
		return errors.New("no query given")
	}

	if isFlagPassed("rank") {
		return renderRanked(f, engine.TopMatches(query, recent, *f.Rank))
	}

	if offset, ok := relative.Detect(query); ok {
		return render(f, engine.LatestByOffset(recent, offset))
	}

	return render(f, engine.Resolve(query, recent))
}

func render(f *Flags, out resolver.Outcome) error {
	if *f.JSON {
		return renderJSON(os.Stdout, out)
	}
	renderText(os.Stdout, out)
	return nil
}

func renderText(w io.Writer, out resolver.Outcome) {
	switch o := out.(type) {
	case resolver.Accepted:
		_, _ = fmt.Fprintf(w, "Resolved: %s [%s] (%.1f%%)\n", o.Title, o.VideoID, o.Score)
	case resolver.Clarification:
		_, _ = fmt.Fprint(w, o.Message)
	case resolver.NoMatch:
		_, _ = fmt.Fprintln(w, "No matching video found.")
	}
}

// renderJSON wraps the outcome in an envelope naming its variant, so
// consumers can dispatch without probing fields.
func renderJSON(w io.Writer, out resolver.Outcome) error {
	var payload any
	switch o := out.(type) {
	case resolver.Accepted:
		payload = struct {
			Outcome string `json:"outcome"`
			resolver.Accepted
		}{Outcome: "accepted", Accepted: o}
	case resolver.Clarification:
		payload = struct {
			Outcome string `json:"outcome"`
			resolver.Clarification
		}{Outcome: "clarification", Clarification: o}
	case resolver.NoMatch:
		payload = struct {
			Outcome string `json:"outcome"`
		}{Outcome: "no_match"}
	default:
		return fmt.Errorf("unknown outcome type %T", out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}
	return nil
}

func renderRanked(f *Flags, candidates []resolver.ScoredCandidate) error {
	if *f.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(candidates); err != nil {
			return fmt.Errorf("failed to encode candidates: %w", err)
		}
		return nil
	}

	if len(candidates) == 0 {
		_, _ = fmt.Println("No matching videos found.")
		return nil
	}

	_, _ = fmt.Println("Top matches:")
	for i, c := range candidates {
		_, _ = fmt.Printf("  %d. %s [%s] (%.1f%%)\n", i+1, c.Title, c.VideoID, c.Score)
	}
	return nil
}
