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

// Package cli wires flags, config, and logging for the vidcue command and
// routes queries to the resolution engine.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/VidcueProject/vidcue-core/pkg/config"
	"github.com/VidcueProject/vidcue-core/pkg/helpers"
	"github.com/rs/zerolog"
)

type Flags struct {
	Catalog *string
	Channel *string
	Rank    *int
	Offset  *int
	JSON    *bool
	Verbose *bool
	Version *bool
}

// SetupFlags defines all common CLI flags.
func SetupFlags() *Flags {
	return &Flags{
		Catalog: flag.String(
			"catalog",
			"",
			"path to a catalog file (.csv or .json)",
		),
		Channel: flag.String(
			"channel",
			"",
			"channel id owning the catalog",
		),
		Rank: flag.Int(
			"rank",
			0,
			"print the top n candidates without resolving",
		),
		Offset: flag.Int(
			"offset",
			0,
			"pick a video by recency position (0 = newest)",
		),
		JSON: flag.Bool(
			"json",
			false,
			"print outcomes as JSON",
		),
		Verbose: flag.Bool(
			"verbose",
			false,
			"also log to the console",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("Vidcue v%s\n", config.AppVersion)
		os.Exit(0)
	}
}

// Setup initializes logging and the user config. Returns a user config
// object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) *config.Instance {
	err := helpers.InitLogging(helpers.LogDir(), writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg
}
