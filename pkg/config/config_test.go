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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/VidcueProject/vidcue-core/pkg/resolver"
	"github.com/VidcueProject/vidcue-core/pkg/resolver/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigCreatesDefault tests that a first run writes the stock
// config to disk and loads it back.
func TestNewConfigCreatesDefault(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	expectedPath := filepath.Join(tempDir, CfgFile)
	assert.Equal(t, expectedPath, cfg.Path())

	data, err := os.ReadFile(expectedPath)
	require.NoError(t, err, "the default config must be written to disk")
	assert.Contains(t, string(data), "[resolver]")
	assert.Contains(t, string(data), "match_threshold")
	assert.Contains(t, string(data), fmt.Sprintf("config_schema = %d", SchemaVersion))

	opts := cfg.ResolverOptions()
	assert.InDelta(t, 70.0, opts.MatchThreshold, 0.001)
	assert.InDelta(t, 85.0, opts.HighConfidenceThreshold, 0.001)
	assert.InDelta(t, 10.0, opts.AmbiguityGap, 0.001)
	assert.Equal(t, 5, opts.PartialRatioMinLength)
	assert.Equal(t, 3, opts.ClarificationCandidateCount)

	assert.Equal(t, similarity.BackendMultiStrategy, cfg.SimilarityBackend())
	assert.Equal(t, 100, cfg.CatalogLimit())
	assert.False(t, cfg.DebugLogging())
}

// TestNewConfigLoadsExisting tests that an existing file wins over the
// defaults it overrides, and only those.
func TestNewConfigLoadsExisting(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, CfgFile)
	content := fmt.Sprintf(`config_schema = %d
debug_logging = true

[resolver]
match_threshold = 80.0

[similarity]
backend = "basic"

[catalog]
limit = 25
`, SchemaVersion)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	opts := cfg.ResolverOptions()
	assert.InDelta(t, 80.0, opts.MatchThreshold, 0.001, "file value wins")
	assert.InDelta(t, 85.0, opts.HighConfidenceThreshold, 0.001,
		"keys absent from the file keep their defaults")
	assert.Equal(t, 3, opts.ClarificationCandidateCount)

	assert.Equal(t, similarity.BackendBasic, cfg.SimilarityBackend())
	assert.Equal(t, 25, cfg.CatalogLimit())
	assert.True(t, cfg.DebugLogging())
}

// TestNewConfigEnvOverride tests pointing the config somewhere else via
// the environment.
func TestNewConfigEnvOverride(t *testing.T) {
	customPath := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(CfgEnv, customPath)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, customPath, cfg.Path())
	_, err = os.Stat(customPath)
	assert.NoError(t, err, "the default config lands at the overridden path")
}

// TestLoad tests reading values from disk over the defaults.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("minimal file keeps all defaults", func(t *testing.T) {
		t.Parallel()
		cfgPath := filepath.Join(t.TempDir(), CfgFile)
		content := fmt.Sprintf("config_schema = %d\n", SchemaVersion)
		require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

		cfg := &Instance{cfgPath: cfgPath, vals: BaseDefaults, defaults: BaseDefaults}
		require.NoError(t, cfg.Load())

		assert.Equal(t, resolver.Options{
			MatchThreshold:              70,
			HighConfidenceThreshold:     85,
			AmbiguityGap:                10,
			PartialRatioMinLength:       5,
			ClarificationCandidateCount: 3,
		}, cfg.ResolverOptions())
		assert.Equal(t, similarity.BackendMultiStrategy, cfg.SimilarityBackend())
		assert.Equal(t, 100, cfg.CatalogLimit())
	})

	t.Run("partial table overrides one key", func(t *testing.T) {
		t.Parallel()
		cfgPath := filepath.Join(t.TempDir(), CfgFile)
		content := fmt.Sprintf("config_schema = %d\n\n[resolver]\nmatch_threshold = 60.0\n",
			SchemaVersion)
		require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

		cfg := &Instance{cfgPath: cfgPath, vals: BaseDefaults, defaults: BaseDefaults}
		require.NoError(t, cfg.Load())

		opts := cfg.ResolverOptions()
		assert.InDelta(t, 60.0, opts.MatchThreshold, 0.001)
		assert.InDelta(t, 85.0, opts.HighConfidenceThreshold, 0.001,
			"sibling keys in the same table keep their defaults")
	})

	t.Run("schema mismatch", func(t *testing.T) {
		t.Parallel()
		cfgPath := filepath.Join(t.TempDir(), CfgFile)
		require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600))

		cfg := &Instance{cfgPath: cfgPath, vals: BaseDefaults, defaults: BaseDefaults}
		err := cfg.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema version mismatch")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		cfgPath := filepath.Join(t.TempDir(), "absent.toml")
		cfg := &Instance{cfgPath: cfgPath, vals: BaseDefaults, defaults: BaseDefaults}
		require.Error(t, cfg.Load())
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		cfg := &Instance{vals: BaseDefaults, defaults: BaseDefaults}
		err := cfg.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config path not set")
	})
}

// TestSaveRoundTrip tests that setter changes survive a save and a fresh
// load from disk.
func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetSimilarityBackend(similarity.BackendJaroWinkler)
	cfg.SetCatalogLimit(50)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, similarity.BackendJaroWinkler, reloaded.SimilarityBackend())
	assert.Equal(t, 50, reloaded.CatalogLimit())
}

// TestSaveStampsSchemaVersion tests that saving always writes the current
// schema version, whatever was in memory.
func TestSaveStampsSchemaVersion(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	vals := BaseDefaults
	vals.ConfigSchema = 0

	cfg := &Instance{cfgPath: cfgPath, vals: vals, defaults: BaseDefaults}
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), fmt.Sprintf("config_schema = %d", SchemaVersion))
}

// TestSetDebugLogging tests the in-memory toggle.
func TestSetDebugLogging(t *testing.T) {
	t.Parallel()

	cfg := &Instance{cfgPath: filepath.Join(t.TempDir(), CfgFile),
		vals: BaseDefaults, defaults: BaseDefaults}

	cfg.SetDebugLogging(true)
	assert.True(t, cfg.DebugLogging())

	cfg.SetDebugLogging(false)
	assert.False(t, cfg.DebugLogging())
}

// TestResolverOptionsConversion tests the mapping from the config table to
// engine options.
func TestResolverOptionsConversion(t *testing.T) {
	t.Parallel()

	vals := BaseDefaults
	vals.Resolver = Resolver{
		MatchThreshold:          65,
		HighConfidenceThreshold: 90,
		AmbiguityGap:            15,
		PartialRatioMinLength:   4,
		ClarificationCandidates: 2,
	}

	cfg := &Instance{cfgPath: "unused", vals: vals, defaults: BaseDefaults}

	assert.Equal(t, resolver.Options{
		MatchThreshold:              65,
		HighConfidenceThreshold:     90,
		AmbiguityGap:                15,
		PartialRatioMinLength:       4,
		ClarificationCandidateCount: 2,
	}, cfg.ResolverOptions())
}
