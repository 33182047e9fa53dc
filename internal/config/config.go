// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RequestTimeout bounds a single recommendation request at the HTTP boundary.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// ArtifactsConfig locates the offline-produced model and feature tables.
//
// Environment Variables:
//   - ARTIFACT_DIR: directory holding every artifact (default: artifacts)
//   - MODEL_FILE, USER_FEATURES_FILE, ITEM_FEATURES_FILE, ARTICLE_MAP_FILE,
//     CANDIDATES_FILE: per-artifact file names, resolved under ARTIFACT_DIR
//     unless absolute
type ArtifactsConfig struct {
	Dir          string `koanf:"dir"`
	Model        string `koanf:"model"`
	UserFeatures string `koanf:"user_features"`
	ItemFeatures string `koanf:"item_features"`
	ArticleMap   string `koanf:"article_map"`
	Candidates   string `koanf:"candidates"`
}

// DatabaseConfig tunes the embedded DuckDB engine that reads the Parquet artifacts.
type DatabaseConfig struct {
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// RecommendConfig holds request bounds for the HTTP and CLI surfaces.
type RecommendConfig struct {
	DefaultTopK int `koanf:"default_top_k"`
	MaxTopK     int `koanf:"max_top_k"`

	// ColdStartStrategy selects the fallback ordering: pool_order or popularity.
	ColdStartStrategy string `koanf:"cold_start_strategy"`

	// MonitorInterval is how often the catalog monitor refreshes table row
	// gauges and logs engine counters. Zero disables the monitor.
	MonitorInterval time.Duration `koanf:"monitor_interval"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Cold-start strategies accepted by RecommendConfig.ColdStartStrategy.
const (
	ColdStartPoolOrder  = "pool_order"
	ColdStartPopularity = "popularity"
)

// FallbackArtifactDir is used when the configured artifact directory does not exist.
const FallbackArtifactDir = "artifacts"

// Load reads configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// ResolveDir returns the artifact directory to use. If the configured
// directory is missing and FallbackArtifactDir exists, the fallback is
// returned with fellBack set.
func (a *ArtifactsConfig) ResolveDir() (dir string, fellBack bool) {
	if dirExists(a.Dir) {
		return a.Dir, false
	}
	if a.Dir != FallbackArtifactDir && dirExists(FallbackArtifactDir) {
		return FallbackArtifactDir, true
	}
	return a.Dir, false
}

// Path resolves an artifact file name against dir. Absolute names are kept.
func (a *ArtifactsConfig) Path(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
