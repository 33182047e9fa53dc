// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package config

import (
	"fmt"
	"time"
)

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	timeouts := map[string]time.Duration{
		"READ_TIMEOUT":     c.Server.ReadTimeout,
		"WRITE_TIMEOUT":    c.Server.WriteTimeout,
		"IDLE_TIMEOUT":     c.Server.IdleTimeout,
		"SHUTDOWN_TIMEOUT": c.Server.ShutdownTimeout,
		"REQUEST_TIMEOUT":  c.Server.RequestTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	if c.Artifacts.Dir == "" {
		return fmt.Errorf("ARTIFACT_DIR must not be empty")
	}
	names := map[string]string{
		"MODEL_FILE":         c.Artifacts.Model,
		"USER_FEATURES_FILE": c.Artifacts.UserFeatures,
		"ITEM_FEATURES_FILE": c.Artifacts.ItemFeatures,
		"ARTICLE_MAP_FILE":   c.Artifacts.ArticleMap,
		"CANDIDATES_FILE":    c.Artifacts.Candidates,
	}
	for name, v := range names {
		if v == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0 (0 = use all CPUs)")
	}
	if c.Database.MaxMemory == "" {
		return fmt.Errorf("DUCKDB_MAX_MEMORY must not be empty")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultTopK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_K must be at least 1")
	}
	if c.Recommend.MaxTopK < c.Recommend.DefaultTopK {
		return fmt.Errorf("RECOMMEND_MAX_TOP_K (%d) must be >= RECOMMEND_DEFAULT_TOP_K (%d)",
			c.Recommend.MaxTopK, c.Recommend.DefaultTopK)
	}
	if c.Recommend.MonitorInterval < 0 {
		return fmt.Errorf("MONITOR_INTERVAL must not be negative")
	}
	switch c.Recommend.ColdStartStrategy {
	case ColdStartPoolOrder, ColdStartPopularity:
		return nil
	default:
		return fmt.Errorf("COLD_START_STRATEGY must be one of: %s, %s", ColdStartPoolOrder, ColdStartPopularity)
	}
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
