// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/config"
	"github.com/tomtom215/lookbook/internal/database"
	"github.com/tomtom215/lookbook/internal/featurestore"
	"github.com/tomtom215/lookbook/internal/ranker"
	"github.com/tomtom215/lookbook/internal/recommend"
)

// Components holds the loaded recommendation stack.
type Components struct {
	ArtifactDir string
	DB          *database.DB
	Store       *featurestore.Store
	Model       *ranker.LightGBM
	Engine      *recommend.Engine
}

// Sources resolves the configured artifact files against dir.
func Sources(a *config.ArtifactsConfig, dir string) featurestore.Sources {
	return featurestore.Sources{
		Users:      a.Path(dir, a.UserFeatures),
		Items:      a.Path(dir, a.ItemFeatures),
		Mapping:    a.Path(dir, a.ArticleMap),
		Candidates: a.Path(dir, a.Candidates),
	}
}

// Open loads every artifact and builds the engine. Any failure is fatal to
// the caller; the database is closed before returning an error.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Components, error) {
	dir, fellBack := cfg.Artifacts.ResolveDir()
	if fellBack {
		logger.Warn().
			Str("configured", cfg.Artifacts.Dir).
			Str("using", dir).
			Msg("Artifact directory not found, using fallback")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	c, err := build(ctx, cfg, dir, db, logger)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("Error closing database")
		}
		return nil, err
	}
	return c, nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func build(ctx context.Context, cfg *config.Config, dir string, db *database.DB, logger zerolog.Logger) (*Components, error) {
	store, err := featurestore.Open(ctx, db, Sources(&cfg.Artifacts, dir), logger)
	if err != nil {
		return nil, fmt.Errorf("open feature store: %w", err)
	}

	model, err := ranker.Load(cfg.Artifacts.Path(dir, cfg.Artifacts.Model), logger)
	if err != nil {
		return nil, fmt.Errorf("load ranking model: %w", err)
	}

	engine, err := recommend.NewEngine(store, model, recommend.Options{
		ColdStart: featurestore.PoolOrder(cfg.Recommend.ColdStartStrategy),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	logger.Info().
		Str("artifact_dir", dir).
		Int("features", model.NFeatures()).
		Str("cold_start", string(engine.ColdStartOrder())).
		Msg("Recommendation pipeline ready")

	return &Components{
		ArtifactDir: dir,
		DB:          db,
		Store:       store,
		Model:       model,
		Engine:      engine,
	}, nil
}

// Close releases the database.
func (c *Components) Close() error {
	return c.DB.Close()
}
