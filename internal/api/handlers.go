// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/lookbook/internal/config"
	"github.com/tomtom215/lookbook/internal/featurestore"
	"github.com/tomtom215/lookbook/internal/middleware"
	"github.com/tomtom215/lookbook/internal/recommend"
)

// Recommender is the part of recommend.Engine the handlers use.
type Recommender interface {
	Recommend(ctx context.Context, userID int64, topK int) (*recommend.Result, error)
	Bestsellers(ctx context.Context, topK int) (*recommend.Result, error)
	Stats() recommend.Stats
	ColdStartOrder() featurestore.PoolOrder
}

// FeatureCatalog is the part of featurestore.Store the handlers use.
type FeatureCatalog interface {
	Tables() []featurestore.TableInfo
	Count(ctx context.Context, table featurestore.Table) (int64, error)
	Select(ctx context.Context, table featurestore.Table, filter featurestore.Filter) (*featurestore.ResultSet, error)
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_predict.go: GET / and POST /predict
//   - handlers_recommend.go: /api/v1/recommendations
//   - handlers_featurestore.go: /api/v1/featurestore
//   - handlers_stats.go: /api/v1/stats
type Handler struct {
	engine  Recommender
	catalog FeatureCatalog
	perfMon *middleware.PerformanceMonitor

	defaultTopK    int
	maxTopK        int
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a handler over a ready engine and feature catalog.
// perfMon may be nil, in which case endpoint latency stats are omitted.
func NewHandler(engine Recommender, catalog FeatureCatalog, cfg *config.Config, perfMon *middleware.PerformanceMonitor) (*Handler, error) {
	if engine == nil {
		return nil, errors.New("recommender is required")
	}
	if catalog == nil {
		return nil, errors.New("feature catalog is required")
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	return &Handler{
		engine:         engine,
		catalog:        catalog,
		perfMon:        perfMon,
		defaultTopK:    cfg.Recommend.DefaultTopK,
		maxTopK:        cfg.Recommend.MaxTopK,
		requestTimeout: cfg.Server.RequestTimeout,
		startTime:      time.Now(),
	}, nil
}

// withTimeout bounds a request context by the configured request timeout.
func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}

// checkTopK enforces the configured upper bound.
func (h *Handler) checkTopK(k int) error {
	if h.maxTopK > 0 && k > h.maxTopK {
		return ErrTopKTooLarge
	}
	return nil
}
