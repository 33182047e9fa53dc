// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/featurestore"
	"github.com/tomtom215/lookbook/internal/metrics"
	"github.com/tomtom215/lookbook/internal/recommend"
)

// TableCounter is the part of the feature store the monitor reads.
type TableCounter interface {
	Tables() []featurestore.TableInfo
	Count(ctx context.Context, table featurestore.Table) (int64, error)
}

// EngineStats reports cumulative recommendation counters.
type EngineStats interface {
	Stats() recommend.Stats
}

// checkTimeout bounds a single catalog check.
const checkTimeout = 30 * time.Second

// CatalogMonitor periodically publishes table row counts as gauges and logs
// the engine's request counters.
type CatalogMonitor struct {
	tables   TableCounter
	engine   EngineStats
	interval time.Duration
	logger   zerolog.Logger
}

// NewCatalogMonitor creates a monitor checking every interval. A
// non-positive interval defaults to one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogMonitor(tables TableCounter, engine EngineStats, interval time.Duration, logger zerolog.Logger) *CatalogMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CatalogMonitor{
		tables:   tables,
		engine:   engine,
		interval: interval,
		logger:   logger.With().Str("service", "catalog-monitor").Logger(),
	}
}

// Serve implements suture.Service. It checks once immediately and then on
// every tick until ctx is canceled. Count failures are logged and retried on
// the next tick rather than restarting the service.
func (m *CatalogMonitor) Serve(ctx context.Context) error {
	m.logger.Info().Dur("interval", m.interval).Msg("catalog monitor starting")

	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("catalog monitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check refreshes the row gauges once.
func (m *CatalogMonitor) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	for _, info := range m.tables.Tables() {
		rows, err := m.tables.Count(checkCtx, info.Name)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.logger.Warn().Err(err).Str("table", string(info.Name)).Msg("table count failed")
			continue
		}
		metrics.SetTableRows(string(info.Name), rows)
	}

	if m.engine != nil {
		stats := m.engine.Stats()
		m.logger.Debug().
			Int64("requests", stats.Requests).
			Int64("cold_starts", stats.ColdStarts).
			Int64("errors", stats.Errors).
			Msg("engine counters")
	}
}

// String names the service in supervisor events.
func (m *CatalogMonitor) String() string {
	return "catalog-monitor"
}
