// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/featurestore"
	"github.com/tomtom215/lookbook/internal/metrics"
	"github.com/tomtom215/lookbook/internal/recommend"
)

type fakeTables struct {
	counts map[featurestore.Table]int64
	failOn featurestore.Table
	calls  atomic.Int32
}

func (f *fakeTables) Tables() []featurestore.TableInfo {
	infos := make([]featurestore.TableInfo, 0, len(featurestore.AllTables()))
	for _, t := range featurestore.AllTables() {
		infos = append(infos, featurestore.TableInfo{Name: t})
	}
	return infos
}

func (f *fakeTables) Count(_ context.Context, table featurestore.Table) (int64, error) {
	f.calls.Add(1)
	if table == f.failOn {
		return 0, errors.New("count failed")
	}
	return f.counts[table], nil
}

type fakeStats struct{ calls atomic.Int32 }

func (f *fakeStats) Stats() recommend.Stats {
	f.calls.Add(1)
	return recommend.Stats{Requests: 1}
}

func TestCatalogMonitor_Check(t *testing.T) {
	tables := &fakeTables{
		counts: map[featurestore.Table]int64{
			featurestore.TableUsers:      2,
			featurestore.TableItems:      4,
			featurestore.TableCandidates: 7,
		},
		failOn: featurestore.TableMapping,
	}
	stats := &fakeStats{}
	m := NewCatalogMonitor(tables, stats, time.Hour, zerolog.Nop())

	m.check(context.Background())

	for table, want := range tables.counts {
		if got := testutil.ToFloat64(metrics.FeatureStoreTableRows.WithLabelValues(string(table))); got != float64(want) {
			t.Errorf("rows{%s} = %v, want %d", table, got, want)
		}
	}
	if tables.calls.Load() != 4 {
		t.Errorf("Count calls = %d, want 4 (a failure must not stop the check)", tables.calls.Load())
	}
	if stats.calls.Load() != 1 {
		t.Errorf("Stats calls = %d, want 1", stats.calls.Load())
	}
}

func TestCatalogMonitor_ServeStopsOnCancel(t *testing.T) {
	tables := &fakeTables{counts: map[featurestore.Table]int64{}}
	m := NewCatalogMonitor(tables, nil, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := m.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	// One immediate check plus at least one tick.
	if tables.calls.Load() < 8 {
		t.Errorf("Count calls = %d, want at least 8", tables.calls.Load())
	}
}

func TestNewCatalogMonitor_DefaultInterval(t *testing.T) {
	m := NewCatalogMonitor(&fakeTables{}, nil, 0, zerolog.Nop())
	if m.interval != time.Minute {
		t.Errorf("interval = %v, want 1m", m.interval)
	}
	if m.String() != "catalog-monitor" {
		t.Errorf("String() = %q", m.String())
	}
}
