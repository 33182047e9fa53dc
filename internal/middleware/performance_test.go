// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/logging"
)

func TestPerformanceMonitor_SlidingWindow(t *testing.T) {
	pm := NewPerformanceMonitor(3, 0, zerolog.Nop())

	for i := 1; i <= 5; i++ {
		pm.Record(RequestSample{Route: "/", Method: http.MethodGet, Duration: time.Duration(i) * time.Millisecond})
	}

	if pm.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pm.Len())
	}
	stats := pm.Stats()
	if len(stats) != 1 {
		t.Fatalf("got %d endpoints, want 1", len(stats))
	}
	// Samples 3, 4 and 5 remain.
	if stats[0].AvgMS != 4 || stats[0].MaxMS != 5 || stats[0].P50MS != 4 {
		t.Errorf("stats = %+v", stats[0])
	}
}

func TestPerformanceMonitor_StatsOrdering(t *testing.T) {
	pm := NewPerformanceMonitor(10, 0, zerolog.Nop())
	pm.Record(RequestSample{Route: "/b", Method: http.MethodGet, StatusCode: 200})
	pm.Record(RequestSample{Route: "/a", Method: http.MethodGet, StatusCode: 500})
	pm.Record(RequestSample{Route: "/a", Method: http.MethodGet, StatusCode: 200})
	pm.Record(RequestSample{Route: "/c", Method: http.MethodGet, StatusCode: 200})

	stats := pm.Stats()
	got := []string{stats[0].Endpoint, stats[1].Endpoint, stats[2].Endpoint}
	want := []string{"GET /a", "GET /b", "GET /c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("endpoints = %v, want %v", got, want)
		}
	}
	if stats[0].ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", stats[0].ErrorCount)
	}
}

func TestPerformanceMonitor_Empty(t *testing.T) {
	pm := NewPerformanceMonitor(0, 0, zerolog.Nop())
	if stats := pm.Stats(); len(stats) != 0 {
		t.Errorf("Stats() = %v, want empty", stats)
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	var buf bytes.Buffer
	pm := NewPerformanceMonitor(10, time.Nanosecond, logging.NewTestLogger(&buf))

	r := chi.NewRouter()
	r.Use(pm.Middleware)
	r.Get("/slow/{id}", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow/42", nil))

	stats := pm.Stats()
	if len(stats) != 1 || stats[0].Endpoint != "GET /slow/{id}" {
		t.Fatalf("stats = %+v", stats)
	}
	if !strings.Contains(buf.String(), "Slow request detected") {
		t.Errorf("expected a slow request log, got %q", buf.String())
	}
}

func TestPercentile(t *testing.T) {
	if got := percentile(nil, 0.5); got != 0 {
		t.Errorf("percentile(nil) = %v", got)
	}
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := percentile(sorted, 0.5); got != 5 {
		t.Errorf("p50 = %v, want 5", got)
	}
	if got := percentile(sorted, 0.99); got != 9 {
		t.Errorf("p99 = %v, want 9", got)
	}
}
