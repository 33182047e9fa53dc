// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation paths and outcomes used as label values.
const (
	PathPersonalized = "personalized"
	PathColdStart    = "cold_start"

	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Feature store metrics
var (
	// FeatureStoreQueryDuration tracks query execution time by operation
	FeatureStoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "featurestore_query_duration_seconds",
			Help:    "Duration of feature store queries in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	// FeatureStoreQueryErrors counts failed queries by operation
	FeatureStoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "featurestore_query_errors_total",
			Help: "Total number of failed feature store queries",
		},
		[]string{"operation"},
	)

	// FeatureStoreTablePresent is 1 when a table's backing file was found at startup
	FeatureStoreTablePresent = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "featurestore_table_present",
			Help: "Whether the backing file of a feature store table was present at startup (1) or absent (0)",
		},
		[]string{"table"},
	)

	// FeatureStoreTableRows is the last observed row count per table
	FeatureStoreTableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "featurestore_table_rows",
			Help: "Row count of each feature store table at the last catalog check",
		},
		[]string{"table"},
	)
)

// Ranking model metrics
var (
	RankerScoreDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranker_score_duration_seconds",
			Help:    "Duration of batch scoring calls in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	RankerVectorsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ranker_vectors_scored_total",
			Help: "Total number of feature vectors scored",
		},
	)
)

// Recommendation pipeline metrics
var (
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total recommendation requests by path taken and outcome",
		},
		[]string{"path", "outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"path"},
	)

	// RecommendCandidates observes the number of joined candidates per personalized request
	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidates",
			Help:    "Number of scorable candidates per personalized request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9), // 1 .. 65536
		},
	)

	// RecommendUnmappedItems counts ranked items dropped for lacking a valid external ID
	RecommendUnmappedItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_unmapped_items_total",
			Help: "Total ranked items dropped because no valid external ID was found",
		},
	)
)

// API metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)
)

// RecordQuery records a feature store query.
func RecordQuery(operation string, duration time.Duration, err error) {
	FeatureStoreQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		FeatureStoreQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetTablePresent records whether a table's backing file was found.
func SetTablePresent(table string, present bool) {
	v := 0.0
	if present {
		v = 1
	}
	FeatureStoreTablePresent.WithLabelValues(table).Set(v)
}

// SetTableRows records the row count of a table.
func SetTableRows(table string, rows int64) {
	FeatureStoreTableRows.WithLabelValues(table).Set(float64(rows))
}

// RecordScore records one batch scoring call.
func RecordScore(vectors int, duration time.Duration) {
	RankerScoreDuration.Observe(duration.Seconds())
	RankerVectorsScored.Add(float64(vectors))
}

// RecordRecommendation records the outcome of one recommendation request.
func RecordRecommendation(path, outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(path, outcome).Inc()
	RecommendDuration.WithLabelValues(path).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}
