// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package recommend

import (
	"context"
	"errors"

	"github.com/tomtom215/lookbook/internal/featurestore"
)

var (
	// ErrMissingFeature is returned when a joined candidate row has a NULL
	// feature. Features are never defaulted.
	ErrMissingFeature = errors.New("missing feature value")

	// ErrScoring is returned when the ranking model fails or returns the
	// wrong number of scores.
	ErrScoring = errors.New("scoring failed")

	// ErrFeatureStore is returned when a feature store query fails.
	ErrFeatureStore = errors.New("feature store query failed")
)

// FeatureStore is the subset of the feature store the engine reads.
type FeatureStore interface {
	LookupUser(ctx context.Context, userID int64) (*featurestore.UserRow, error)
	CandidateItems(ctx context.Context) ([]featurestore.ItemRow, error)
	ExternalIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	PoolItems(ctx context.Context, limit int, order featurestore.PoolOrder) ([]featurestore.PoolItem, error)
}

// Model scores ranking vectors, one score per vector in input order.
type Model interface {
	Score(vectors [][]float64) ([]float64, error)
}

// ScoredItem is one ranked recommendation.
type ScoredItem struct {
	ArticleID  int64   `json:"article_id"`
	ExternalID string  `json:"external_id"`
	Score      float64 `json:"score"`
}

// Result is the outcome of one recommendation request.
type Result struct {
	// UserID is the requested user. Zero for Bestsellers.
	UserID int64

	// ItemIDs holds external IDs in rank order, never more than top_k.
	ItemIDs []string

	// Items carries the model score per returned item on the personalized
	// path. It is empty for cold-start results.
	Items []ScoredItem

	// ColdStart reports whether the fallback produced the list.
	ColdStart bool

	// Candidates is the number of distinct candidates scored.
	Candidates int

	// Unmapped counts ranked items dropped for lacking a usable external ID.
	Unmapped int
}

// Stats are cumulative request counters since the engine was created.
type Stats struct {
	Requests   int64 `json:"requests"`
	ColdStarts int64 `json:"cold_starts"`
	Errors     int64 `json:"errors"`
}

func emptyResult(userID int64, coldStart bool) *Result {
	return &Result{
		UserID:    userID,
		ItemIDs:   []string{},
		Items:     []ScoredItem{},
		ColdStart: coldStart,
	}
}
