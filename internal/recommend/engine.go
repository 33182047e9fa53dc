// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package recommend

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/featurestore"
	"github.com/tomtom215/lookbook/internal/logging"
	"github.com/tomtom215/lookbook/internal/metrics"
	"github.com/tomtom215/lookbook/internal/ranker"
)

// Constant features on the live scoring path. The collaborative and visual
// sub-models do not run here; -1 is the "not available" value the ranking
// model was trained with.
const (
	liveSource        = 1
	unavailableALS    = -1
	unavailableVisual = -1
)

// Engine produces recommendations from the feature store and ranking model.
// It holds no mutable request state and is safe for concurrent use.
type Engine struct {
	store     FeatureStore
	model     Model
	coldStart featurestore.PoolOrder
	logger    zerolog.Logger

	requests   atomic.Int64
	coldStarts atomic.Int64
	errors     atomic.Int64
}

// Options configures an Engine.
type Options struct {
	// ColdStart orders the fallback list. Defaults to storage order.
	ColdStart featurestore.PoolOrder
}

// NewEngine creates an engine over a loaded store and model.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store FeatureStore, model Model, opts Options, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("feature store is required")
	}
	if model == nil {
		return nil, fmt.Errorf("ranking model is required")
	}

	order := opts.ColdStart
	if order == "" {
		order = featurestore.PoolOrderStorage
	}
	if order != featurestore.PoolOrderStorage && order != featurestore.PoolOrderPopularity {
		return nil, fmt.Errorf("unknown cold start order %q", order)
	}

	return &Engine{
		store:     store,
		model:     model,
		coldStart: order,
		logger:    logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns up to topK external item IDs for userID, best first.
//
// Unknown users and users with no scorable candidates get the cold-start
// list. A non-positive topK yields an empty result. Errors are request-local
// and always distinct from an empty result.
func (e *Engine) Recommend(ctx context.Context, userID int64, topK int) (*Result, error) {
	start := time.Now()
	e.requests.Add(1)

	logger := logging.CtxWith(ctx, e.logger).
		Int64("user_id", userID).
		Int("top_k", topK).
		Logger()

	if topK <= 0 {
		metrics.RecordRecommendation(metrics.PathPersonalized, metrics.OutcomeEmpty, time.Since(start))
		return emptyResult(userID, false), nil
	}

	user, err := e.store.LookupUser(ctx, userID)
	if err != nil {
		return nil, e.fail(metrics.PathPersonalized, start, fmt.Errorf("%w: %w", ErrFeatureStore, err))
	}
	if user == nil {
		logger.Debug().Msg("unknown user, serving cold start")
		return e.fallback(ctx, userID, topK, start)
	}

	items, err := e.store.CandidateItems(ctx)
	if err != nil {
		return nil, e.fail(metrics.PathPersonalized, start, fmt.Errorf("%w: %w", ErrFeatureStore, err))
	}
	if len(items) == 0 {
		logger.Debug().Msg("no joinable candidates, serving cold start")
		return e.fallback(ctx, userID, topK, start)
	}

	vectors, err := assemble(user, items)
	if err != nil {
		return nil, e.fail(metrics.PathPersonalized, start, err)
	}

	scores, err := e.model.Score(vectors)
	if err != nil {
		return nil, e.fail(metrics.PathPersonalized, start, fmt.Errorf("%w: %w", ErrScoring, err))
	}
	if len(scores) != len(items) {
		return nil, e.fail(metrics.PathPersonalized, start,
			fmt.Errorf("%w: got %d scores for %d candidates", ErrScoring, len(scores), len(items)))
	}

	ranked := rank(items, scores)

	result, err := e.translate(ctx, userID, ranked, topK, logger)
	if err != nil {
		return nil, e.fail(metrics.PathPersonalized, start, err)
	}
	result.Candidates = len(items)
	metrics.RecommendCandidates.Observe(float64(len(items)))

	e.record(metrics.PathPersonalized, start, len(result.ItemIDs))
	logger.Debug().
		Int("candidates", len(items)).
		Int("returned", len(result.ItemIDs)).
		Int("unmapped", result.Unmapped).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return result, nil
}

// Bestsellers returns the non-personalized cold-start list.
func (e *Engine) Bestsellers(ctx context.Context, topK int) (*Result, error) {
	start := time.Now()
	e.requests.Add(1)
	return e.fallback(ctx, 0, topK, start)
}

func (e *Engine) fallback(ctx context.Context, userID int64, topK int, start time.Time) (*Result, error) {
	e.coldStarts.Add(1)

	result := emptyResult(userID, true)
	if topK <= 0 {
		e.record(metrics.PathColdStart, start, 0)
		return result, nil
	}

	pool, err := e.store.PoolItems(ctx, topK, e.coldStart)
	if err != nil {
		return nil, e.fail(metrics.PathColdStart, start, fmt.Errorf("%w: %w", ErrFeatureStore, err))
	}

	for _, item := range pool {
		id, ok := NormalizeExternalID(item.ExternalID)
		if !ok {
			result.Unmapped++
			continue
		}
		result.ItemIDs = append(result.ItemIDs, id)
		if len(result.ItemIDs) == topK {
			break
		}
	}
	if result.Unmapped > 0 {
		metrics.RecommendUnmappedItems.Add(float64(result.Unmapped))
	}

	e.record(metrics.PathColdStart, start, len(result.ItemIDs))
	return result, nil
}

// assemble builds one ranking vector per item, in item order.
func assemble(user *featurestore.UserRow, items []featurestore.ItemRow) ([][]float64, error) {
	userFeatures := [...]struct {
		idx  int
		name string
		v    sql.NullFloat64
	}{
		{ranker.IdxUserAvgPrice, "user_avg_price", user.AvgPrice},
		{ranker.IdxUserPriceStd, "user_price_std", user.PriceStd},
		{ranker.IdxUserTotalPurchases, "user_total_purchases", user.TotalPurchases},
		{ranker.IdxUserTenureDays, "user_tenure_days", user.TenureDays},
		{ranker.IdxDaysSinceLastBuy, "days_since_last_buy", user.DaysSinceLastBuy},
	}

	base := make([]float64, ranker.NumFeatures)
	base[ranker.IdxSource] = liveSource
	base[ranker.IdxALSScore] = unavailableALS
	base[ranker.IdxVisualScore] = unavailableVisual
	for _, f := range userFeatures {
		if !f.v.Valid {
			return nil, fmt.Errorf("%w: %s for user %d", ErrMissingFeature, f.name, user.CustomerID)
		}
		base[f.idx] = f.v.Float64
	}

	vectors := make([][]float64, len(items))
	for i := range items {
		it := &items[i]
		itemFeatures := [...]struct {
			idx  int
			name string
			v    sql.NullFloat64
		}{
			{ranker.IdxItemAvgPrice, "item_avg_price", it.AvgPrice},
			{ranker.IdxItemTotalSales, "item_total_sales", it.TotalSales},
			{ranker.IdxProductGroup, "product_group", it.ProductGroup},
			{ranker.IdxIndexGroup, "index_group", it.IndexGroup},
			{ranker.IdxGarmentGroup, "garment_group", it.GarmentGroup},
		}

		v := make([]float64, ranker.NumFeatures)
		copy(v, base)
		for _, f := range itemFeatures {
			if !f.v.Valid {
				return nil, fmt.Errorf("%w: %s for article %d", ErrMissingFeature, f.name, it.ArticleID)
			}
			v[f.idx] = f.v.Float64
		}
		v[ranker.IdxPriceDiff] = v[ranker.IdxItemAvgPrice] - v[ranker.IdxUserAvgPrice]
		vectors[i] = v
	}
	return vectors, nil
}

// rank orders items by score, highest first. Equal scores keep candidate
// order.
func rank(items []featurestore.ItemRow, scores []float64) []ScoredItem {
	ranked := make([]ScoredItem, len(items))
	for i := range items {
		ranked[i] = ScoredItem{ArticleID: items[i].ArticleID, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// translate walks the ranked list and projects it through the ID mapping
// until topK items have a usable external ID. Items without one are dropped
// and the next ranked item takes their place, so rank order is kept and the
// result is only short when the ranking runs out. Each lookup asks for
// exactly as many IDs as are still missing.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) translate(ctx context.Context, userID int64, ranked []ScoredItem, topK int, logger zerolog.Logger) (*Result, error) {
	result := emptyResult(userID, false)

	for pos := 0; pos < len(ranked) && len(result.ItemIDs) < topK; {
		end := pos + topK - len(result.ItemIDs)
		if end > len(ranked) {
			end = len(ranked)
		}
		window := ranked[pos:end]
		pos = end

		ids := make([]int64, len(window))
		for i, item := range window {
			ids[i] = item.ArticleID
		}
		mapping, err := e.store.ExternalIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFeatureStore, err)
		}

		for _, item := range window {
			ext, ok := NormalizeExternalID(mapping[item.ArticleID])
			if !ok {
				result.Unmapped++
				logger.Warn().
					Int64("article_id", item.ArticleID).
					Str("stored_id", mapping[item.ArticleID]).
					Msg("Ranked item has no usable external ID, skipping")
				continue
			}
			item.ExternalID = ext
			result.ItemIDs = append(result.ItemIDs, ext)
			result.Items = append(result.Items, item)
		}
	}
	if result.Unmapped > 0 {
		metrics.RecommendUnmappedItems.Add(float64(result.Unmapped))
	}
	return result, nil
}

func (e *Engine) record(path string, start time.Time, returned int) {
	outcome := metrics.OutcomeSuccess
	if returned == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(path, outcome, time.Since(start))
}

func (e *Engine) fail(path string, start time.Time, err error) error {
	e.errors.Add(1)
	metrics.RecordRecommendation(path, metrics.OutcomeError, time.Since(start))
	return err
}

// Stats returns cumulative request counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:   e.requests.Load(),
		ColdStarts: e.coldStarts.Load(),
		Errors:     e.errors.Load(),
	}
}

// ColdStartOrder reports how the fallback list is ordered.
func (e *Engine) ColdStartOrder() featurestore.PoolOrder {
	return e.coldStart
}
