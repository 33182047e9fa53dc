// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/lookbook/internal/models"
	"github.com/tomtom215/lookbook/internal/recommend"
)

// Strategy labels reported in recommendation payloads.
const (
	strategyRanked = "ranked"
)

// GetRecommendations handles GET /api/v1/recommendations/user/{userID}?k=
// Returns personalized recommendations, or the cold-start list for users
// without features.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respondValidationError(w, r, validationError("user_id", "user_id must be an integer"))
		return
	}

	q, ok := h.parseRecommendationQuery(w, r)
	if !ok {
		return
	}
	q.UserID = userID

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.engine.Recommend(ctx, q.UserID, q.K)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeRecommendation, "Failed to generate recommendations", err)
		return
	}

	respondSuccess(w, r, h.recommendationsData(result, &q.UserID), start)
}

// GetBestsellers handles GET /api/v1/recommendations/bestsellers?k=
// Returns the non-personalized cold-start list.
func (h *Handler) GetBestsellers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q, ok := h.parseRecommendationQuery(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.engine.Bestsellers(ctx, q.K)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeRecommendation, "Failed to load bestsellers", err)
		return
	}

	respondSuccess(w, r, h.recommendationsData(result, nil), start)
}

// parseRecommendationQuery reads and validates ?k=. It writes the error
// response itself and returns ok=false on failure.
func (h *Handler) parseRecommendationQuery(w http.ResponseWriter, r *http.Request) (models.RecommendationQuery, bool) {
	k, ok := intQueryParam(r, "k", h.defaultTopK)
	if !ok {
		respondValidationError(w, r, validationError("k", "k must be an integer"))
		return models.RecommendationQuery{}, false
	}

	q := models.RecommendationQuery{K: k}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return q, false
	}
	if err := h.checkTopK(q.K); err != nil {
		respondValidationError(w, r, validationError("k", fmt.Sprintf("k must be at most %d", h.maxTopK)))
		return q, false
	}
	return q, true
}

// recommendationsData projects an engine result onto the API payload.
// Personalized results carry scores and internal IDs; cold-start results
// carry only external IDs.
func (h *Handler) recommendationsData(result *recommend.Result, userID *int64) *models.RecommendationsData {
	data := &models.RecommendationsData{
		UserID:    userID,
		Items:     make([]models.RecommendedItem, 0, len(result.ItemIDs)),
		ColdStart: result.ColdStart,
		Strategy:  strategyRanked,
	}
	if result.ColdStart {
		data.Strategy = string(h.engine.ColdStartOrder())
	}

	if !result.ColdStart && len(result.Items) == len(result.ItemIDs) {
		for i, item := range result.Items {
			score := item.Score
			data.Items = append(data.Items, models.RecommendedItem{
				Rank:       i + 1,
				ArticleID:  item.ExternalID,
				Score:      &score,
				InternalID: item.ArticleID,
			})
		}
		return data
	}

	for i, id := range result.ItemIDs {
		data.Items = append(data.Items, models.RecommendedItem{Rank: i + 1, ArticleID: id})
	}
	return data
}
