// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/lookbook/internal/models"
)

// Health handles GET /. The engine cannot exist without a loaded model, so
// a serving handler always reports model_loaded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &models.HealthResponse{
		Status:      "alive",
		ModelLoaded: h.engine != nil,
	})
}

// Predict handles POST /predict.
//
// Body: {"customer_id": int, "top_k": int}. top_k defaults to the configured
// default. The response is {"customer_id": int, "recommendations": [string]}.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondValidationError(w, r, validationError("body", "Request body must be a JSON object"))
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	topK := h.defaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}
	if err := h.checkTopK(topK); err != nil {
		respondValidationError(w, r, validationError("top_k", fmt.Sprintf("top_k must be at most %d", h.maxTopK)))
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.engine.Recommend(ctx, *req.CustomerID, topK)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeRecommendation, "Failed to generate recommendations", err)
		return
	}

	recs := result.ItemIDs
	if recs == nil {
		recs = []string{}
	}
	writeJSON(w, http.StatusOK, &models.PredictResponse{
		CustomerID:      *req.CustomerID,
		Recommendations: recs,
	})
}
