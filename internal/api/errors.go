// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package api

import "errors"

// Error codes returned in the response envelope.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeRecommendation = "RECOMMENDATION_ERROR"
	CodeFeatureStore   = "FEATURE_STORE_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeRateLimited    = "RATE_LIMIT_EXCEEDED"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrTopKTooLarge indicates a requested list length above the configured maximum.
var ErrTopKTooLarge = errors.New("top_k exceeds the configured maximum")
