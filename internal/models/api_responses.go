// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package models

import (
	"time"
)

// APIResponse is the envelope of every /api/v1 response.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"user_id": 123456, "items": [...], "cold_start": false},
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z", "query_time_ms": 18}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "k must be at most 100"},
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine readable error.
//
// Codes in use:
//   - VALIDATION_ERROR: malformed path, query or body
//   - RECOMMENDATION_ERROR: the pipeline failed for this request
//   - FEATURE_STORE_ERROR: a table query failed
//   - NOT_FOUND: unknown table
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: recovered panic
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
