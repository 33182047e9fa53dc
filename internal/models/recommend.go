// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package models

// HealthResponse answers GET /.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// PredictRequest is the body of POST /predict. TopK defaults to the
// configured default when omitted.
type PredictRequest struct {
	CustomerID *int64 `json:"customer_id" validate:"required"`
	TopK       *int   `json:"top_k" validate:"omitempty,min=0"`
}

// PredictResponse answers POST /predict.
type PredictResponse struct {
	CustomerID      int64    `json:"customer_id"`
	Recommendations []string `json:"recommendations"`
}

// RecommendationQuery holds the parsed parameters of the /api/v1
// recommendation routes.
type RecommendationQuery struct {
	UserID int64 `json:"user_id"`
	K      int   `json:"k" validate:"min=0"`
}

// RecommendedItem is one ranked article. Score is omitted on the cold-start
// path, which does not score.
type RecommendedItem struct {
	Rank       int      `json:"rank"`
	ArticleID  string   `json:"article_id"`
	Score      *float64 `json:"score,omitempty"`
	InternalID int64    `json:"internal_id,omitempty"`
}

// RecommendationsData is the payload of the /api/v1 recommendation routes.
type RecommendationsData struct {
	UserID    *int64            `json:"user_id,omitempty"`
	Items     []RecommendedItem `json:"items"`
	ColdStart bool              `json:"cold_start"`
	Strategy  string            `json:"strategy,omitempty"`
}

// TableStatus describes one feature store table.
type TableStatus struct {
	Name           string   `json:"name"`
	Path           string   `json:"path"`
	Present        bool     `json:"present"`
	Rows           int64    `json:"rows"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// TablesData is the payload of GET /api/v1/featurestore/tables.
type TablesData struct {
	Tables []TableStatus `json:"tables"`
}

// TableRowsQuery selects rows from one feature table by column membership.
type TableRowsQuery struct {
	Table  string   `json:"table" validate:"required,feature_table"`
	Column string   `json:"column" validate:"omitempty,max=64"`
	Values []string `json:"values" validate:"max=1000,dive,max=64"`
}

// TableRowsData is the payload of GET /api/v1/featurestore/tables/{table}/rows.
type TableRowsData struct {
	Table   string          `json:"table"`
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}
