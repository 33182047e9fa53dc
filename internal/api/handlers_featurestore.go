// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/lookbook/internal/featurestore"
	"github.com/tomtom215/lookbook/internal/models"
)

// ListTables handles GET /api/v1/featurestore/tables.
// Returns presence, source path and row count per logical table.
func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	infos := h.catalog.Tables()
	data := &models.TablesData{Tables: make([]models.TableStatus, 0, len(infos))}
	for _, info := range infos {
		rows, err := h.catalog.Count(ctx, info.Name)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, CodeFeatureStore, "Failed to count table rows", err)
			return
		}
		data.Tables = append(data.Tables, models.TableStatus{
			Name:           string(info.Name),
			Path:           info.Path,
			Present:        info.Present,
			Rows:           rows,
			MissingColumns: info.MissingColumns,
		})
	}

	respondSuccess(w, r, data, start)
}

// GetTableRows handles GET /api/v1/featurestore/tables/{table}/rows
//
// Query parameters:
//   - column: column to filter on (optional; all rows when omitted)
//   - values: comma-separated or repeated values the column must match
func (h *Handler) GetTableRows(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := models.TableRowsQuery{
		Table:  chi.URLParam(r, "table"),
		Column: r.URL.Query().Get("column"),
		Values: parseCommaSeparated(r.URL.Query()["values"]),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		if _, err := featurestore.ParseTable(q.Table); err != nil && q.Table != "" {
			respondError(w, r, http.StatusNotFound, CodeNotFound, "Unknown feature table", nil)
			return
		}
		respondValidationError(w, r, apiErr)
		return
	}

	table, _ := featurestore.ParseTable(q.Table)
	filter := featurestore.All()
	if q.Column != "" {
		values, err := featurestore.ParseValues(table, q.Column, q.Values)
		if err != nil {
			field := "values"
			if errors.Is(err, featurestore.ErrUnknownColumn) {
				field = "column"
			}
			respondValidationError(w, r, validationError(field, err.Error()))
			return
		}
		filter = featurestore.In(q.Column, values...)
	} else if len(q.Values) > 0 {
		respondValidationError(w, r, validationError("column", "column is required when values are given"))
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	rs, err := h.catalog.Select(ctx, table, filter)
	if err != nil {
		if errors.Is(err, featurestore.ErrUnknownColumn) {
			respondValidationError(w, r, validationError("column", err.Error()))
			return
		}
		respondError(w, r, http.StatusInternalServerError, CodeFeatureStore, "Failed to query feature table", err)
		return
	}

	respondSuccess(w, r, &models.TableRowsData{
		Table:   string(table),
		Columns: rs.Columns,
		Rows:    rs.Rows,
	}, start)
}
