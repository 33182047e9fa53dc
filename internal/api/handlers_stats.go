// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/lookbook/internal/middleware"
	"github.com/tomtom215/lookbook/internal/recommend"
)

// StatsData is the payload of GET /api/v1/stats.
type StatsData struct {
	UptimeSeconds     int64                      `json:"uptime_seconds"`
	ColdStartStrategy string                     `json:"cold_start_strategy"`
	Engine            recommend.Stats            `json:"engine"`
	Endpoints         []middleware.EndpointStats `json:"endpoints"`
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	data := &StatsData{
		UptimeSeconds:     int64(time.Since(h.startTime).Seconds()),
		ColdStartStrategy: string(h.engine.ColdStartOrder()),
		Engine:            h.engine.Stats(),
		Endpoints:         []middleware.EndpointStats{},
	}
	if h.perfMon != nil {
		data.Endpoints = h.perfMon.Stats()
	}

	respondSuccess(w, r, data, start)
}
