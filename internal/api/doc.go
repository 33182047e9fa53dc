// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

/*
Package api is the HTTP surface of the recommendation service.

Routes:

	GET  /                                          liveness and model status
	POST /predict                                   {"customer_id", "top_k"} -> {"customer_id", "recommendations"}
	GET  /metrics                                   Prometheus exposition
	GET  /api/v1/health                             same as GET /
	GET  /api/v1/stats                              engine counters and endpoint latencies
	GET  /api/v1/recommendations/user/{userID}?k=   ranked items with scores
	GET  /api/v1/recommendations/bestsellers?k=     cold-start list
	GET  /api/v1/featurestore/tables                table presence and row counts
	GET  /api/v1/featurestore/tables/{table}/rows   rows filtered by column membership

The /api/v1 routes answer with the models.APIResponse envelope. The root
routes keep the bare request and response shapes of the original service.
Handlers depend on the Recommender and FeatureCatalog interfaces so they
can be tested without DuckDB or a model file.
*/
package api
