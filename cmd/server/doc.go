// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

/*
Package main is the entry point for the Lookbook recommendation server.

Lookbook serves personalized fashion recommendations. Offline training writes
Parquet feature tables and a LightGBM ranking model into an artifact
directory; the server queries the tables through DuckDB, scores candidate
items with the model and falls back to a cold-start list for unknown users.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("lookbook")
	├── DataSupervisor ("data-layer")
	│   └── Catalog monitor (table row gauges, engine counters)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional config.yaml, environment
 2. Logging: zerolog, JSON or console
 3. Artifacts: resolve ARTIFACT_DIR, falling back to ./artifacts
 4. Database: in-memory DuckDB with Parquet views
 5. Ranker: LightGBM text model, feature names checked against the contract
 6. Engine: personalized ranking plus cold start
 7. HTTP: chi router with CORS, rate limiting and Prometheus metrics

A missing or corrupt model, or a feature table that cannot be read, stops
startup. A missing feature table is served as empty.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within SHUTDOWN_TIMEOUT, then the database is closed.

# Example Usage

	export ARTIFACT_DIR=/srv/lookbook/artifacts
	export COLD_START_STRATEGY=popularity
	./lookbook-server

	curl -s -X POST localhost:8000/predict -d '{"customer_id": 123456, "top_k": 12}'
*/
package main
