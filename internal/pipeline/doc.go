// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package pipeline assembles the recommendation stack from configuration.
//
// Open resolves the artifact directory, opens DuckDB, registers the Parquet
// feature tables, loads the LightGBM ranker and builds the engine. Both the
// HTTP server and the CLI start through it.
package pipeline
