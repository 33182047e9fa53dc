// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package database owns the embedded DuckDB engine.
//
// Lookbook never persists data. DuckDB runs in-memory and scans the offline
// Parquet artifacts in place through views registered by the featurestore
// package, so large tables are never materialized in process memory.
//
// Subpackage query provides the parameterized WHERE builder used for every
// data query.
package database
