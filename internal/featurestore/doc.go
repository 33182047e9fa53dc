// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package featurestore is the read-only accessor over the offline feature
// tables.
//
// Four logical tables are registered as DuckDB views over Parquet files:
//
//   - users: one row of spend and tenure features per known customer
//   - items: price, sales and category group features per article
//   - mapping: internal article ID to the external 10 digit article ID
//   - candidates: the precomputed, user independent candidate pool
//
// Every view carries file_row_number, so "storage order" is well defined
// and all queries that return candidate lists order by it.
//
// A table whose file is missing is registered as an empty view with the
// expected columns. Queries against it succeed with no rows, which pushes
// requests onto the cold-start path instead of failing startup.
//
// Typed accessors serve the recommendation pipeline:
//
//	user, err := store.LookupUser(ctx, 123456)     // nil when unknown
//	items, err := store.CandidateItems(ctx)        // pool joined with items
//	ids, err := store.ExternalIDs(ctx, []int64{1}) // internal -> external
//	pool, err := store.PoolItems(ctx, 12, featurestore.PoolOrderStorage)
//
// Select offers the generic table plus filter contract used by operator
// tooling. All values are bound as parameters.
package featurestore
