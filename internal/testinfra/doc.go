// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package testinfra provides on-disk artifact fixtures for tests.
//
// Feature tables are written as real Parquet files through an in-memory
// DuckDB instance, and ranking models as real LightGBM text models, so tests
// exercise the same readers the service uses in production:
//
//	func TestRecommend(t *testing.T) {
//	    paths := testinfra.WriteCatalog(t, t.TempDir(), testinfra.DefaultCatalog())
//	    testinfra.WriteModel(t, paths.Model, ranker.FeatureNames(), testinfra.PriceBucketTree())
//	    // open the feature store over paths.Users, paths.Items, ...
//	}
//
// # Default Catalog
//
// DefaultCatalog describes a small fashion catalog chosen to cover the
// awkward cases: duplicate candidates, candidates without item features,
// NULL and malformed external IDs, 9 character external IDs that need
// padding, and a known user with a NULL feature.
//
// # Price Bucket Tree
//
// PriceBucketTree scores purely on item_avg_price, in increasing buckets, so
// expected rankings can be read straight off the catalog.
package testinfra
