// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package recommend turns a customer ID into a ranked list of article IDs.
//
// # Pipeline
//
// Engine.Recommend runs these steps for a known customer:
//
//  1. Look up the customer's feature row.
//  2. Join the candidate pool with item features.
//  3. Derive price_diff and the constant source, als_score and visual_score
//     features, then assemble vectors in ranker.FeatureOrder.
//  4. Score all vectors in one batch.
//  5. Sort by score, highest first.
//  6. Translate down the ranking to 10 digit external IDs until top_k are
//     collected.
//
// Ties keep candidate pool order. The sort is stable and no secondary key
// is applied.
//
// The ID translation builds a lookup map and projects the ranked list
// through it, so the mapping query's row order never leaks into the result.
// Ranked items without a usable external ID are skipped and the next ranked
// item takes their place, so the list is only shorter than top_k when the
// ranking runs out.
//
// # Cold Start
//
// Unknown customers, and known customers with no joinable candidates, get
// the cold-start list: candidate pool entries joined with their external IDs.
// The list is in pool storage order by default. The popularity order sorts
// by item_total_sales instead.
//
// # Errors
//
// A NULL feature after the join fails the request with ErrMissingFeature.
// Scoring failures return ErrScoring and query failures ErrFeatureStore. An
// empty list is never an error.
//
// # Thread Safety
//
// Engine holds only immutable dependencies and atomic counters. Concurrent
// requests need no locking.
package recommend
