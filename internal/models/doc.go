// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

/*
Package models defines the request and response shapes of the HTTP API.

Two response styles coexist:

  - The storefront routes (GET / and POST /predict) return bare JSON objects
    so existing frontends keep working unchanged.
  - The /api/v1 routes wrap every payload in APIResponse with a status,
    metadata and a structured APIError on failure.

Request types carry go-playground/validator tags and are checked with
validation.ValidateStruct before they reach the engine.
*/
package models
