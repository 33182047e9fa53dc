// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package ranker evaluates the pretrained LightGBM ranking model.
//
// Every candidate is scored from a 14 value vector whose positions are fixed
// by FeatureOrder. The order is a contract with the training job: a vector
// assembled in any other order still scores, just wrongly, so Load rejects
// models whose declared feature names or input width disagree.
//
// The model is loaded once at startup. A missing artifact returns
// ErrModelNotFound and an unreadable one ErrMalformedModel; neither has a
// fallback and the service must not start.
package ranker
