// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package config loads Lookbook configuration with Koanf v2.
//
// Sources are layered, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file: CONFIG_PATH, ./config.yaml or /etc/lookbook/config.yaml
//  3. Environment variables, through an explicit mapping table
//
// Example config.yaml:
//
//	server:
//	  port: 8000
//	artifacts:
//	  dir: /data/artifacts
//	recommend:
//	  default_top_k: 12
//	  cold_start_strategy: pool_order
//
// Common environment variables:
//
//	ARTIFACT_DIR         - directory with lgbm_ranker.txt and the Parquet tables
//	HTTP_PORT            - listen port (default: 8000)
//	COLD_START_STRATEGY  - pool_order or popularity
//	LOG_LEVEL            - trace, debug, info, warn, error
//
// Load validates the result; an invalid configuration is a startup error.
package config
