// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package services provides suture.Service wrappers for long-running
// components: the HTTP server and the periodic catalog monitor.
package services
