// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package logging provides the zerolog-based structured logger shared by
// every Lookbook component.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("artifact_dir", dir).Msg("Loading artifacts")
//	logging.Ctx(ctx).Debug().Int64("user_id", id).Msg("Serving request")
//
// Components that need their own logger take a zerolog.Logger in their
// constructor and derive a child with a "component" field, so tests can
// pass zerolog.Nop().
//
// # Configuration
//
// Environment variables (mapped through the config package):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Correlation
//
// The HTTP layer stores a request ID and a short correlation ID in the
// request context. Ctx(ctx) returns a logger carrying both fields.
//
// # Supervisor Integration
//
// SlogHandler adapts zerolog to log/slog so that sutureslog can report
// supervisor events through the same sink.
package logging
