// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Command lookbook runs the recommendation pipeline without the HTTP server.
//
// It loads the same configuration and artifacts as the server and prints
// JSON to stdout:
//
//	lookbook recommend --user 123456 --k 12
//	lookbook bestsellers --k 5 --cold-start popularity
//	lookbook tables
//	lookbook lookup --table mapping --column article_id_int --in 1,2,3
package main
