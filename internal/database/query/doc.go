// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

// Package query provides SQL building helpers for the feature store.
//
// Data values always travel as bind parameters. Identifiers come from a
// fixed schema and are quoted with QuoteIdent. QuoteLiteral exists only for
// DDL such as CREATE VIEW ... read_parquet('path'), where DuckDB does not
// accept parameters.
//
//	wb := query.NewWhereBuilder()
//	wb.AddIn("article_id_int", int64(1), int64(2))
//	where, args := wb.BuildWithPrefix()
//	rows, err := db.QueryContext(ctx, "SELECT * FROM mapping "+where, args...)
package query
