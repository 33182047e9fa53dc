// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package featurestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/database"
	"github.com/tomtom215/lookbook/internal/database/query"
	"github.com/tomtom215/lookbook/internal/metrics"
)

// Sources maps each logical table to its Parquet file.
type Sources struct {
	Users      string
	Items      string
	Mapping    string
	Candidates string
}

func (s Sources) path(table Table) string {
	switch table {
	case TableUsers:
		return s.Users
	case TableItems:
		return s.Items
	case TableMapping:
		return s.Mapping
	case TableCandidates:
		return s.Candidates
	}
	return ""
}

// TableInfo reports how a table was registered.
type TableInfo struct {
	Name    Table  `json:"name"`
	Path    string `json:"path"`
	Present bool   `json:"present"`

	// MissingColumns lists expected columns the backing file does not have.
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// Store is a read-only accessor over the four feature tables. Each table is
// a DuckDB view over its Parquet file, so scans and filters are pushed down
// to the query engine. Store is immutable after Open and safe for
// concurrent use.
type Store struct {
	db     *sql.DB
	tables map[Table]TableInfo
	logger zerolog.Logger
}

// Open registers one view per table on db. A table whose file does not
// exist is registered as an empty view with the expected columns and a
// warning is logged; callers then observe empty results. Any other
// registration failure is returned.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(ctx context.Context, db *database.DB, sources Sources, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		db:     db.Conn(),
		tables: make(map[Table]TableInfo, len(schema)),
		logger: logger.With().Str("component", "featurestore").Logger(),
	}

	for _, table := range AllTables() {
		info, err := s.register(ctx, table, sources.path(table))
		if err != nil {
			return nil, err
		}
		s.tables[table] = info
		metrics.SetTablePresent(string(table), info.Present)
	}

	return s, nil
}

func (s *Store) register(ctx context.Context, table Table, path string) (TableInfo, error) {
	info := TableInfo{Name: table, Path: path}

	present, err := fileExists(path)
	if err != nil {
		return info, fmt.Errorf("stat %s source %s: %w", table, path, err)
	}

	var ddl string
	if present {
		ddl = fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_parquet(%s, file_row_number = true)",
			query.QuoteIdent(string(table)), query.QuoteLiteral(path))
	} else {
		ddl = fmt.Sprintf("CREATE OR REPLACE VIEW %s AS %s",
			query.QuoteIdent(string(table)), emptySelect(table))
	}

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return info, fmt.Errorf("register %s view over %s: %w", table, path, err)
	}

	if !present {
		s.logger.Warn().
			Str("table", string(table)).
			Str("path", path).
			Msg("Feature table file not found, registered as empty")
		return info, nil
	}

	info.Present = true
	missing, err := s.missingColumns(ctx, table)
	if err != nil {
		return info, err
	}
	info.MissingColumns = missing
	if len(missing) > 0 {
		s.logger.Warn().
			Str("table", string(table)).
			Strs("missing_columns", missing).
			Msg("Feature table is missing expected columns, dependent requests will fail")
	}

	s.logger.Info().
		Str("table", string(table)).
		Str("path", path).
		Msg("Feature table registered")
	return info, nil
}

// emptySelect yields zero rows carrying the expected column names and types.
func emptySelect(table Table) string {
	cols := schema[table]
	parts := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		parts = append(parts, fmt.Sprintf("CAST(NULL AS %s) AS %s", c.Type, query.QuoteIdent(c.Name)))
	}
	parts = append(parts, "CAST(NULL AS BIGINT) AS "+colRowNumber)
	return "SELECT " + strings.Join(parts, ", ") + " LIMIT 0"
}

func (s *Store) missingColumns(ctx context.Context, table Table) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT column_name FROM information_schema.columns WHERE table_name = ?", string(table))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	have := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("describe %s: %w", table, err)
		}
		have[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}

	var missing []string
	for _, c := range schema[table] {
		if !have[c.Name] {
			missing = append(missing, c.Name)
		}
	}
	return missing, nil
}

func fileExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// Tables reports registration details for every table.
func (s *Store) Tables() []TableInfo {
	out := make([]TableInfo, 0, len(s.tables))
	for _, table := range AllTables() {
		out = append(out, s.tables[table])
	}
	return out
}

// Present reports whether table's backing file was found at Open.
func (s *Store) Present(table Table) bool {
	return s.tables[table].Present
}

// observe records duration and outcome of one query.
func observe(operation string, start time.Time, err error) {
	metrics.RecordQuery(operation, time.Since(start), err)
}
