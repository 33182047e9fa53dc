// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package featurestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/lookbook/internal/database/query"
)

type filterKind int

const (
	filterAll filterKind = iota
	filterEquals
	filterIn
)

// Filter restricts the rows returned by Select.
type Filter struct {
	kind   filterKind
	column string
	values []interface{}
}

// All matches every row.
func All() Filter {
	return Filter{kind: filterAll}
}

// Equals matches rows where column = value.
func Equals(column string, value interface{}) Filter {
	return Filter{kind: filterEquals, column: column, values: []interface{}{value}}
}

// In matches rows whose column is one of values. No values matches no rows.
func In(column string, values ...interface{}) Filter {
	return Filter{kind: filterIn, column: column, values: values}
}

// Int64s converts ids for use with In.
func Int64s(ids []int64) []interface{} {
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func (f Filter) apply(table Table, wb *query.WhereBuilder) error {
	if f.kind == filterAll {
		return nil
	}
	if !hasColumn(table, f.column) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, f.column)
	}
	switch f.kind {
	case filterEquals:
		wb.AddEquals(f.column, f.values[0])
	case filterIn:
		wb.AddIn(f.column, f.values...)
	}
	return nil
}

// ResultSet is a tabular query result with stable column names.
type ResultSet struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// Len returns the number of rows.
func (r *ResultSet) Len() int {
	return len(r.Rows)
}

// Select returns the rows of table matching filter, in storage order, with
// the table's expected columns. An absent table yields an empty result.
func (s *Store) Select(ctx context.Context, table Table, filter Filter) (rs *ResultSet, err error) {
	start := time.Now()
	defer func() { observe("select", start, err) }()

	cols, err := Columns(table)
	if err != nil {
		return nil, err
	}

	wb := query.NewWhereBuilder()
	if err := filter.apply(table, wb); err != nil {
		return nil, err
	}
	where, args := wb.BuildWithPrefix()

	names := make([]string, len(cols))
	quoted := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		quoted[i] = query.QuoteIdent(c.Name)
	}

	q := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s",
		strings.Join(quoted, ", "), query.QuoteIdent(string(table)), where, colRowNumber)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	rs = &ResultSet{Columns: names, Rows: [][]interface{}{}}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table, err)
	}
	return rs, nil
}

// Count returns the number of rows in table.
func (s *Store) Count(ctx context.Context, table Table) (n int64, err error) {
	start := time.Now()
	defer func() { observe("count", start, err) }()

	if _, err := Columns(table); err != nil {
		return 0, err
	}
	q := "SELECT COUNT(*) FROM " + query.QuoteIdent(string(table))
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
