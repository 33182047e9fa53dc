// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package featurestore

import (
	"errors"
	"fmt"
	"strconv"
)

// Table names a logical feature store table.
type Table string

// The four logical tables backed by Parquet artifacts.
const (
	TableUsers      Table = "users"
	TableItems      Table = "items"
	TableMapping    Table = "mapping"
	TableCandidates Table = "candidates"
)

// Column names shared by the tables.
const (
	ColCustomerID       = "customer_id_int"
	ColUserAvgPrice     = "user_avg_price"
	ColUserPriceStd     = "user_price_std"
	ColUserPurchases    = "user_total_purchases"
	ColUserTenureDays   = "user_tenure_days"
	ColDaysSinceLastBuy = "days_since_last_buy"

	ColArticleID      = "article_id_int"
	ColItemAvgPrice   = "item_avg_price"
	ColItemTotalSales = "item_total_sales"
	ColProductGroup   = "product_group"
	ColIndexGroup     = "index_group"
	ColGarmentGroup   = "garment_group"

	ColArticleIDStr = "article_id_str"

	// colRowNumber is added by read_parquet(file_row_number = true) and
	// records storage order.
	colRowNumber = "file_row_number"
)

var (
	// ErrUnknownTable is returned for a table name outside the fixed schema.
	ErrUnknownTable = errors.New("unknown feature store table")

	// ErrUnknownColumn is returned for a column not defined on the table.
	ErrUnknownColumn = errors.New("unknown feature store column")

	// ErrInvalidValue is returned when a filter value does not parse as the
	// column's type.
	ErrInvalidValue = errors.New("invalid value for column")
)

// Column describes one expected column and the SQL type used when the
// backing file is absent and an empty placeholder view is registered.
type Column struct {
	Name string
	Type string
}

// schema lists the expected columns per table, in result order.
var schema = map[Table][]Column{
	TableUsers: {
		{ColCustomerID, "BIGINT"},
		{ColUserAvgPrice, "DOUBLE"},
		{ColUserPriceStd, "DOUBLE"},
		{ColUserPurchases, "DOUBLE"},
		{ColUserTenureDays, "DOUBLE"},
		{ColDaysSinceLastBuy, "DOUBLE"},
	},
	TableItems: {
		{ColArticleID, "BIGINT"},
		{ColItemAvgPrice, "DOUBLE"},
		{ColItemTotalSales, "DOUBLE"},
		{ColProductGroup, "BIGINT"},
		{ColIndexGroup, "BIGINT"},
		{ColGarmentGroup, "BIGINT"},
	},
	TableMapping: {
		{ColArticleID, "BIGINT"},
		{ColArticleIDStr, "VARCHAR"},
	},
	TableCandidates: {
		{ColArticleID, "BIGINT"},
	},
}

// AllTables returns the logical tables in registration order.
func AllTables() []Table {
	return []Table{TableUsers, TableItems, TableMapping, TableCandidates}
}

// Columns returns the expected columns of table.
func Columns(table Table) ([]Column, error) {
	cols, ok := schema[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	out := make([]Column, len(cols))
	copy(out, cols)
	return out, nil
}

// ParseTable validates a table name.
func ParseTable(name string) (Table, error) {
	t := Table(name)
	if _, ok := schema[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return t, nil
}

func hasColumn(table Table, column string) bool {
	_, ok := columnType(table, column)
	return ok
}

func columnType(table Table, column string) (string, bool) {
	for _, c := range schema[table] {
		if c.Name == column {
			return c.Type, true
		}
	}
	return "", false
}

// ParseValues converts textual filter values to the Go type of column, so
// they bind as typed query parameters.
func ParseValues(table Table, column string, raw []string) ([]interface{}, error) {
	typ, ok := columnType(table, column)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, column)
	}

	out := make([]interface{}, len(raw))
	for i, r := range raw {
		switch typ {
		case "BIGINT":
			v, err := strconv.ParseInt(r, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %s: %q", ErrInvalidValue, column, r)
			}
			out[i] = v
		case "DOUBLE":
			v, err := strconv.ParseFloat(r, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %s: %q", ErrInvalidValue, column, r)
			}
			out[i] = v
		default:
			out[i] = r
		}
	}
	return out, nil
}
