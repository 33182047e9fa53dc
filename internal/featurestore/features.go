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
	"time"

	"github.com/samber/lo"

	"github.com/tomtom215/lookbook/internal/database/query"
)

// mappingChunkSize bounds the number of bind parameters per IN list.
const mappingChunkSize = 1000

// validExternalID accepts 1 to 10 decimal digits, the range that can be
// zero-padded to the canonical 10 character form.
const validExternalID = `regexp_full_match(trim(CAST(article_id_str AS VARCHAR)), '[0-9]{1,10}')`

// PoolOrder selects how PoolItems orders the candidate pool.
type PoolOrder string

const (
	// PoolOrderStorage keeps the order rows are stored in the candidate file.
	PoolOrderStorage PoolOrder = "pool_order"

	// PoolOrderPopularity orders by item_total_sales descending. Items
	// without sales figures follow, in storage order.
	PoolOrderPopularity PoolOrder = "popularity"
)

// UserRow holds the stored features of one user. NULL values are kept as
// invalid so callers can reject them instead of defaulting.
type UserRow struct {
	CustomerID       int64
	AvgPrice         sql.NullFloat64
	PriceStd         sql.NullFloat64
	TotalPurchases   sql.NullFloat64
	TenureDays       sql.NullFloat64
	DaysSinceLastBuy sql.NullFloat64
}

// ItemRow holds the stored features of one candidate item.
type ItemRow struct {
	ArticleID    int64
	AvgPrice     sql.NullFloat64
	TotalSales   sql.NullFloat64
	ProductGroup sql.NullFloat64
	IndexGroup   sql.NullFloat64
	GarmentGroup sql.NullFloat64
}

// PoolItem is a candidate with its external ID as stored in the mapping.
type PoolItem struct {
	ArticleID  int64
	ExternalID string
}

// LookupUser returns the features of userID, or nil when the user is unknown.
// When the file holds duplicate rows for a user the first stored row wins.
func (s *Store) LookupUser(ctx context.Context, userID int64) (u *UserRow, err error) {
	start := time.Now()
	defer func() { observe("lookup_user", start, err) }()

	wb := query.NewWhereBuilder().AddEquals(ColCustomerID, userID)
	where, args := wb.BuildWithPrefix()

	q := fmt.Sprintf(`SELECT %s,
		CAST(%s AS DOUBLE), CAST(%s AS DOUBLE), CAST(%s AS DOUBLE),
		CAST(%s AS DOUBLE), CAST(%s AS DOUBLE)
	FROM %s %s ORDER BY %s LIMIT 1`,
		ColCustomerID,
		ColUserAvgPrice, ColUserPriceStd, ColUserPurchases,
		ColUserTenureDays, ColDaysSinceLastBuy,
		TableUsers, where, colRowNumber)

	var row UserRow
	err = s.db.QueryRowContext(ctx, q, args...).Scan(
		&row.CustomerID,
		&row.AvgPrice, &row.PriceStd, &row.TotalPurchases,
		&row.TenureDays, &row.DaysSinceLastBuy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user %d: %w", userID, err)
	}
	return &row, nil
}

// CandidateItems joins the candidate pool with item features. Rows come back
// in pool storage order, each item at most once. Pool entries without an
// item row are dropped.
func (s *Store) CandidateItems(ctx context.Context) (items []ItemRow, err error) {
	start := time.Now()
	defer func() { observe("candidate_items", start, err) }()

	q := fmt.Sprintf(`SELECT i.%[1]s,
		CAST(i.%[2]s AS DOUBLE), CAST(i.%[3]s AS DOUBLE),
		CAST(i.%[4]s AS DOUBLE), CAST(i.%[5]s AS DOUBLE), CAST(i.%[6]s AS DOUBLE)
	FROM (
		SELECT %[1]s, MIN(%[7]s) AS pool_pos FROM %[8]s GROUP BY %[1]s
	) c
	JOIN %[9]s i ON i.%[1]s = c.%[1]s
	ORDER BY c.pool_pos, i.%[7]s`,
		ColArticleID,
		ColItemAvgPrice, ColItemTotalSales,
		ColProductGroup, ColIndexGroup, ColGarmentGroup,
		colRowNumber, TableCandidates, TableItems)

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("join candidates with items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.ArticleID,
			&it.AvgPrice, &it.TotalSales,
			&it.ProductGroup, &it.IndexGroup, &it.GarmentGroup); err != nil {
			return nil, fmt.Errorf("scan candidate item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidate items: %w", err)
	}

	return lo.UniqBy(items, func(it ItemRow) int64 { return it.ArticleID }), nil
}

// ExternalIDs maps internal item IDs to their stored external IDs. Only
// mappings that can form a canonical external ID are considered, and the
// first such mapping per item wins, as in PoolItems. IDs with no usable
// mapping are absent from the result. The returned
// map carries no order; callers project their own ranked sequence through it.
func (s *Store) ExternalIDs(ctx context.Context, ids []int64) (out map[int64]string, err error) {
	start := time.Now()
	defer func() { observe("external_ids", start, err) }()

	out = make(map[int64]string, len(ids))
	for _, chunk := range lo.Chunk(lo.Uniq(ids), mappingChunkSize) {
		if err := s.externalIDChunk(ctx, chunk, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) externalIDChunk(ctx context.Context, ids []int64, out map[int64]string) error {
	wb := query.NewWhereBuilder().
		AddIn(ColArticleID, Int64s(ids)...).
		AddClause(ColArticleIDStr + " IS NOT NULL").
		AddClause(validExternalID)
	where, args := wb.BuildWithPrefix()

	q := fmt.Sprintf("SELECT %s, CAST(%s AS VARCHAR) FROM %s %s ORDER BY %s",
		ColArticleID, ColArticleIDStr, TableMapping, where, colRowNumber)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("lookup external ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id  int64
			ext string
		)
		if err := rows.Scan(&id, &ext); err != nil {
			return fmt.Errorf("scan mapping row: %w", err)
		}
		if _, seen := out[id]; !seen {
			out[id] = ext
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate mapping rows: %w", err)
	}
	return nil
}

// PoolItems returns up to limit candidates joined with their external IDs.
// Only mappings that can form a canonical external ID are considered, and
// the first such mapping per item wins. A non-positive limit returns nothing.
func (s *Store) PoolItems(ctx context.Context, limit int, order PoolOrder) (items []PoolItem, err error) {
	start := time.Now()
	defer func() { observe("pool_items", start, err) }()

	if limit <= 0 {
		return []PoolItem{}, nil
	}

	var q string
	switch order {
	case PoolOrderStorage, "":
		q = fmt.Sprintf(`%s
		SELECT p.%[2]s, m.ext
		FROM pool p JOIN ids m ON m.%[2]s = p.%[2]s AND m.rn = 1
		ORDER BY p.pool_pos
		LIMIT ?`, poolCTE(), ColArticleID)
	case PoolOrderPopularity:
		q = fmt.Sprintf(`%s,
		sales AS (
			SELECT %[2]s, MAX(CAST(%[3]s AS DOUBLE)) AS total_sales FROM %[4]s GROUP BY %[2]s
		)
		SELECT p.%[2]s, m.ext
		FROM pool p
		JOIN ids m ON m.%[2]s = p.%[2]s AND m.rn = 1
		LEFT JOIN sales s ON s.%[2]s = p.%[2]s
		ORDER BY s.total_sales DESC NULLS LAST, p.pool_pos
		LIMIT ?`, poolCTE(), ColArticleID, ColItemTotalSales, TableItems)
	default:
		return nil, fmt.Errorf("unknown pool order %q", order)
	}

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query candidate pool: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items = make([]PoolItem, 0, limit)
	for rows.Next() {
		var it PoolItem
		if err := rows.Scan(&it.ArticleID, &it.ExternalID); err != nil {
			return nil, fmt.Errorf("scan pool item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pool items: %w", err)
	}
	return items, nil
}

// poolCTE defines "pool" (distinct candidates with their first storage
// position) and "ids" (usable mappings ranked by storage order).
func poolCTE() string {
	return fmt.Sprintf(`WITH pool AS (
			SELECT %[1]s, MIN(%[2]s) AS pool_pos FROM %[3]s GROUP BY %[1]s
		),
		ids AS (
			SELECT %[1]s, trim(CAST(%[4]s AS VARCHAR)) AS ext,
				ROW_NUMBER() OVER (PARTITION BY %[1]s ORDER BY %[2]s) AS rn
			FROM %[5]s
			WHERE %[4]s IS NOT NULL AND %[6]s
		)`,
		ColArticleID, colRowNumber, TableCandidates, ColArticleIDStr, TableMapping, validExternalID)
}
