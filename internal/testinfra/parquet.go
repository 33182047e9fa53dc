// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package testinfra

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/tomtom215/lookbook/internal/config"
	"github.com/tomtom215/lookbook/internal/database"
	"github.com/tomtom215/lookbook/internal/database/query"
)

// UserFeatures is one row of the user feature table. Nil fields are NULL.
type UserFeatures struct {
	CustomerID       int64
	AvgPrice         *float64
	PriceStd         *float64
	TotalPurchases   *float64
	TenureDays       *float64
	DaysSinceLastBuy *float64
}

// ItemFeatures is one row of the item feature table.
type ItemFeatures struct {
	ArticleID    int64
	AvgPrice     *float64
	TotalSales   *float64
	ProductGroup *int64
	IndexGroup   *int64
	GarmentGroup *int64
}

// Mapping is one row of the ID mapping table. A nil ExternalID is NULL.
type Mapping struct {
	ArticleID  int64
	ExternalID *string
}

// Catalog is the content of the four feature tables. Candidates is written
// in slice order, which becomes pool storage order.
type Catalog struct {
	Users      []UserFeatures
	Items      []ItemFeatures
	Mappings   []Mapping
	Candidates []int64
}

// Paths locates the files written by WriteCatalog and WriteModel.
type Paths struct {
	Dir        string
	Users      string
	Items      string
	Mapping    string
	Candidates string
	Model      string
}

// PathsIn returns the default artifact file names under dir.
func PathsIn(dir string) Paths {
	return Paths{
		Dir:        dir,
		Users:      filepath.Join(dir, "features_user.parquet"),
		Items:      filepath.Join(dir, "features_item.parquet"),
		Mapping:    filepath.Join(dir, "article_map.parquet"),
		Candidates: filepath.Join(dir, "candidates_pool.parquet"),
		Model:      filepath.Join(dir, "lgbm_ranker.txt"),
	}
}

// F returns a pointer to v.
func F(v float64) *float64 { return &v }

// I returns a pointer to v.
func I(v int64) *int64 { return &v }

// S returns a pointer to v.
func S(v string) *string { return &v }

// WriteCatalog writes the four tables of c as Parquet files under dir.
func WriteCatalog(t testing.TB, dir string, c Catalog) Paths {
	t.Helper()

	paths := PathsIn(dir)

	users := make([][]string, len(c.Users))
	for i, u := range c.Users {
		users[i] = []string{int64Lit(&u.CustomerID), floatLit(u.AvgPrice), floatLit(u.PriceStd),
			floatLit(u.TotalPurchases), floatLit(u.TenureDays), floatLit(u.DaysSinceLastBuy)}
	}
	WriteParquet(t, paths.Users, selectRows([]column{
		{"customer_id_int", "BIGINT"},
		{"user_avg_price", "DOUBLE"},
		{"user_price_std", "DOUBLE"},
		{"user_total_purchases", "DOUBLE"},
		{"user_tenure_days", "DOUBLE"},
		{"days_since_last_buy", "DOUBLE"},
	}, users))

	items := make([][]string, len(c.Items))
	for i, it := range c.Items {
		items[i] = []string{int64Lit(&it.ArticleID), floatLit(it.AvgPrice), floatLit(it.TotalSales),
			int64Lit(it.ProductGroup), int64Lit(it.IndexGroup), int64Lit(it.GarmentGroup)}
	}
	WriteParquet(t, paths.Items, selectRows([]column{
		{"article_id_int", "BIGINT"},
		{"item_avg_price", "DOUBLE"},
		{"item_total_sales", "DOUBLE"},
		{"product_group", "BIGINT"},
		{"index_group", "BIGINT"},
		{"garment_group", "BIGINT"},
	}, items))

	mappings := make([][]string, len(c.Mappings))
	for i, m := range c.Mappings {
		mappings[i] = []string{int64Lit(&m.ArticleID), stringLit(m.ExternalID)}
	}
	WriteParquet(t, paths.Mapping, selectRows([]column{
		{"article_id_int", "BIGINT"},
		{"article_id_str", "VARCHAR"},
	}, mappings))

	candidates := make([][]string, len(c.Candidates))
	for i := range c.Candidates {
		candidates[i] = []string{int64Lit(&c.Candidates[i])}
	}
	WriteParquet(t, paths.Candidates, selectRows([]column{
		{"article_id_int", "BIGINT"},
	}, candidates))

	return paths
}

// WriteParquet materializes the result of selectSQL as a Parquet file.
func WriteParquet(t testing.TB, path, selectSQL string) {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("open scratch database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close scratch database: %v", err)
		}
	}()

	stmt := fmt.Sprintf("COPY (%s) TO %s (FORMAT PARQUET)", selectSQL, query.QuoteLiteral(path))
	if _, err := db.Conn().ExecContext(context.Background(), stmt); err != nil {
		t.Fatalf("write parquet %s: %v", path, err)
	}
}

type column struct {
	name string
	typ  string
}

// selectRows renders rows as a typed SELECT. Row order is preserved through
// an explicit ordinal so the written file keeps slice order.
func selectRows(cols []column, rows [][]string) string {
	if len(rows) == 0 {
		parts := make([]string, len(cols))
		for i, c := range cols {
			parts[i] = fmt.Sprintf("CAST(NULL AS %s) AS %s", c.typ, query.QuoteIdent(c.name))
		}
		return "SELECT " + strings.Join(parts, ", ") + " LIMIT 0"
	}

	tuples := make([]string, len(rows))
	for i, r := range rows {
		tuples[i] = "(" + strconv.Itoa(i) + ", " + strings.Join(r, ", ") + ")"
	}

	aliases := make([]string, len(cols))
	projections := make([]string, len(cols))
	for i, c := range cols {
		aliases[i] = fmt.Sprintf("c%d", i)
		projections[i] = fmt.Sprintf("CAST(c%d AS %s) AS %s", i, c.typ, query.QuoteIdent(c.name))
	}

	return fmt.Sprintf("SELECT %s FROM (VALUES %s) AS v(ord, %s) ORDER BY ord",
		strings.Join(projections, ", "), strings.Join(tuples, ", "), strings.Join(aliases, ", "))
}

func floatLit(v *float64) string {
	if v == nil {
		return "NULL"
	}
	return "CAST(" + strconv.FormatFloat(*v, 'g', -1, 64) + " AS DOUBLE)"
}

func int64Lit(v *int64) string {
	if v == nil {
		return "NULL"
	}
	return strconv.FormatInt(*v, 10)
}

func stringLit(v *string) string {
	if v == nil {
		return "NULL"
	}
	return query.QuoteLiteral(*v)
}
