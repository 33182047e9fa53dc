// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package featurestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/config"
	"github.com/tomtom215/lookbook/internal/database"
	"github.com/tomtom215/lookbook/internal/metrics"
	"github.com/tomtom215/lookbook/internal/testinfra"
)

func sourcesFor(p testinfra.Paths) Sources {
	return Sources{Users: p.Users, Items: p.Items, Mapping: p.Mapping, Candidates: p.Candidates}
}

func openStore(t *testing.T, sources Sources) *Store {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{MaxMemory: "256MB", Threads: 2})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	store, err := Open(context.Background(), db, sources, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return store
}

func setupCatalog(t *testing.T) *Store {
	t.Helper()
	paths := testinfra.WriteCatalog(t, t.TempDir(), testinfra.DefaultCatalog())
	return openStore(t, sourcesFor(paths))
}

func TestOpen_AllTablesPresent(t *testing.T) {
	store := setupCatalog(t)

	infos := store.Tables()
	if len(infos) != 4 {
		t.Fatalf("Tables() returned %d entries, want 4", len(infos))
	}
	for i, table := range AllTables() {
		if infos[i].Name != table {
			t.Errorf("Tables()[%d].Name = %q, want %q", i, infos[i].Name, table)
		}
		if !infos[i].Present {
			t.Errorf("table %s should be present", table)
		}
		if len(infos[i].MissingColumns) != 0 {
			t.Errorf("table %s missing columns %v", table, infos[i].MissingColumns)
		}
		if got := testutil.ToFloat64(metrics.FeatureStoreTablePresent.WithLabelValues(string(table))); got != 1 {
			t.Errorf("present gauge for %s = %v, want 1", table, got)
		}
	}
}

func TestOpen_MissingFileRegistersEmptyView(t *testing.T) {
	paths := testinfra.WriteCatalog(t, t.TempDir(), testinfra.DefaultCatalog())
	sources := sourcesFor(paths)
	sources.Candidates = filepath.Join(t.TempDir(), "absent.parquet")

	store := openStore(t, sources)
	ctx := context.Background()

	if store.Present(TableCandidates) {
		t.Error("candidates should be reported absent")
	}
	if !store.Present(TableItems) {
		t.Error("items should be reported present")
	}

	n, err := store.Count(ctx, TableCandidates)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count(candidates) = %d, want 0", n)
	}

	items, err := store.CandidateItems(ctx)
	if err != nil {
		t.Fatalf("CandidateItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("CandidateItems() = %v, want empty", items)
	}

	pool, err := store.PoolItems(ctx, 10, PoolOrderPopularity)
	if err != nil {
		t.Fatalf("PoolItems() error = %v", err)
	}
	if len(pool) != 0 {
		t.Errorf("PoolItems() = %v, want empty", pool)
	}

	// The placeholder keeps the expected columns.
	rs, err := store.Select(ctx, TableCandidates, Equals(ColArticleID, int64(1)))
	if err != nil {
		t.Fatalf("Select() on absent table error = %v", err)
	}
	if rs.Len() != 0 || !reflect.DeepEqual(rs.Columns, []string{ColArticleID}) {
		t.Errorf("Select() = %+v", rs)
	}
}

func TestOpen_AllFilesMissing(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t, sourcesFor(testinfra.PathsIn(dir)))
	ctx := context.Background()

	for _, table := range AllTables() {
		if store.Present(table) {
			t.Errorf("table %s should be absent", table)
		}
	}

	user, err := store.LookupUser(ctx, testinfra.KnownUser)
	if err != nil {
		t.Fatalf("LookupUser() error = %v", err)
	}
	if user != nil {
		t.Errorf("LookupUser() = %+v, want nil", user)
	}

	ids, err := store.ExternalIDs(ctx, []int64{1, 2})
	if err != nil {
		t.Fatalf("ExternalIDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ExternalIDs() = %v, want empty", ids)
	}
}

func TestOpen_ReportsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	paths := testinfra.WriteCatalog(t, dir, testinfra.DefaultCatalog())

	// Overwrite the user table with one that lacks days_since_last_buy.
	if err := os.Remove(paths.Users); err != nil {
		t.Fatalf("remove users: %v", err)
	}
	testinfra.WriteParquet(t, paths.Users, `SELECT
		CAST(123456 AS BIGINT) AS customer_id_int,
		CAST(25.5 AS DOUBLE) AS user_avg_price,
		CAST(4.25 AS DOUBLE) AS user_price_std,
		CAST(17 AS DOUBLE) AS user_total_purchases,
		CAST(410 AS DOUBLE) AS user_tenure_days`)

	store := openStore(t, sourcesFor(paths))

	var users TableInfo
	for _, info := range store.Tables() {
		if info.Name == TableUsers {
			users = info
		}
	}
	if !users.Present {
		t.Fatal("users should be present")
	}
	if !reflect.DeepEqual(users.MissingColumns, []string{ColDaysSinceLastBuy}) {
		t.Errorf("MissingColumns = %v, want [%s]", users.MissingColumns, ColDaysSinceLastBuy)
	}

	if _, err := store.LookupUser(context.Background(), testinfra.KnownUser); err == nil {
		t.Error("LookupUser() on a table missing a column should fail")
	}
}

func TestOpen_CorruptFileFails(t *testing.T) {
	paths := testinfra.WriteCatalog(t, t.TempDir(), testinfra.DefaultCatalog())
	if err := os.WriteFile(paths.Items, []byte("not parquet"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	db, err := database.New(&config.DatabaseConfig{MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := Open(context.Background(), db, sourcesFor(paths), zerolog.Nop()); err == nil {
		t.Fatal("Open() should fail on a corrupt parquet file")
	}
}

func TestCount(t *testing.T) {
	store := setupCatalog(t)
	ctx := context.Background()

	want := map[Table]int64{
		TableUsers:      2,
		TableItems:      4,
		TableMapping:    7,
		TableCandidates: 7,
	}
	for table, n := range want {
		got, err := store.Count(ctx, table)
		if err != nil {
			t.Fatalf("Count(%s) error = %v", table, err)
		}
		if got != n {
			t.Errorf("Count(%s) = %d, want %d", table, got, n)
		}
	}

	if _, err := store.Count(ctx, Table("orders")); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Count(orders) error = %v, want ErrUnknownTable", err)
	}
}

func TestParseTable(t *testing.T) {
	for _, table := range AllTables() {
		got, err := ParseTable(string(table))
		if err != nil || got != table {
			t.Errorf("ParseTable(%q) = %q, %v", table, got, err)
		}
	}
	if _, err := ParseTable("orders"); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("ParseTable(orders) error = %v, want ErrUnknownTable", err)
	}
}

func TestEmptySelect(t *testing.T) {
	got := emptySelect(TableMapping)
	want := `SELECT CAST(NULL AS BIGINT) AS "article_id_int", CAST(NULL AS VARCHAR) AS "article_id_str", ` +
		`CAST(NULL AS BIGINT) AS file_row_number LIMIT 0`
	if got != want {
		t.Errorf("emptySelect() =\n%s\nwant\n%s", got, want)
	}
}
