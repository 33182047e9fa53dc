// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package database

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"github.com/tomtom215/lookbook/internal/config"
)

func setupTestDB(t *testing.T, threads int) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{MaxMemory: "256MB", Threads: threads})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestNew_DefaultsThreadsToNumCPU(t *testing.T) {
	db := setupTestDB(t, 0)

	if db.Threads() != runtime.NumCPU() {
		t.Errorf("Threads() = %d, want %d", db.Threads(), runtime.NumCPU())
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestNew_ExplicitThreads(t *testing.T) {
	db := setupTestDB(t, 2)

	var threads int64
	if err := db.Conn().QueryRow("SELECT current_setting('threads')").Scan(&threads); err != nil {
		t.Fatalf("query threads: %v", err)
	}
	if threads != 2 {
		t.Errorf("threads setting = %d, want 2", threads)
	}
}

// Views created on one pooled connection must be visible from every other.
func TestViewsSharedAcrossConnections(t *testing.T) {
	db := setupTestDB(t, 2)
	ctx := context.Background()

	if _, err := db.Conn().ExecContext(ctx, "CREATE VIEW answer AS SELECT 42 AS v"); err != nil {
		t.Fatalf("create view: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := db.Conn().Conn(ctx)
			if err != nil {
				errs <- err
				return
			}
			defer closeQuietly(conn)

			var v int
			if err := conn.QueryRowContext(ctx, "SELECT v FROM answer").Scan(&v); err != nil {
				errs <- err
				return
			}
			if v != 42 {
				t.Errorf("v = %d, want 42", v)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent view read failed: %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	db, err := New(&config.DatabaseConfig{MaxMemory: "128MB", Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := db.Ping(context.Background()); err == nil {
		t.Error("Ping() after Close should fail")
	}
}
