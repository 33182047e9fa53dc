// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package main

import (
	"bytes"
	"reflect"
	"strconv"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lookbook/internal/models"
	"github.com/tomtom215/lookbook/internal/ranker"
	"github.com/tomtom215/lookbook/internal/testinfra"
)

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	paths := testinfra.WriteCatalog(t, dir, testinfra.DefaultCatalog())
	testinfra.WriteModel(t, paths.Model, ranker.FeatureNames(), testinfra.PriceBucketTree())
	return dir
}

func execute(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.Bytes(), err
}

func TestRecommendCommand(t *testing.T) {
	dir := fixtureDir(t)

	out, err := execute(t, "recommend", "--artifact-dir", dir,
		"--user", strconv.FormatInt(testinfra.KnownUser, 10), "--k", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got listOutput
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.CustomerID == nil || *got.CustomerID != testinfra.KnownUser {
		t.Errorf("CustomerID = %v", got.CustomerID)
	}
	if !reflect.DeepEqual(got.Recommendations, []string{"0108775044", "0108775015"}) {
		t.Errorf("Recommendations = %v", got.Recommendations)
	}
	if got.ColdStart {
		t.Error("ColdStart = true, want false")
	}
}

func TestRecommendCommand_RequiresUser(t *testing.T) {
	if _, err := execute(t, "recommend", "--artifact-dir", fixtureDir(t)); err == nil {
		t.Fatal("Execute() should fail without --user")
	}
}

func TestBestsellersCommand(t *testing.T) {
	dir := fixtureDir(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "pool order", args: []string{"--k", "2"}, want: []string{"0110065001", "0108775015"}},
		{name: "popularity", args: []string{"--k", "2", "--cold-start", "popularity"}, want: []string{"0108775044", "0108775015"}},
		{name: "zero", args: []string{"--k", "0"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"bestsellers", "--artifact-dir", dir}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			var got listOutput
			if err := json.Unmarshal(out, &got); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if !reflect.DeepEqual(got.Recommendations, tt.want) {
				t.Errorf("Recommendations = %v, want %v", got.Recommendations, tt.want)
			}
			if !got.ColdStart {
				t.Error("ColdStart = false, want true")
			}
		})
	}
}

func TestTablesCommand(t *testing.T) {
	out, err := execute(t, "tables", "--artifact-dir", fixtureDir(t))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got models.TablesData
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	rows := map[string]int64{}
	for _, tbl := range got.Tables {
		rows[tbl.Name] = tbl.Rows
	}
	want := map[string]int64{"users": 2, "items": 4, "mapping": 7, "candidates": 7}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestLookupCommand(t *testing.T) {
	dir := fixtureDir(t)

	out, err := execute(t, "lookup", "--artifact-dir", dir,
		"--table", "mapping", "--column", "article_id_int", "--in", "1,5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var got models.TableRowsData
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Table != "mapping" {
		t.Errorf("Table = %q", got.Table)
	}
	// Shirt is mapped twice, Belt once.
	if len(got.Rows) != 3 {
		t.Errorf("got %d rows, want 3: %v", len(got.Rows), got.Rows)
	}
}

func TestLookupCommand_BadInput(t *testing.T) {
	dir := fixtureDir(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown table", args: []string{"--table", "orders"}},
		{name: "unknown column", args: []string{"--table", "items", "--column", "colour", "--in", "1"}},
		{name: "non-numeric value", args: []string{"--table", "items", "--column", "article_id_int", "--in", "x"}},
		{name: "values without column", args: []string{"--table", "items", "--in", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"lookup", "--artifact-dir", dir}, tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Fatal("Execute() should fail")
			}
		})
	}
}

func TestHelpDoesNotLoadArtifacts(t *testing.T) {
	if _, err := execute(t, "--artifact-dir", t.TempDir(), "help"); err != nil {
		t.Fatalf("help should not need artifacts: %v", err)
	}
}
