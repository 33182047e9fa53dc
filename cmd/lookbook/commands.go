// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/lookbook/internal/featurestore"
	"github.com/tomtom215/lookbook/internal/models"
)

const defaultK = 12

type listOutput struct {
	CustomerID      *int64   `json:"customer_id,omitempty"`
	Recommendations []string `json:"recommendations"`
	ColdStart       bool     `json:"cold_start"`
}

func newRecommendCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "recommend",
		Short:       "Recommend items for a user",
		Annotations: map[string]string{needsPipeline: ""},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetInt64("user")
			k, _ := cmd.Flags().GetInt("k")
			if k < 0 {
				return fmt.Errorf("--k must not be negative")
			}
			result, err := s.comps.Engine.Recommend(s.context(cmd), user, k)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), listOutput{
				CustomerID:      &user,
				Recommendations: result.ItemIDs,
				ColdStart:       result.ColdStart,
			})
		},
	}
	cmd.Flags().Int64("user", 0, "internal customer ID")
	cmd.Flags().Int("k", defaultK, "number of items")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newBestsellersCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "bestsellers",
		Short:       "Show the cold-start list",
		Annotations: map[string]string{needsPipeline: ""},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, _ := cmd.Flags().GetInt("k")
			if k < 0 {
				return fmt.Errorf("--k must not be negative")
			}
			result, err := s.comps.Engine.Bestsellers(s.context(cmd), k)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), listOutput{
				Recommendations: result.ItemIDs,
				ColdStart:       true,
			})
		},
	}
	cmd.Flags().Int("k", defaultK, "number of items")
	return cmd
}

func newTablesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:         "tables",
		Short:       "List feature tables with row counts",
		Annotations: map[string]string{needsPipeline: ""},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := s.context(cmd)
			data := models.TablesData{}
			for _, info := range s.comps.Store.Tables() {
				rows, err := s.comps.Store.Count(ctx, info.Name)
				if err != nil {
					return fmt.Errorf("count %s: %w", info.Name, err)
				}
				data.Tables = append(data.Tables, models.TableStatus{
					Name:           string(info.Name),
					Path:           info.Path,
					Present:        info.Present,
					Rows:           rows,
					MissingColumns: info.MissingColumns,
				})
			}
			return printJSON(cmd.OutOrStdout(), data)
		},
	}
}

func newLookupCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "lookup",
		Short:       "Print rows of a feature table, optionally filtered by column values",
		Annotations: map[string]string{needsPipeline: ""},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("table")
			column, _ := cmd.Flags().GetString("column")
			in, _ := cmd.Flags().GetStringSlice("in")

			table, err := featurestore.ParseTable(name)
			if err != nil {
				return err
			}
			filter := featurestore.All()
			if column != "" {
				values, err := featurestore.ParseValues(table, column, in)
				if err != nil {
					return err
				}
				filter = featurestore.In(column, values...)
			} else if len(in) > 0 {
				return fmt.Errorf("--in requires --column")
			}

			rs, err := s.comps.Store.Select(s.context(cmd), table, filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models.TableRowsData{
				Table:   string(table),
				Columns: rs.Columns,
				Rows:    rs.Rows,
			})
		},
	}
	cmd.Flags().String("table", "", "table: users, items, mapping or candidates")
	cmd.Flags().String("column", "", "column to filter on")
	cmd.Flags().StringSlice("in", nil, "values the column must match")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}
