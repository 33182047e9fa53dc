// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/lookbook/internal/config"
	"github.com/tomtom215/lookbook/internal/logging"
	"github.com/tomtom215/lookbook/internal/pipeline"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// session carries the pipeline between the root's pre/post hooks and the
// subcommand that runs in between.
type session struct {
	comps *pipeline.Components
}

func newRootCommand() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:           "lookbook",
		Short:         "Query the Lookbook recommendation pipeline from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
	}
	root.PersistentFlags().String("artifact-dir", "", "artifact directory (overrides ARTIFACT_DIR)")
	root.PersistentFlags().String("cold-start", "", "cold start order: pool_order or popularity")
	root.PersistentFlags().String("log-level", "warn", "log level")

	root.AddCommand(
		newRecommendCommand(s),
		newBestsellersCommand(s),
		newTablesCommand(s),
		newLookupCommand(s),
	)
	return root
}

// needsPipeline marks subcommands that run against loaded artifacts, so
// help and completion work without them.
const needsPipeline = "pipeline"

func (s *session) open(cmd *cobra.Command) error {
	if _, ok := cmd.Annotations[needsPipeline]; !ok {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if dir, _ := cmd.Flags().GetString("artifact-dir"); dir != "" {
		cfg.Artifacts.Dir = dir
	}
	if order, _ := cmd.Flags().GetString("cold-start"); order != "" {
		cfg.Recommend.ColdStartStrategy = order
	}
	level, _ := cmd.Flags().GetString("log-level")

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = "console"
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)

	comps, err := pipeline.Open(s.context(cmd), cfg, logging.Logger())
	if err != nil {
		return err
	}
	s.comps = comps
	return nil
}

func (s *session) close() error {
	if s.comps == nil {
		return nil
	}
	err := s.comps.Close()
	s.comps = nil
	return err
}

func (s *session) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
