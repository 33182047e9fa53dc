// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/lookbook/internal/api"
	"github.com/tomtom215/lookbook/internal/config"
	"github.com/tomtom215/lookbook/internal/logging"
	"github.com/tomtom215/lookbook/internal/middleware"
	"github.com/tomtom215/lookbook/internal/pipeline"
	"github.com/tomtom215/lookbook/internal/supervisor"
	"github.com/tomtom215/lookbook/internal/supervisor/services"
)

const (
	perfWindow        = 1000
	slowRequestCutoff = time.Second
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Lookbook exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // sequential setup steps
func run() error {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)
	logger := logging.Logger()

	logging.Info().
		Str("artifact_dir", cfg.Artifacts.Dir).
		Str("cold_start", cfg.Recommend.ColdStartStrategy).
		Int("default_top_k", cfg.Recommend.DefaultTopK).
		Msg("Starting Lookbook with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := pipeline.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		// Logged at info when the close succeeds.
		logging.Err(comps.Close()).Msg("Database closed")
	}()

	perfMon := middleware.NewPerformanceMonitor(perfWindow, slowRequestCutoff, logger)

	handler, err := api.NewHandler(comps.Engine, comps.Store, cfg, perfMon)
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, chiMw, perfMon)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Recommend.MonitorInterval > 0 {
		tree.AddDataService(services.NewCatalogMonitor(comps.Store, comps.Engine, cfg.Recommend.MonitorInterval, logger))
	} else {
		logging.Info().Msg("Catalog monitor disabled (MONITOR_INTERVAL=0)")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout, logger))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	serveErr := tree.Await(ctx, errCh)
	if serveErr != nil {
		serveErr = fmt.Errorf("supervisor tree: %w", serveErr)
	}
	cancel()
	logging.Info().Msg("Supervisor tree stopped")

	unstopped, reportErr := tree.UnstoppedServiceReport()
	if reportErr != nil {
		logging.Warn().Err(reportErr).Msg("Could not build unstopped service report")
	}
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
	}

	return serveErr
}
