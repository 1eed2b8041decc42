// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tomtom215/tunepicker/internal/api"
	"github.com/tomtom215/tunepicker/internal/catalog"
	"github.com/tomtom215/tunepicker/internal/config"
	"github.com/tomtom215/tunepicker/internal/logging"
	"github.com/tomtom215/tunepicker/internal/recommend"
	"github.com/tomtom215/tunepicker/internal/supervisor"
	"github.com/tomtom215/tunepicker/internal/supervisor/services"
)

const (
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int("max_count", cfg.Recommend.MaxCount).
		Msg("Starting Tunepicker with supervisor tree")

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	logging.Info().
		Int("songs", cat.Len()).
		Strs("genres", cat.Genres()).
		Msg("Catalog loaded")

	selector := recommend.NewSelector(cat, logging.WithComponent("recommend"))

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin in production; set CORS_ORIGINS to restrict it")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled (DISABLE_RATE_LIMIT=true)")
	}

	server := newHTTPServer(cfg, api.NewRouter(cfg, selector).SetupChi())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog expects slog; the adapter writes through zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout, logging.WithComponent("http-server")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	if err := waitForSupervisor(ctx, errCh); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// waitForSupervisor blocks until the tree stops and returns its result.
// ServeBackground delivers exactly one value and never closes the channel,
// so it is received once on either path.
func waitForSupervisor(ctx context.Context, errCh <-chan error) error {
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		return <-errCh
	}
}

// loadCatalog reads cfg.Path when set and falls back to the built-in catalog.
func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}
}
