// Package main runs the product catalog HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/abgdnv/catalog/internal/app"
	"github.com/abgdnv/catalog/internal/config"
	"github.com/abgdnv/catalog/pkg/bootstrap"
	"github.com/abgdnv/catalog/pkg/config/configloader"
	"github.com/abgdnv/catalog/pkg/telemetry"
	"golang.org/x/sync/errgroup"
)

const serviceName = "catalog"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run loads the configuration, opens the store and serves HTTP (and pprof) until ctx is cancelled.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	if cfg.Telemetry.Traces.Enabled {
		tp, err := telemetry.NewTracerProvider(ctx, serviceName, cfg.Telemetry.Traces)
		if err != nil {
			return fmt.Errorf("failed to create tracer provider: %w", err)
		}
		defer shutdownProvider(logger, "tracer", cfg.Shutdown.Timeout, tp.Shutdown)
	}

	var metricsHandler http.Handler
	if cfg.Telemetry.Metrics.Enabled {
		mp, handler, err := telemetry.NewMeterProvider(serviceName)
		if err != nil {
			return fmt.Errorf("failed to create meter provider: %w", err)
		}
		defer shutdownProvider(logger, "meter", cfg.Shutdown.Timeout, mp.Shutdown)
		metricsHandler = handler
	}

	productStore, closeStore, err := app.NewStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
	}
	defer closeStore()
	logger.Info("Store is ready", slog.String("driver", cfg.Database.Driver))

	deps := app.SetupDependencies(productStore, logger)
	deps.MetricsHandler = metricsHandler
	httpServer := app.SetupHttpServer(deps, cfg)
	pprofServer := &http.Server{
		Addr: cfg.PProf.Addr,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Start the HTTP server
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	// gracefully shutdown HTTP server on context cancellation
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if cfg.PProf.Enabled {
		g.Go(func() error {
			logger.Info("Pprof server listening", slog.String("addr", pprofServer.Addr))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			logger.Info("Shutting down pprof server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			return pprofServer.Shutdown(shutdownCtx)
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}

// shutdownProvider flushes a telemetry provider within the shutdown timeout.
func shutdownProvider(logger *slog.Logger, name string, timeout time.Duration, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error("Failed to shut down telemetry provider", slog.String("provider", name), slog.Any("error", err))
	}
}
