// Package app wires the catalog's store, service and HTTP layer together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/catalog/internal/config"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/internal/store"
	"github.com/abgdnv/catalog/internal/transport/rest"
	"github.com/abgdnv/catalog/pkg/bootstrap"
	pkgconfig "github.com/abgdnv/catalog/pkg/config"
	"github.com/abgdnv/catalog/pkg/server"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
	CORS           server.CORSOptions
	// MetricsHandler is mounted at /metrics when not nil.
	MetricsHandler http.Handler
	// Tracing wraps the router with otelhttp.
	Tracing bool
}

// NewStore opens the storage engine selected by cfg.Driver.
// The returned function releases the engine's resources.
func NewStore(ctx context.Context, cfg pkgconfig.DatabaseConfig) (store.ProductStore, func(), error) {
	switch cfg.Driver {
	case pkgconfig.DriverMemory:
		return store.NewMemoryStore(), func() {}, nil
	case pkgconfig.DriverPostgres, "":
		dbPool, err := bootstrap.NewDbPool(ctx, cfg.URL, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPgStore(dbPool), dbPool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func SetupDependencies(productStore store.ProductStore, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		ProductService: service.NewService(productStore),
		Logger:         logger,
	}
}

// SetupHttpHandler builds the router with middleware and all catalog routes.
// Used by E2E tests to run the application in-process.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	server.UseCORS(mux, deps.CORS)
	wireRoutes(mux, deps)

	if deps.Tracing {
		return otelhttp.NewHandler(mux, "catalog",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)

	if deps.MetricsHandler != nil {
		mux.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}
}

// SetupHttpServer creates and configures an HTTP server for the catalog application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	deps.CORS = server.CORSOptions{
		AllowedOrigins: cfg.HTTPServer.CORS.AllowedOrigins,
		MaxAge:         cfg.HTTPServer.CORS.MaxAge,
	}
	deps.Tracing = cfg.Telemetry.Traces.Enabled

	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
