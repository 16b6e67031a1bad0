package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"card-advisor/internal/config"
	"card-advisor/internal/database"
	"card-advisor/internal/handlers"
	"card-advisor/internal/middleware"
	"card-advisor/internal/models"
	"card-advisor/internal/repositories"
	"card-advisor/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", slog.String("reason", err.Error()))
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	cardRepo := repositories.NewCardRepository(db.DB)
	if cfg.Cache.Enabled {
		cardRepo, err = repositories.NewCachedCardRepository(cardRepo, repositories.CacheSettings{
			TTL:         cfg.Cache.CatalogTTL,
			NumCounters: cfg.Cache.NumCounters,
			MaxCost:     cfg.Cache.MaxCost,
			BufferItems: cfg.Cache.BufferItems,
		})
		if err != nil {
			return err
		}
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	recLogger := services.NewRecommendationLogger(logger)

	breaker := services.NewObservedCircuitBreaker(services.DefaultCircuitBreakerConfig(),
		func(from, to models.CircuitBreakerState) {
			recLogger.LogCircuitBreakerStateChange(context.Background(), services.CatalogServiceName, from.String(), to.String())
			metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": services.CatalogServiceName})
		})

	catalog := services.NewCatalogService(cardRepo, breaker, metrics, recLogger)
	recommender := services.NewRecommendationService(catalog, metrics, recLogger, cfg.Recommendation.MaxGroupSize)

	e, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)
	e.Use(limiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterRoutes(e, handlers.Handlers{
		Health:         handlers.NewHealthCheckHandler(db, breaker),
		Recommendation: handlers.NewRecommendationHandler(recommender, recLogger),
		Catalog:        handlers.NewCatalogHandler(catalog, recLogger),
		FormSchema:     handlers.NewFormSchemaHandler(services.NewFormSchemaService()),
	})

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("address", server.Addr),
			slog.String("environment", cfg.Server.Environment),
		)
		if err := e.StartServer(server); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

// newServer configures echo with the error handler and the middleware chain.
// Routes are registered by the caller.
func newServer(cfg *config.Config, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()

	extractor, err := middleware.IPExtractor(cfg.Security.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("failed to configure client IP extraction: %w", err)
	}
	e.IPExtractor = extractor

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Security.MaxBodySize))
	e.Use(echomw.ContextTimeout(cfg.Recommendation.CatalogLoadTimeout))

	return e, nil
}
