package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/badjuice/storefront/internal/cart"
	cartrepo "github.com/badjuice/storefront/internal/cart/repository"
	"github.com/badjuice/storefront/internal/catalog"
	catalogrepo "github.com/badjuice/storefront/internal/catalog/repository"
	"github.com/badjuice/storefront/internal/playback"
	"github.com/badjuice/storefront/internal/playback/audio"
	playbackdomain "github.com/badjuice/storefront/internal/playback/domain"
	"github.com/badjuice/storefront/internal/review"
	reviewrepo "github.com/badjuice/storefront/internal/review/repository"
	"github.com/badjuice/storefront/pkg/httputil"
	"github.com/badjuice/storefront/pkg/logger"
	"github.com/badjuice/storefront/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	// All stores live in memory for the process lifetime: one page
	// view, one cart, one player.
	catalogRepo := catalogrepo.NewMemoryCatalogRepository()
	reviewRepo := reviewrepo.NewMemoryReviewRepositoryWithTracing()
	cartRepo := cartrepo.NewMemoryCartRepositoryWithTracing()
	player := playbackdomain.NewPlayer(playbackdomain.DefaultTracks, audio.NewLogOutput())

	catalogHandler, err := catalog.InitializeHTTPHandler(catalogRepo, reviewRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	reviewHandler, err := review.InitializeHTTPHandler(reviewRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize review handler")
	}

	cartHandler, err := cart.InitializeHTTPHandler(cartRepo, catalogRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	playerHandler, err := playback.InitializeHTTPHandler(player)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize player handler")
	}

	router := mux.NewRouter()
	catalogHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	playerHandler.RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, httputil.Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")

	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(
		httputil.LoggingMiddleware(c.Handler(router)),
		"storefront",
	)

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
