package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-converter/internal/config"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/migrations"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/sbilibin2017/gw-currency-converter/internal/throttle"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	serviceName     = "gw-currency-converter"
	shutdownTimeout = 10 * time.Second
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Microservice for currency conversion with a persistent conversion ledger
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newKafkaWriter builds the conversion event writer. Events are written one at
// a time, so a partial batch is flushed after cfg.BatchTimeout.
func newKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// run wires storage, the rate provider, services and the HTTP server,
// then serves until ctx is done or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, "service", serviceName, "version", buildVersion); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Redis; an unreachable cache degrades to provider fetches.
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("redis is unavailable, rates will not be cached", "addr", cfg.Redis.Addr(), "error", err)
	}

	// Kafka is optional.
	var events services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kw := newKafkaWriter(cfg.Kafka)
		defer kw.Close()
		events = kw
		logger.Log.Infow("publishing conversion events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	m := metrics.New()

	// Rate provider
	fixer := facades.NewFixerFacade(
		cfg.Fixer.BaseURL,
		cfg.Fixer.APIKey,
		facades.NewHTTPClient(cfg.Fixer.ConnectTimeout, cfg.Fixer.ReadTimeout),
		throttle.New(cfg.Fixer.ThrottleInterval, cfg.Fixer.ThrottleBurst),
		m,
	)

	// Repositories
	rateCacheRepo := repositories.NewExchangeRateCacheRepository(rdb, repositories.DefaultRatesKey)
	conversionWriteRepo := repositories.NewConversionWriteRepository(db)
	conversionReadRepo := repositories.NewConversionReadRepository(db)
	currencyRepo := repositories.NewCurrencyRepository(db)

	var policy validation.CurrencyPolicy = validation.FormatPolicy{}
	if cfg.Currency.Strict {
		policy = validation.NewCatalogPolicy(currencyRepo)
	}
	normalizer := validation.NewNormalizer(policy)

	// Services
	rateService := services.NewRateService(rateCacheRepo, fixer, cfg.Redis.RatesTTL, m)
	ledger := services.NewLedgerWriter(conversionWriteRepo, events)
	conversionService := services.NewConversionService(normalizer, rateService, ledger, conversionReadRepo, m)
	bulkService := services.NewBulkService(normalizer, rateService, ledger, m)

	if cfg.Currency.Bootstrap {
		services.NewCurrencyBootstrapper(fixer, currencyRepo).Initialize(ctx)
	}

	r := handlers.NewRouter(handlers.RouterDeps{
		Rates:     conversionService,
		Converter: conversionService,
		History:   conversionService,
		Bulk:      bulkService,
		Metrics:   m.Handler(),
		Middleware: []func(http.Handler) http.Handler{
			middlewares.LoggingMiddleware(m),
		},
		APIMiddleware: []func(http.Handler) http.Handler{
			middlewares.RateLimitMiddleware(middlewares.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Period)),
		},
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
