package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dictko/internal/config"
	"dictko/internal/dictionary"
	"dictko/internal/handler"
	"dictko/internal/metrics"
	"dictko/internal/repository/postgres"
	"dictko/internal/service"
	"dictko/internal/session"
	"dictko/internal/speech"
	"dictko/internal/translation"

	"github.com/avast/retry-go"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	connectAttempts = 30
	connectDelay    = 2 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting dictko", zap.String("addr", cfg.Addr()))

	if cfg.SessionSecret == config.DefaultSessionSecret {
		logger.Warn("SESSION_SECRET is not set, using the development default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Persistence is optional
	var db *sql.DB
	if cfg.PersistenceEnabled() {
		db, err = connectDatabase(ctx, cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connection established")

		if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	} else {
		logger.Info("No database configured, search history and favorites are disabled")
	}

	// Upstream clients
	dict := dictionary.NewClient(cfg.Dictionary.URL, cfg.Dictionary.Timeout, m, logger)

	translator := translation.NewAdapter(newTranslationBackend(cfg), translation.Options{
		Timeout: cfg.Translation.Timeout,
		Delay:   cfg.Translation.Delay,
	}, m, logger)

	provider, err := speech.NewProvider(&speech.Config{
		Provider:    cfg.Speech.Provider,
		GoogleURL:   cfg.Speech.URL,
		OpenAIKey:   cfg.OpenAIAPIKey,
		OpenAIModel: "tts-1",
		OpenAIVoice: "alloy",
	})
	if err != nil {
		logger.Fatal("Failed to create speech provider", zap.Error(err))
	}
	synthesizer := speech.NewSynthesizer(provider, cfg.Speech.Timeout, "", m, logger)

	logger.Info("Upstream clients initialized",
		zap.String("translation", cfg.Translation.Provider),
		zap.String("speech", provider.Name()),
	)

	// Initialize services
	lookupService, favoriteService, historyService := newServices(db, dict, translator, cfg, logger)
	pronunciationService := service.NewPronunciationService(synthesizer, logger)

	// Initialize handler
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("Invalid TRUSTED_PROXIES", zap.Error(err))
	}

	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}
	h := handler.NewHandler(
		lookupService,
		favoriteService,
		historyService,
		pronunciationService,
		session.NewFlasher(cfg.SessionSecret, false),
		pinger,
		logger,
	)
	h.RegisterRoutes(router, m)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newTranslationBackend returns nil when translation is disabled
func newTranslationBackend(cfg *config.Config) translation.Backend {
	switch cfg.Translation.Provider {
	case config.ProviderOpenAI:
		return translation.NewOpenAIBackend(cfg.OpenAIAPIKey, "")
	case config.ProviderNone:
		return nil
	default:
		return translation.NewMyMemoryBackend(cfg.Translation.URL, cfg.Translation.Email)
	}
}

// newServices wires repositories into services. A nil db leaves them without storage.
func newServices(
	db *sql.DB,
	dict service.Dictionary,
	translator service.Translator,
	cfg *config.Config,
	logger *zap.Logger,
) (*service.LookupService, *service.FavoriteService, *service.HistoryService) {
	if db == nil {
		return service.NewLookupService(nil, dict, translator, cfg.Translation.MaxPerGroup, logger),
			service.NewFavoriteService(nil, dict, translator, logger),
			service.NewHistoryService(nil)
	}

	historyRepo := postgres.NewHistoryRepo(db)
	favoriteRepo := postgres.NewFavoriteRepo(db)

	return service.NewLookupService(historyRepo, dict, translator, cfg.Translation.MaxPerGroup, logger),
		service.NewFavoriteService(favoriteRepo, dict, translator, logger),
		service.NewHistoryService(historyRepo)
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.Delay(connectDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("Failed to ping database",
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, source string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}
