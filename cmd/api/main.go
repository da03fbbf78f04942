package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaultwise/config"
	httpHandler "vaultwise/internal/adapter/http/handler"
	pgStorage "vaultwise/internal/adapter/storage/postgres"
	redisStorage "vaultwise/internal/adapter/storage/redis"
	"vaultwise/internal/adapter/token"
	"vaultwise/internal/core/ports"
	"vaultwise/internal/service"
	"vaultwise/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting VaultWise ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	splitRepo := pgStorage.NewSplitConfigRepo(pool)
	bucketRepo := pgStorage.NewBucketRepo(pool)
	metaRepo := pgStorage.NewMetaRepo(pool)
	guardRepo := pgStorage.NewGuardRepo(pool)
	goalRepo := pgStorage.NewGoalRepo(pool)
	payrollRepo := pgStorage.NewPayrollRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	opGuard := redisStorage.NewOpGuard(rdb)
	events := redisStorage.NewEventStream(rdb, "ledger:events")
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	clock := service.SystemClock{}

	// Custody transfer adapter
	custody := token.NewCustodyClient(cfg.Custody, sigSvc, &http.Client{Timeout: cfg.Custody.Timeout}, log)

	// Initialize business services
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(
		accountRepo,
		splitRepo,
		bucketRepo,
		metaRepo,
		guardRepo,
		custody,
		opGuard,
		events,
		transactor,
		clock,
		cfg.Ledger,
		log,
	)
	goalSvc := service.NewGoalService(
		goalRepo,
		bucketRepo,
		opGuard,
		events,
		transactor,
		clock,
		cfg.Ledger,
		log,
	)
	payrollSvc := service.NewPayrollService(
		payrollRepo,
		accountRepo,
		custody,
		opGuard,
		events,
		transactor,
		clock,
		cfg.Payroll,
		cfg.Ledger,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		GoalSvc:        goalSvc,
		PayrollSvc:     payrollSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		EmergencyDelay: cfg.Ledger.EmergencyDelay,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
