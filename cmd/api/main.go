package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zkwage-settlement/config"
	httpHandler "zkwage-settlement/internal/adapter/http/handler"
	pgStorage "zkwage-settlement/internal/adapter/storage/postgres"
	redisStorage "zkwage-settlement/internal/adapter/storage/redis"
	"zkwage-settlement/internal/adapter/zk"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/internal/service"
	"zkwage-settlement/pkg/logger"
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
		Msg("Starting ZK Wage Settlement Engine")

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
	nullifierRepo := pgStorage.NewNullifierRepo(pool)
	employerRepo := pgStorage.NewEmployerRepo(pool)
	poolRepo := pgStorage.NewPoolRepo(pool)
	providerRepo := pgStorage.NewProviderRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nullifierCache := redisStorage.NewNullifierCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize the proof verifier from the groth16 verification key
	verifier, err := zk.NewGroth16Verifier(cfg.Verifier.KeyPath)
	if err != nil {
		log.Fatal().Err(err).Str("key_path", cfg.Verifier.KeyPath).Msg("Failed to load verification key")
	}
	log.Info().Str("key_path", cfg.Verifier.KeyPath).Msg("Verification key loaded")

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	commitments := zk.NewPoseidonCommitment()
	feeModel := service.NewKinkedFeeModel(cfg.Pool.BaseFeeBps, cfg.Pool.MaxFeeBps, cfg.Pool.FeeKinkBps)
	decayModel := service.NewLinearDecay(cfg.Employer.DecayPerDay)
	events := service.NewEventService(eventRepo, log)

	// Initialize business services
	authSvc := service.NewAuthService(operatorRepo, hashSvc, tokenSvc, log)
	poolSvc := service.NewPoolService(poolRepo, providerRepo, transactor, feeModel, events, cfg.Pool, log)
	employerSvc := service.NewEmployerService(employerRepo, transactor, commitments, decayModel, events, cfg.Employer, log)
	settlementSvc := service.NewSettlementService(
		nullifierRepo,
		nullifierCache,
		employerSvc,
		poolSvc,
		verifier,
		events,
		cfg.Settlement,
		cfg.Verifier.Timeout,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:       authSvc,
		SettlementSvc: settlementSvc,
		PoolSvc:       poolSvc,
		EmployerSvc:   employerSvc,
		TokenSvc:      tokenSvc,
		NullifierRepo: nullifierRepo,
		EventRepo:     eventRepo,
		VerifierFactory: func(raw []byte) (ports.ProofVerifier, error) {
			return zk.NewGroth16VerifierFromKey(raw)
		},
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
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
