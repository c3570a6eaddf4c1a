package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"debt-planner/config"
	_ "debt-planner/docs"
	httpLayer "debt-planner/http"
	"debt-planner/report"
	"debt-planner/repository"
	"debt-planner/service"
)

// @title           Debt Planner API
// @version         1.0
// @description     Debt payoff planning with avalanche and snowball strategies.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	stateStore, cacheStore, closeStores, err := openStores(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeStores()

	stateRepo := repository.NewStateRepository(stateStore, service.StateKey, service.ProfileKey)
	scheduleCache := repository.NewScheduleCache(cacheStore)

	planService := service.NewPlanService(scheduleCache, logger)
	stateService := service.NewStateService(stateRepo, logger, time.Now)
	transferService := service.NewTransferService(stateService, logger, time.Now)

	handlers := httpLayer.Handlers{
		Plan:     httpLayer.NewPlanHandler(planService, stateService, logger),
		State:    httpLayer.NewStateHandler(stateService, logger),
		Transfer: httpLayer.NewTransferHandler(transferService, logger),
		Report:   httpLayer.NewReportHandler(planService, stateService, report.NewRenderer(), logger),
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(handlers, rateLimiter, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.AppEnv),
			zap.String("store", cfg.StoreBackend),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("Error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error during server shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// openStores returns the state store, the schedule cache store and a close
// func for whatever connections were opened.
func openStores(cfg *config.Config, logger *zap.Logger) (repository.KVStore, repository.KVStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		return repository.NewMemoryStore(), newMemoryCache(cfg), func() {}, nil

	case config.BackendRedis:
		store := repository.NewRedisStore(repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, nil, err
		}
		logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
		closeFn := func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close Redis client", zap.Error(err))
			}
		}
		return store, store.WithTTL(cfg.ScheduleCacheTTL), closeFn, nil

	case config.BackendPostgres:
		db, err := repository.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		store := repository.NewPostgresStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		logger.Info("Connected to PostgreSQL")
		closeFn := func() {
			if err := db.Close(); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}
		// schedule cache stays in process
		return store, newMemoryCache(cfg), closeFn, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
}

func newMemoryCache(cfg *config.Config) *repository.MemoryStore {
	return repository.NewMemoryCache(cfg.ScheduleCacheTTL, cfg.ScheduleCacheMaxEntries)
}
