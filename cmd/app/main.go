package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/activity"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/aggregation"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/bootstrap"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/challenge"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/config"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/database"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/database/postgres"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/scheduler"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/server"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/user"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/worker"
)

const (
	// ShutdownTimeout is the maximum time allowed for graceful shutdown
	ShutdownTimeout = 10 * time.Second

	// WorkerPoolSize is the number of background workers
	WorkerPoolSize = 2

	// WorkerQueueSize is the capacity of the background job queue
	WorkerQueueSize = 16
)

func main() {
	// Load configuration (reads .env if present)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Validate environment, surfacing non-fatal warnings
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn("Environment warning", "warning", warning)
	}

	// Setup logging (stdout + rotating session files)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Connect to the database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Seed the region directory and starter challenges (idempotent)
	if err := postgres.SeedRegions(context.Background(), dbPool); err != nil {
		slog.Error("Region seeding failed", "error", err)
		os.Exit(1)
	}
	if err := postgres.SeedChallenges(context.Background(), dbPool); err != nil {
		slog.Error("Challenge seeding failed", "error", err)
		os.Exit(1)
	}

	// Initialize repositories and services
	repos := bootstrap.InitializeRepositories(dbPool)

	aggregationService := aggregation.NewService(repos.User, repos.Region, repos.Activity, repos.Aggregates)
	activityService := activity.NewService(repos.User, repos.Activity, aggregationService)
	userService := user.NewService(repos.User)
	challengeService := challenge.NewService(repos.Challenge, repos.Activity, repos.User)

	// Start background workers
	workerPool := worker.NewPool(WorkerPoolSize, WorkerQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(worker.DefaultRecomputeInterval, worker.NewRecomputeJob(aggregationService))

	weeklyResetWorker := worker.NewWeeklyResetWorker(aggregationService)
	weeklyResetWorker.Start()

	// Create and start the HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, userService, activityService, aggregationService, challengeService, repos.Region)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	// Wait for interrupt or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:            srv,
		WeeklyResetWorker: weeklyResetWorker,
		Scheduler:         sched,
		WorkerPool:        workerPool,
	})
}
