package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/scheduler"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/server"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server            *server.Server
	WeeklyResetWorker *worker.WeeklyResetWorker
	Scheduler         *scheduler.Scheduler
	WorkerPool        *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Weekly reset worker (cancel pending timers)
// 3. Scheduler (stop enqueuing periodic jobs)
// 4. Worker pool (drain queued jobs)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.WeeklyResetWorker != nil {
		if err := components.WeeklyResetWorker.Shutdown(ctx); err != nil {
			slog.Error("Weekly reset worker shutdown failed", "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
		slog.Info(LogMsgWorkerPoolStopped)
	}

	slog.Info(LogMsgServerStopped)
}
