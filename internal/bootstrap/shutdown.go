package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CafeRush_Go/internal/scheduler"
	"github.com/osse101/CafeRush_Go/internal/server"
	"github.com/osse101/CafeRush_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
}

// GracefulShutdown stops the application components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop producing tick and spawn jobs)
// 3. Worker pool (drain in-flight jobs)
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
