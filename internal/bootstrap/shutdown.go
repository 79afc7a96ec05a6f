package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/scheduler"
	"github.com/osse101/HeroArena_Go/internal/server"
	"github.com/osse101/HeroArena_Go/internal/sse"
	"github.com/osse101/HeroArena_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Stream             *sse.Hub
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. Event stream, then HTTP server (open streams would otherwise hold Shutdown)
// 2. Scheduler and worker pool (finish running jobs)
// 3. Event publisher (flush pending retries)
// 4. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Stream != nil {
		components.Stream.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownScheduler)
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
