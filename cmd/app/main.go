package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/HeroArena_Go/docs"
	"github.com/osse101/HeroArena_Go/internal/auth"
	"github.com/osse101/HeroArena_Go/internal/bootstrap"
	"github.com/osse101/HeroArena_Go/internal/concurrency"
	"github.com/osse101/HeroArena_Go/internal/config"
	"github.com/osse101/HeroArena_Go/internal/eventlog"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/metrics"
	"github.com/osse101/HeroArena_Go/internal/player"
	"github.com/osse101/HeroArena_Go/internal/reward"
	"github.com/osse101/HeroArena_Go/internal/scheduler"
	"github.com/osse101/HeroArena_Go/internal/server"
	"github.com/osse101/HeroArena_Go/internal/sse"
	"github.com/osse101/HeroArena_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	jobQueueSize    = 16

	jobLeagueSnapshot = "league-snapshot"
	jobEventCleanup   = "event-log-cleanup"
)

// @title HeroArena API
// @version 1.0
// @description Player progression, league tiers, crates and hero NFTs for the arena.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	table, err := league.LoadTable(cfg.LeagueTablePath)
	if err != nil {
		storage.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}
	bootstrap.RegisterEventHandlers(bus)

	stream := sse.NewHub()
	stream.Start()
	sse.NewSubscriber(stream, bus).Subscribe()

	history := eventlog.NewService(storage.EventLog)
	if err := history.Subscribe(bus); err != nil {
		storage.Close()
		return err
	}

	// Shared so the engine and the ledger serialize the same accounts
	locks := concurrency.NewLockManager()
	players := player.NewService(storage.Progression, table, locks, publisher, player.CacheConfig{
		Size: cfg.ProfileCacheSize,
		TTL:  cfg.ProfileCacheTTL,
	})
	rewards := reward.NewService(storage.Progression, locks, publisher, players)

	pool := worker.NewPool(cfg.WorkerCount, jobQueueSize)
	pool.Start()
	snapshot := player.NewLeagueSnapshotJob(players, metrics.LeagueGauge{})
	sched := scheduler.New(pool)
	sched.Schedule(jobLeagueSnapshot, cfg.SnapshotInterval, snapshot)
	sched.Schedule(jobEventCleanup, cfg.EventCleanupInterval, eventlog.NewCleanupJob(history, cfg.EventRetentionDays))

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}, server.Services{
		Storage:  storage.Progression,
		Players:  players,
		Rewards:  rewards,
		Guard:    auth.NewGuard(cfg.AdminAccountID),
		History:  history,
		Snapshot: snapshot,
		Stream:   stream,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case runErr = <-serverErr:
		slog.Error("Server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Stream:             stream,
		Scheduler:          sched,
		Pool:               pool,
		ResilientPublisher: publisher,
		Storage:            storage,
	})

	return runErr
}
