package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/HeroArena_Go/internal/config"
	"github.com/osse101/HeroArena_Go/internal/database"
	"github.com/osse101/HeroArena_Go/internal/database/memory"
	"github.com/osse101/HeroArena_Go/internal/database/postgres"
	"github.com/osse101/HeroArena_Go/internal/eventlog"
	"github.com/osse101/HeroArena_Go/internal/repository"
)

// Storage bundles the repositories for the configured driver
type Storage struct {
	Progression repository.Progression
	EventLog    eventlog.Repository
	close       func()
}

// Close releases the underlying connections; safe on a nil closer
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// InitializeStorage opens the configured backend. PostgreSQL is migrated to the latest schema first.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		slog.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver)
		return &Storage{
			Progression: memory.NewStore(),
			EventLog:    memory.NewEventLog(),
		}, nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, database.PoolOptionsFromConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}

		slog.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver, "host", cfg.DBHost, "database", cfg.DBName)
		return &Storage{
			Progression: postgres.NewProgressionRepository(pool),
			EventLog:    postgres.NewEventLogRepository(pool),
			close:       pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
}
