package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroArena_Go/internal/config"
	"github.com/osse101/HeroArena_Go/internal/logger"
)

// Pool is the part of the connection pool that health checks and shutdown need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions sizes the progression store's connection pool
type PoolOptions struct {
	ConnString      string
	MaxConns        int
	MaxConnIdle     time.Duration
	MaxConnLifetime time.Duration
}

// PoolOptionsFromConfig reads the DB_* settings
func PoolOptionsFromConfig(cfg *config.Config) PoolOptions {
	return PoolOptions{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdle:     cfg.DBMaxConnIdle,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	}
}

// NewPool opens a pool and pings it once. ctx bounds the dial and the ping.
func NewPool(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	pgCfg, err := pgxpool.ParseConfig(opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := opts.MaxConns
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		pgCfg.MaxConns = int32(maxConns)
	}
	pgCfg.MinConns = min(DefaultMinConnections, pgCfg.MaxConns)
	pgCfg.MaxConnLifetime = opts.MaxConnLifetime
	pgCfg.MaxConnIdleTime = opts.MaxConnIdle

	pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", pgCfg.ConnConfig.Host,
		"database", pgCfg.ConnConfig.Database,
		"max_conns", pgCfg.MaxConns)
	return pool, nil
}
