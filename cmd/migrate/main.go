package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/HeroArena_Go/internal/config"
	"github.com/osse101/HeroArena_Go/internal/database"
	"github.com/osse101/HeroArena_Go/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	if !cfg.UsesPostgres() {
		fmt.Fprintf(os.Stderr, "migrations need STORAGE_DRIVER=%s (got %q)\n", config.StorageDriverPostgres, cfg.StorageDriver)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, database.PoolOptionsFromConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	switch os.Args[1] {
	case "up":
		err = database.Migrate(ctx, pool)
	case "down":
		err = database.MigrateDown(ctx, pool)
	case "status":
		err = database.MigrationStatus(ctx, pool)
	default:
		printUsage()
		pool.Close()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", os.Args[1], err)
		pool.Close()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println("Commands:")
	fmt.Println("  up      Apply all pending migrations")
	fmt.Println("  down    Roll back the most recent migration")
	fmt.Println("  status  Show applied state of every migration")
}
