package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"hero-arena"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	StorageDriver     string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"heroarena"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	APIKey         string `env:"API_KEY"`
	AdminAccountID string `env:"ADMIN_ACCOUNT_ID"`

	LeagueTablePath  string        `env:"LEAGUE_TABLE_PATH"`
	ProfileCacheSize int           `env:"PROFILE_CACHE_SIZE" envDefault:"1024"`
	ProfileCacheTTL  time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"30s"`

	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	DeadLetterPath  string        `env:"DEAD_LETTER_PATH" envDefault:"logs/deadletter.jsonl"`

	EventRetentionDays   int           `env:"EVENT_RETENTION_DAYS" envDefault:"30"`
	EventCleanupInterval time.Duration `env:"EVENT_CLEANUP_INTERVAL" envDefault:"24h"`

	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"1m"`
	WorkerCount      int           `env:"WORKER_COUNT" envDefault:"2"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load reads .env when present, parses the environment and validates the result
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UsesPostgres reports whether the configured storage driver is PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == StorageDriverPostgres
}
