package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the parsed configuration for values the service cannot run with
func (c *Config) Validate() error {
	var problems []string

	if c.APIKey == "" {
		problems = append(problems, "API_KEY must be set for security")
	}
	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT out of range: %d", c.Port))
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be text or json (got %q)", c.LogFormat))
	}
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
			problems = append(problems, "DB_HOST, DB_NAME and DB_USER are required for the postgres driver")
		}
		if c.DBMaxConns <= 0 {
			problems = append(problems, "DB_MAX_CONNS must be positive")
		}
	case StorageDriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_DRIVER must be postgres or memory (got %q)", c.StorageDriver))
	}
	if c.ProfileCacheSize <= 0 {
		problems = append(problems, "PROFILE_CACHE_SIZE must be positive")
	}
	if c.EventMaxRetries < 0 {
		problems = append(problems, "EVENT_MAX_RETRIES must not be negative")
	}
	if c.EventRetentionDays <= 0 {
		problems = append(problems, "EVENT_RETENTION_DAYS must be positive")
	}
	if c.EventCleanupInterval <= 0 {
		problems = append(problems, "EVENT_CLEANUP_INTERVAL must be positive")
	}
	if c.SnapshotInterval <= 0 {
		problems = append(problems, "SNAPSHOT_INTERVAL must be positive")
	}
	if c.WorkerCount <= 0 {
		problems = append(problems, "WORKER_COUNT must be positive")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal issues such as example secrets or a missing admin account
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.AdminAccountID == "" {
		warnings = append(warnings, "ADMIN_ACCOUNT_ID is not set - admin routes will reject every caller")
	}
	if c.Environment == EnvironmentProduction && c.StorageDriver == StorageDriverMemory {
		warnings = append(warnings, "STORAGE_DRIVER=memory in production - state is lost on restart")
	}

	return warnings
}
