package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/HeroArena_Go/internal/config"
	"github.com/osse101/HeroArena_Go/internal/logger"
)

// SetupLogger installs the process logger from config.
// With LOG_DIR set, output is also written to a timestamped session file that the caller must close.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	addSource := cfg.Environment == config.EnvironmentDev
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), out)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStarting, "environment", cfg.Environment, "version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"storage_driver", cfg.StorageDriver,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that keep-1 remain before a new one is opened
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	// Timestamped names sort chronologically
	sort.Strings(names)

	excess := len(names) - (keep - 1)
	for i := 0; i < excess; i++ {
		if err := os.Remove(filepath.Join(logDir, names[i])); err != nil {
			fmt.Fprintf(os.Stderr, "failed to delete old log file %s: %v\n", names[i], err)
		}
	}
}
