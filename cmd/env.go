package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/logging"
)

// appEnv is what every command that touches the config needs: the store and
// a logger writing to the log file.
type appEnv struct {
	store  *config.Store
	logger *slog.Logger
	closer io.Closer
}

func (e *appEnv) Close() {
	_ = e.closer.Close()
}

func openEnv() (*appEnv, error) {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	logPath, _ := rootCmd.PersistentFlags().GetString("log-file")
	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	return newEnv(configPath, logPath, level)
}

// newEnv resolves default paths, opens the log and the config store.
func newEnv(configPath, logPath, level string) (*appEnv, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		if configPath, err = config.DefaultPath(); err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
	}
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}

	logger, closer := logging.Open(logPath, lvl)
	slog.SetDefault(logger)
	return &appEnv{
		store:  config.Open(configPath, logger),
		logger: logger,
		closer: closer,
	}, nil
}
