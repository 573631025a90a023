package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	appDirName     = "cute-borders"
	configFileName = "config.yaml"
	logFileName    = "cute-borders.log"
)

// Dir returns the per-user directory holding the config and log files.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultLogPath returns the log file path next to the config file.
func DefaultLogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// Store owns the in-memory config snapshot and the modification time of the
// file it was read from. One mutex orders every reload and write, so a reader
// never sees a half-applied config and a staleness check reloads at most once.
type Store struct {
	path   string
	logger *slog.Logger

	mu      sync.Mutex
	cfg     Config
	modTime time.Time // zero when the file has never been stat'ed
}

// Open builds a store for path and loads the first snapshot. Missing or
// malformed files fall back to Default, so Open itself never fails.
func Open(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger}
	s.mu.Lock()
	s.reloadLocked()
	s.mu.Unlock()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the current snapshot, first reloading if the file's
// modification time has moved past the last observed one.
func (s *Store) Get() Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	if info, err := os.Stat(s.path); err == nil {
		if s.modTime.IsZero() || info.ModTime().After(s.modTime) {
			s.logger.Info("config file changed, reloading", "path", s.path)
			s.reloadLocked()
		}
	}
	return s.cfg.Clone()
}

// ReadForGUI reloads unconditionally. The settings editor uses it so that
// external edits are never hidden behind a cached snapshot.
func (s *Store) ReadForGUI() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked()
	return s.cfg.Clone()
}

// Write persists cfg and then swaps it in as the current snapshot. On any
// failure the snapshot is left unchanged.
func (s *Store) Write(cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return &IoError{Path: s.path, Op: "encode", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.path, data); err != nil {
		return &IoError{Path: s.path, Op: "write", Err: err}
	}
	s.cfg = cfg.Clone()
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	} else {
		s.modTime = time.Now()
	}
	return nil
}

// reloadLocked replaces the snapshot from disk. Caller holds s.mu.
func (s *Store) reloadLocked() {
	cfg, err := s.readFile()
	switch {
	case err == nil:
		for _, w := range cfg.Warnings() {
			s.logger.Warn("config warning", "path", s.path, "warning", w)
		}
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("config file not found, creating default", "path", s.path)
		cfg = Default()
		if data, encErr := Encode(cfg); encErr != nil {
			s.logger.Error("failed to encode default config", "path", s.path, "error", encErr)
		} else if werr := writeFileAtomic(s.path, data); werr != nil {
			s.logger.Error("failed to write default config", "path", s.path, "op", "write", "error", werr)
		}
	default:
		// Malformed or unreadable: never overwrite what the user has on disk.
		s.logger.Error("failed to load config, using defaults", "path", s.path, "error", err)
		cfg = Default()
	}

	s.cfg = cfg
	s.modTime = time.Time{}
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}
}

func (s *Store) readFile() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		return Config{}, &IoError{Path: s.path, Op: "read", Err: err}
	}
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, &ParseError{Path: s.path, Err: err}
	}
	return cfg, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()
	ok := false
	defer func() {
		if !ok {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync data to disk: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	ok = true
	return nil
}
