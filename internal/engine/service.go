package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/platform"
	rainbowanim "github.com/mj1618/cute-borders/internal/rainbow"
	"golang.org/x/sync/errgroup"
)

// Service runs the painter, the foreground listener and the config watcher
// until its context is cancelled, then restores every border to the OS
// default so nothing customised outlives the process.
type Service struct {
	Store    *config.Store
	Applier  *Applier
	Painter  *Painter
	Listener *Listener
	Watcher  *config.Watcher // optional
	logger   *slog.Logger
}

// NewService wires the full engine from a provider and a store.
func NewService(p *platform.Provider, store *config.Store, interval time.Duration, logger *slog.Logger) *Service {
	anim := rainbowanim.New()
	applier := NewApplier(p, store, anim, logger)
	s := &Service{
		Store:   store,
		Applier: applier,
		Painter: NewPainter(store, anim, applier, interval),
		logger:  logger,
	}
	if p.Watcher != nil {
		s.Listener = NewListener(p.Watcher, store, applier, logger)
	}

	w, err := config.NewWatcher(store.Path(), 100*time.Millisecond, logger)
	if err != nil {
		logger.Warn("config file watcher disabled", "path", store.Path(), "error", err)
	} else {
		s.Watcher = w
		s.Painter.Kick = w.Changes()
	}
	return s
}

// Run blocks until ctx is done. A failing listener or watcher is logged and
// does not stop painting.
func (s *Service) Run(ctx context.Context) error {
	defer func() {
		rep := s.Applier.Apply(true)
		s.logger.Info("borders reset", "windows", rep.Windows, "failed", rep.Failed)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Painter.Run(gctx)
	})
	if s.Listener != nil {
		g.Go(func() error {
			if err := s.Listener.Run(gctx); err != nil {
				s.logger.Warn("foreground listener stopped", "error", err)
			}
			return nil
		})
	}
	if s.Watcher != nil {
		g.Go(func() error {
			if err := s.Watcher.Run(gctx); err != nil {
				s.logger.Warn("config watcher stopped", "path", s.Store.Path(), "error", err)
			}
			return nil
		})
	}

	s.logger.Info("painting borders", "config", s.Store.Path())
	return g.Wait()
}
