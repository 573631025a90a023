package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/platform"
)

// DefaultInterval is the painter period (~30 fps).
const DefaultInterval = 33 * time.Millisecond

// Ticker advances the rainbow phase. *rainbow.Animator satisfies it.
type Ticker interface {
	Tick(speed float64)
}

// Repainter is the single "repaint now" operation both drivers feed.
type Repainter interface {
	Apply(reset bool) Report
}

// Painter repaints on a fixed period, advancing the rainbow first when any
// rule uses it. It repaints unconditionally so config edits and animation
// show up without relying on OS notifications.
type Painter struct {
	source   ConfigSource
	ticker   Ticker
	target   Repainter
	interval time.Duration
	// Kick, when set, triggers an extra repaint between ticks (config file
	// change notifications).
	Kick <-chan struct{}
}

// NewPainter creates a Painter. interval <= 0 selects DefaultInterval.
func NewPainter(source ConfigSource, ticker Ticker, target Repainter, interval time.Duration) *Painter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Painter{source: source, ticker: ticker, target: target, interval: interval}
}

// Step runs one painter iteration.
func (p *Painter) Step() Report {
	cfg := p.source.Get()
	if cfg.RainbowEnabled() {
		p.ticker.Tick(cfg.RainbowSpeed)
	}
	return p.target.Apply(false)
}

// Run steps every interval until ctx is done.
func (p *Painter) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.Step()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.Step()
		case <-p.Kick:
			p.Step()
		}
	}
}

// Listener repaints as soon as the foreground window changes. It only acts
// when rainbow mode is off; with rainbow on the painter already repaints
// every frame.
type Listener struct {
	watcher platform.ForegroundWatcher
	source  ConfigSource
	target  Repainter
	logger  *slog.Logger
}

// NewListener creates a Listener.
func NewListener(watcher platform.ForegroundWatcher, source ConfigSource, target Repainter, logger *slog.Logger) *Listener {
	return &Listener{watcher: watcher, source: source, target: target, logger: logger}
}

// OnForeground handles one foreground change notification.
func (l *Listener) OnForeground(h model.Handle) {
	if l.source.Get().RainbowEnabled() {
		return
	}
	rep := l.target.Apply(false)
	l.logger.Debug("foreground changed", "hwnd", h.String(), "painted", rep.Painted, "failed", rep.Failed)
}

// Run blocks in the OS notification loop until ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	return l.watcher.WatchForeground(ctx, l.OnForeground)
}
