package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/platform"
)

// fakeDesktop is an in-memory window system implementing every platform
// interface.
type fakeDesktop struct {
	mu         sync.Mutex
	windows    []model.Window
	owners     map[model.Handle]model.Handle
	pids       map[model.Handle]uint32
	gone       map[model.Handle]bool
	fail       map[model.Handle]bool
	foreground model.Handle
	listErr    error

	painted map[model.Handle]model.Paint
	calls   int

	fgEvents chan model.Handle
}

func newFakeDesktop(windows ...model.Window) *fakeDesktop {
	return &fakeDesktop{
		windows:  windows,
		owners:   map[model.Handle]model.Handle{},
		pids:     map[model.Handle]uint32{},
		gone:     map[model.Handle]bool{},
		fail:     map[model.Handle]bool{},
		painted:  map[model.Handle]model.Paint{},
		fgEvents: make(chan model.Handle, 8),
	}
}

func (d *fakeDesktop) provider() *platform.Provider {
	return &platform.Provider{Windows: d, Inspector: d, Painter: d, Watcher: d}
}

func (d *fakeDesktop) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listErr != nil {
		return nil, d.listErr
	}
	out := make([]model.Window, len(d.windows))
	copy(out, d.windows)
	if opts.All {
		return out, nil
	}
	return platform.FilterPaintable(out), nil
}

func (d *fakeDesktop) ForegroundWindow() model.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.foreground
}

func (d *fakeDesktop) Owner(h model.Handle) model.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.owners[h]
}

func (d *fakeDesktop) ProcessID(h model.Handle) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pids[h]
}

func (d *fakeDesktop) IsWindow(h model.Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.gone[h]
}

func (d *fakeDesktop) SetBorderColor(h model.Handle, c model.RGB) error {
	return d.record(h, model.Paint{Kind: model.ColorRGB, RGB: c})
}

func (d *fakeDesktop) ResetBorder(h model.Handle) error {
	return d.record(h, model.Paint{Kind: model.ColorDefault})
}

func (d *fakeDesktop) record(h model.Handle, p model.Paint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.fail[h] {
		return &platform.CallError{Op: "DwmSetWindowAttribute", Handle: h, Err: errors.New("access denied")}
	}
	d.painted[h] = p
	return nil
}

func (d *fakeDesktop) WatchForeground(ctx context.Context, fn func(model.Handle)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case h := <-d.fgEvents:
			d.mu.Lock()
			d.foreground = h
			d.mu.Unlock()
			fn(h)
		}
	}
}

func (d *fakeDesktop) paintOf(h model.Handle) (model.Paint, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.painted[h]
	return p, ok
}

func (d *fakeDesktop) resetPainted() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.painted = map[model.Handle]model.Paint{}
	d.calls = 0
}

// staticConfig is a ConfigSource that never reloads.
type staticConfig struct {
	mu  sync.Mutex
	cfg config.Config
}

func (s *staticConfig) Get() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

func (s *staticConfig) set(cfg config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

type fixedColor model.RGB

func (c fixedColor) Color() model.RGB { return model.RGB(c) }

func strPtr(s string) *string { return &s }
