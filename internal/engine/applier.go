package engine

import (
	"log/slog"

	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/platform"
	"github.com/mj1618/cute-borders/internal/rules"
)

// ConfigSource supplies the current config snapshot. *config.Store
// satisfies it.
type ConfigSource interface {
	Get() config.Config
}

// ColorSource supplies the current rainbow colour. *rainbow.Animator
// satisfies it. A nil ColorSource means nothing animates in this process:
// rainbow slots resolve to no paint and those windows are left to the
// running painter.
type ColorSource interface {
	Color() model.RGB
}

// Decision is the outcome for one window in one pass.
type Decision struct {
	Window     model.Window
	Active     bool
	Resolution rules.Resolution
	Paint      model.Paint
}

// Report summarises one Apply pass.
type Report struct {
	Windows int
	Painted int
	Skipped int // no colour asserted, or the window disappeared
	Failed  int
}

// Applier pushes resolved colours to every window. It is safe to call Apply
// from several goroutines: it only reads the config snapshot and every call
// is idempotent.
type Applier struct {
	lister     platform.WindowLister
	inspector  platform.WindowInspector
	painter    platform.BorderPainter
	source     ConfigSource
	colors     ColorSource
	classifier *Classifier
	logger     *slog.Logger
}

// NewApplier wires an Applier.
func NewApplier(p *platform.Provider, source ConfigSource, colors ColorSource, logger *slog.Logger) *Applier {
	return &Applier{
		lister:     p.Windows,
		inspector:  p.Inspector,
		painter:    p.Painter,
		source:     source,
		colors:     colors,
		classifier: NewClassifier(p.Inspector),
		logger:     logger,
	}
}

// Plan enumerates windows and decides the paint for each without touching
// them.
func (a *Applier) Plan() ([]Decision, error) {
	windows, err := a.lister.ListWindows(platform.ListOptions{})
	if err != nil {
		return nil, err
	}
	cfg := a.source.Get()
	fg := a.inspector.ForegroundWindow()
	var current model.RGB
	if a.colors != nil {
		current = a.colors.Color()
	}

	decisions := make([]Decision, 0, len(windows))
	for _, w := range windows {
		res := rules.Resolve(w.Title, w.Class, cfg.WindowRules, a.logger)
		active := a.classifier.IsActive(w, fg)
		spec := res.Inactive
		if active {
			spec = res.Active
		}
		paint := spec.Resolve(current)
		if spec.Kind == model.ColorRainbow && a.colors == nil {
			paint = model.Paint{Kind: model.ColorNone}
		}
		decisions = append(decisions, Decision{
			Window:     w,
			Active:     active,
			Resolution: res,
			Paint:      paint,
		})
	}
	return decisions, nil
}

// Apply repaints every window. With reset set, every window is returned to
// the OS default border instead. A failure on one window is logged and the
// rest of the batch continues.
func (a *Applier) Apply(reset bool) Report {
	var decisions []Decision
	if reset {
		windows, err := a.lister.ListWindows(platform.ListOptions{})
		if err != nil {
			a.logger.Warn("failed to enumerate windows", "op", "reset", "error", err)
			return Report{}
		}
		decisions = make([]Decision, len(windows))
		for i, w := range windows {
			decisions[i] = Decision{Window: w, Paint: model.Paint{Kind: model.ColorDefault}}
		}
	} else {
		var err error
		decisions, err = a.Plan()
		if err != nil {
			a.logger.Warn("failed to enumerate windows", "op", "apply", "error", err)
			return Report{}
		}
	}

	rep := Report{Windows: len(decisions)}
	for _, d := range decisions {
		if !d.Paint.Valid() || !a.inspector.IsWindow(d.Window.Handle) {
			rep.Skipped++
			continue
		}
		if err := a.paint(d.Window.Handle, d.Paint); err != nil {
			rep.Failed++
			a.logger.Debug("paint failed", "hwnd", d.Window.Handle.String(), "title", d.Window.Title, "class", d.Window.Class, "error", err)
			continue
		}
		rep.Painted++
	}
	return rep
}

func (a *Applier) paint(h model.Handle, p model.Paint) error {
	if p.Kind == model.ColorDefault {
		return a.painter.ResetBorder(h)
	}
	return a.painter.SetBorderColor(h, p.RGB)
}
