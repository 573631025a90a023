package platform

import (
	"context"

	"github.com/mj1618/cute-borders/internal/model"
)

// WindowLister enumerates top-level windows.
type WindowLister interface {
	// ListWindows returns a fresh snapshot of top-level windows in z-order.
	// Implementations apply FilterPaintable unless opts.All is set.
	ListWindows(opts ListOptions) ([]model.Window, error)
}

// WindowInspector answers point queries about live windows. Every method
// tolerates handles that have been destroyed since enumeration.
type WindowInspector interface {
	// ForegroundWindow returns the window receiving input, or 0.
	ForegroundWindow() model.Handle

	// Owner returns the owner window of h, or 0 when h has none.
	Owner(h model.Handle) model.Handle

	// ProcessID returns the id of the process that created h, or 0.
	ProcessID(h model.Handle) uint32

	// IsWindow reports whether h still identifies an existing window.
	IsWindow(h model.Handle) bool
}

// BorderPainter writes the DWM border colour attribute.
type BorderPainter interface {
	SetBorderColor(h model.Handle, c model.RGB) error

	// ResetBorder restores the OS default border colour.
	ResetBorder(h model.Handle) error
}

// ForegroundWatcher delivers foreground-window change notifications.
type ForegroundWatcher interface {
	// WatchForeground blocks, calling fn on every foreground change, until ctx
	// is done. fn runs on the watcher's own OS thread and must not block long.
	WatchForeground(ctx context.Context, fn func(model.Handle)) error
}
