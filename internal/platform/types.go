package platform

import (
	"fmt"

	"github.com/mj1618/cute-borders/internal/model"
)

// ListOptions controls window enumeration.
type ListOptions struct {
	All bool // Skip FilterPaintable and return every top-level window
}

// FilterPaintable keeps visible windows that are not tool windows. Native
// popup menus are tool windows too, but are kept so they can be painted and
// classified along with the application that opened them.
func FilterPaintable(windows []model.Window) []model.Window {
	out := make([]model.Window, 0, len(windows))
	for _, w := range windows {
		if !w.Visible {
			continue
		}
		if w.ToolWindow && !w.IsMenu() {
			continue
		}
		out = append(out, w)
	}
	return out
}

// CallError reports a failed OS call against a single window.
type CallError struct {
	Op     string
	Handle model.Handle
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Op, e.Handle, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }
