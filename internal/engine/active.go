// Package engine decides which colour every window border gets and when to
// repaint.
package engine

import (
	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/platform"
)

// MaxOwnerDepth bounds the owner-chain walk in case the OS ever reports a
// cycle.
const MaxOwnerDepth = 32

// Classifier decides whether a window should wear its "active" colour.
//
// Comparing against the foreground window alone makes dialogs and menus of
// the active application paint as inactive and flicker, so a window also
// counts as active when its owner chain reaches the foreground window, and a
// popup menu counts as active when it belongs to the foreground process.
type Classifier struct {
	inspector platform.WindowInspector
}

// NewClassifier creates a Classifier backed by inspector.
func NewClassifier(inspector platform.WindowInspector) *Classifier {
	return &Classifier{inspector: inspector}
}

// IsActive reports whether w is, or belongs to, the foreground window fg.
func (c *Classifier) IsActive(w model.Window, fg model.Handle) bool {
	if fg == 0 {
		return false
	}
	if w.Handle == fg {
		return true
	}
	if c.ownedBy(w.Handle, fg) {
		return true
	}
	if w.IsMenu() {
		pid := w.PID
		if pid == 0 {
			pid = c.inspector.ProcessID(w.Handle)
		}
		return pid != 0 && pid == c.inspector.ProcessID(fg)
	}
	return false
}

// ownedBy walks h's owner chain looking for target. The walk stops at the
// first owner-less window, a repeated handle, or MaxOwnerDepth hops.
func (c *Classifier) ownedBy(h, target model.Handle) bool {
	seen := make(map[model.Handle]struct{}, 4)
	for depth := 0; depth < MaxOwnerDepth; depth++ {
		seen[h] = struct{}{}
		owner := c.inspector.Owner(h)
		if owner == 0 {
			return false
		}
		if owner == target {
			return true
		}
		if _, dup := seen[owner]; dup {
			return false
		}
		h = owner
	}
	return false
}
