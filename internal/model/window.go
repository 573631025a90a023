package model

import "fmt"

// Handle is an OS window handle. Zero means "no window".
type Handle uintptr

func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}

// MenuClass is the OS class name of native popup menus. Menus carry the
// tool-window style and have no owner, so they get special handling in both
// enumeration and active classification.
const MenuClass = "#32768"

// Window is one enumerated top-level window. It is recomputed on every pass;
// handles are never cached across passes.
type Window struct {
	Handle     Handle `yaml:"hwnd"              json:"hwnd"`
	Title      string `yaml:"title"             json:"title"`
	Class      string `yaml:"class"             json:"class"`
	PID        uint32 `yaml:"pid,omitempty"     json:"pid,omitempty"`
	Visible    bool   `yaml:"-"                 json:"-"`
	ToolWindow bool   `yaml:"tool,omitempty"    json:"tool,omitempty"`
}

// IsMenu reports whether w is a native popup menu.
func (w Window) IsMenu() bool {
	return w.Class == MenuClass
}
