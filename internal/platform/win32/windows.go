//go:build windows

package win32

import (
	"sync"
	"unsafe"

	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/platform"
	"golang.org/x/sys/windows"
)

// EnumWindows needs a C callback; windows.NewCallback slots are never freed,
// so there is exactly one, and it appends into enumHandles under enumMu.
var (
	enumMu       sync.Mutex
	enumHandles  []model.Handle
	enumCallback = windows.NewCallback(func(hwnd, _ uintptr) uintptr {
		enumHandles = append(enumHandles, model.Handle(hwnd))
		return 1
	})
)

// WindowLister implements platform.WindowLister with EnumWindows.
type WindowLister struct{}

// NewWindowLister creates a new Windows window lister.
func NewWindowLister() *WindowLister {
	return &WindowLister{}
}

// ListWindows enumerates top-level windows and describes each one. Windows
// that vanish while being described are dropped.
func (l *WindowLister) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	handles, err := enumTopLevel()
	if err != nil {
		return nil, err
	}

	out := make([]model.Window, 0, len(handles))
	for _, h := range handles {
		if !isWindow(h) {
			continue
		}
		out = append(out, describe(h))
	}
	if opts.All {
		return out, nil
	}
	return platform.FilterPaintable(out), nil
}

func enumTopLevel() ([]model.Handle, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = enumHandles[:0]
	r, _, e := procEnumWindows.Call(enumCallback, 0)
	if r == 0 {
		return nil, &platform.CallError{Op: "EnumWindows", Err: e}
	}
	out := make([]model.Handle, len(enumHandles))
	copy(out, enumHandles)
	return out, nil
}

func describe(h model.Handle) model.Window {
	exStyle, _, _ := procGetWindowLongW.Call(uintptr(h), gwlExStyle)
	visible, _, _ := procIsWindowVisible.Call(uintptr(h))
	return model.Window{
		Handle:     h,
		Title:      windowText(h),
		Class:      className(h),
		PID:        processID(h),
		Visible:    visible != 0,
		ToolWindow: uint32(exStyle)&wsExToolWindow != 0,
	}
}

func windowText(h model.Handle) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	copied, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:copied])
}

func className(h model.Handle) string {
	buf := make([]uint16, maxClassName)
	copied, _, _ := procGetClassNameW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:copied])
}

func processID(h model.Handle) uint32 {
	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	return pid
}

func isWindow(h model.Handle) bool {
	r, _, _ := procIsWindow.Call(uintptr(h))
	return r != 0
}

// Inspector implements platform.WindowInspector.
type Inspector struct{}

// NewInspector creates a new Windows window inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

func (Inspector) ForegroundWindow() model.Handle {
	r, _, _ := procGetForegroundWindow.Call()
	return model.Handle(r)
}

func (Inspector) Owner(h model.Handle) model.Handle {
	r, _, _ := procGetWindow.Call(uintptr(h), gwOwner)
	return model.Handle(r)
}

func (Inspector) ProcessID(h model.Handle) uint32 {
	return processID(h)
}

func (Inspector) IsWindow(h model.Handle) bool {
	return isWindow(h)
}
