//go:build windows

package win32

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsWindow                 = user32.NewProc("IsWindow")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procSetWinEventHook          = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent           = user32.NewProc("UnhookWinEvent")
	procGetMessageW              = user32.NewProc("GetMessageW")
	procPeekMessageW             = user32.NewProc("PeekMessageW")
	procTranslateMessage         = user32.NewProc("TranslateMessage")
	procDispatchMessageW         = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW       = user32.NewProc("PostThreadMessageW")

	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	// GWL_EXSTYLE (-20) as an unsigned word.
	gwlExStyle = ^uintptr(19)

	wsExToolWindow = 0x00000080
	gwOwner        = 4

	// DWMWA_BORDER_COLOR; requires Windows 11 build 22000.
	dwmwaBorderColor = 34
	// DWMWA_COLOR_DEFAULT restores the system border.
	dwmwaColorDefault = 0xFFFFFFFF

	eventSystemForeground  = 0x0003
	wineventOutOfContext   = 0x0000
	wineventSkipOwnProcess = 0x0002

	wmQuit     = 0x0012
	wmUser     = 0x0400
	pmNoRemove = 0x0000

	maxClassName = 256
)

// point and msg mirror POINT and MSG from winuser.h.
type point struct {
	X, Y int32
}

type msg struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

// loadProcs resolves every entry point up front so a missing export (for
// example on an old Windows build) fails provider construction instead of
// panicking inside the painter loop.
func loadProcs() error {
	for _, p := range []*windows.LazyProc{
		procEnumWindows, procGetWindowTextLengthW, procGetWindowTextW,
		procGetClassNameW, procGetWindowLongW, procIsWindowVisible, procIsWindow,
		procGetWindow, procGetForegroundWindow, procGetWindowThreadProcessId,
		procSetWinEventHook, procUnhookWinEvent, procGetMessageW, procPeekMessageW,
		procTranslateMessage, procDispatchMessageW, procPostThreadMessageW,
		procDwmSetWindowAttribute,
	} {
		if err := p.Find(); err != nil {
			return fmt.Errorf("failed to load %s: %w", p.Name, err)
		}
	}
	return nil
}
