//go:build windows

package win32

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"unsafe"

	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/platform"
	"golang.org/x/sys/windows"
)

var errWatcherBusy = errors.New("a foreground watcher is already running")

// The WinEvent callback is a single C entry point, so the active handler
// lives in a package variable. Only one watcher may run at a time.
var (
	hookMu      sync.Mutex
	hookFn      func(model.Handle)
	hookRunning bool

	winEventCallback = windows.NewCallback(func(_, _, hwnd, _, _, _, _ uintptr) uintptr {
		hookMu.Lock()
		fn := hookFn
		hookMu.Unlock()
		if fn != nil {
			fn(model.Handle(hwnd))
		}
		return 0
	})
)

// ForegroundWatcher implements platform.ForegroundWatcher with an
// out-of-context EVENT_SYSTEM_FOREGROUND hook and its own message loop.
type ForegroundWatcher struct{}

// NewForegroundWatcher creates a new foreground watcher.
func NewForegroundWatcher() *ForegroundWatcher {
	return &ForegroundWatcher{}
}

// WatchForeground installs the hook on a locked OS thread and pumps messages
// until ctx is done.
func (ForegroundWatcher) WatchForeground(ctx context.Context, fn func(model.Handle)) error {
	hookMu.Lock()
	if hookRunning {
		hookMu.Unlock()
		return errWatcherBusy
	}
	hookRunning = true
	hookFn = fn
	hookMu.Unlock()
	defer func() {
		hookMu.Lock()
		hookRunning = false
		hookFn = nil
		hookMu.Unlock()
	}()

	// Out-of-context hooks are delivered to the installing thread's queue.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Force creation of this thread's message queue before anyone can post
	// WM_QUIT to it.
	var m msg
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, wmUser, wmUser, pmNoRemove)
	tid := windows.GetCurrentThreadId()

	hook, _, e := procSetWinEventHook.Call(
		eventSystemForeground, eventSystemForeground,
		0, winEventCallback, 0, 0,
		wineventOutOfContext|wineventSkipOwnProcess,
	)
	if hook == 0 {
		return &platform.CallError{Op: "SetWinEventHook", Err: e}
	}
	defer procUnhookWinEvent.Call(hook)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
		case <-stop:
		}
	}()

	for {
		r, _, e := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case 0:
			return nil
		case -1:
			return &platform.CallError{Op: "GetMessageW", Err: e}
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}
