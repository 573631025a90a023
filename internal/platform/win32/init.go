//go:build windows

package win32

import "github.com/mj1618/cute-borders/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		if err := loadProcs(); err != nil {
			return nil, err
		}
		return &platform.Provider{
			Windows:   NewWindowLister(),
			Inspector: NewInspector(),
			Painter:   NewBorderPainter(),
			Watcher:   NewForegroundWatcher(),
		}, nil
	}
}
