// Package win32 provides Windows platform support using user32 and dwmapi.
// On other operating systems the package compiles as a no-op and
// platform.NewProvider returns platform.ErrUnsupported.
package win32
