//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/platform"
)

// BorderPainter implements platform.BorderPainter with DwmSetWindowAttribute.
type BorderPainter struct{}

// NewBorderPainter creates a new DWM border painter.
func NewBorderPainter() *BorderPainter {
	return &BorderPainter{}
}

func (BorderPainter) SetBorderColor(h model.Handle, c model.RGB) error {
	return setBorderAttribute(h, c.ColorRef())
}

func (BorderPainter) ResetBorder(h model.Handle) error {
	return setBorderAttribute(h, dwmwaColorDefault)
}

func setBorderAttribute(h model.Handle, colorRef uint32) error {
	hr, _, _ := procDwmSetWindowAttribute.Call(
		uintptr(h),
		dwmwaBorderColor,
		uintptr(unsafe.Pointer(&colorRef)),
		unsafe.Sizeof(colorRef),
	)
	if hr != 0 {
		return &platform.CallError{
			Op:     "DwmSetWindowAttribute",
			Handle: h,
			Err:    fmt.Errorf("HRESULT 0x%08X", uint32(hr)),
		}
	}
	return nil
}
