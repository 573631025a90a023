package model

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorRef packs c in the Windows COLORREF layout (0x00BBGGRR).
func (c RGB) ColorRef() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ColorKind tags a ColorSpec.
type ColorKind int

const (
	// ColorNone asserts nothing: the window is left as it is.
	ColorNone ColorKind = iota
	// ColorDefault restores the OS default border.
	ColorDefault
	// ColorRGB paints a fixed colour.
	ColorRGB
	// ColorRainbow paints the animator's current colour.
	ColorRainbow
)

func (k ColorKind) String() string {
	switch k {
	case ColorNone:
		return "none"
	case ColorDefault:
		return "default"
	case ColorRGB:
		return "rgb"
	case ColorRainbow:
		return "rainbow"
	default:
		return fmt.Sprintf("ColorKind(%d)", int(k))
	}
}

// RainbowToken is the config literal that selects rainbow mode.
const RainbowToken = "rainbow"

// ColorSpec is a decoded border colour setting from the config file.
type ColorSpec struct {
	Kind ColorKind
	RGB  RGB
	// Raw keeps the original text of an undecodable value so it survives a
	// write back to disk.
	Raw string
}

// Default returns the spec that restores the OS border.
func Default() ColorSpec { return ColorSpec{Kind: ColorDefault} }

// Rainbow returns the animated spec.
func Rainbow() ColorSpec { return ColorSpec{Kind: ColorRainbow} }

// Solid returns a fixed-colour spec.
func Solid(c RGB) ColorSpec { return ColorSpec{Kind: ColorRGB, RGB: c} }

// DecodeColor turns a config string into a ColorSpec. Empty means "restore
// default"; "rainbow" (any case) selects animation; anything else must be a
// hex literal. Undecodable text yields ColorNone plus the parse error.
func DecodeColor(s string) (ColorSpec, error) {
	t := strings.TrimSpace(s)
	switch {
	case t == "":
		return Default(), nil
	case strings.EqualFold(t, RainbowToken):
		return Rainbow(), nil
	}
	c, err := ParseHex(t)
	if err != nil {
		return ColorSpec{Kind: ColorNone, Raw: s}, err
	}
	return Solid(c), nil
}

// String encodes the spec back to its config form.
func (c ColorSpec) String() string {
	switch c.Kind {
	case ColorRGB:
		return c.RGB.Hex()
	case ColorRainbow:
		return RainbowToken
	case ColorNone:
		return c.Raw
	default:
		return ""
	}
}

// Paint is the concrete instruction for one window border: nothing, the OS
// default, or a colour.
type Paint struct {
	Kind ColorKind
	RGB  RGB
}

// Resolve turns c into a Paint, substituting current for rainbow.
func (c ColorSpec) Resolve(current RGB) Paint {
	switch c.Kind {
	case ColorRGB:
		return Paint{Kind: ColorRGB, RGB: c.RGB}
	case ColorRainbow:
		return Paint{Kind: ColorRGB, RGB: current}
	case ColorDefault:
		return Paint{Kind: ColorDefault}
	default:
		return Paint{Kind: ColorNone}
	}
}

// Valid reports whether p asks for any paint at all.
func (p Paint) Valid() bool {
	return p.Kind != ColorNone
}

func (p Paint) String() string {
	switch p.Kind {
	case ColorRGB:
		return p.RGB.Hex()
	case ColorDefault:
		return "default"
	default:
		return "none"
	}
}
