// Package settings is the model behind the settings editor: a flat form over
// the first Global rule and the animation speed.
package settings

import (
	"fmt"
	"strings"

	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/model"
)

const (
	DefaultActiveHex   = "#c6a0f6"
	DefaultInactiveHex = "#444444"

	MinSpeed = 0.1
	MaxSpeed = 10.0
)

// Store is the part of config.Store the editor needs.
type Store interface {
	ReadForGUI() config.Config
	Write(config.Config) error
}

// Form is the editable view of the baseline colours.
type Form struct {
	Rainbow          bool    `yaml:"rainbow"           json:"rainbow"`
	RainbowSpeed     float64 `yaml:"rainbow_speed"     json:"rainbow_speed"`
	ActiveHex        string  `yaml:"active_color"      json:"active_color"`
	InactiveDisabled bool    `yaml:"inactive_disabled" json:"inactive_disabled"`
	InactiveHex      string  `yaml:"inactive_color"    json:"inactive_color"`
	HideTrayIcon     bool    `yaml:"hide_tray_icon"    json:"hide_tray_icon"`
}

// FromConfig derives the form from the first Global rule of cfg. The speed is
// clamped into the editor range.
func FromConfig(cfg config.Config) Form {
	f := Form{
		RainbowSpeed: ClampSpeed(cfg.RainbowSpeed),
		ActiveHex:    DefaultActiveHex,
		InactiveHex:  DefaultInactiveHex,
		HideTrayIcon: cfg.HideTrayIcon,
	}
	rule, ok := firstGlobal(cfg.WindowRules)
	if !ok {
		return f
	}
	switch rule.Active.Kind {
	case model.ColorRainbow:
		f.Rainbow = true
	case model.ColorRGB:
		f.ActiveHex = rule.Active.RGB.Hex()
	}
	switch rule.Inactive.Kind {
	case model.ColorDefault:
		f.InactiveDisabled = true
	case model.ColorRGB:
		f.InactiveHex = rule.Inactive.RGB.Hex()
	}
	return f
}

// Load reads the config fresh from disk and derives the form.
func Load(s Store) Form {
	return FromConfig(s.ReadForGUI())
}

// Validate checks the hex fields that will be written and the speed range.
func (f Form) Validate() error {
	if !f.Rainbow {
		if _, err := model.ParseHex(f.ActiveHex); err != nil {
			return fmt.Errorf("active colour: %w", err)
		}
	}
	if !f.InactiveDisabled {
		if _, err := model.ParseHex(f.InactiveHex); err != nil {
			return fmt.Errorf("inactive colour: %w", err)
		}
	}
	if f.RainbowSpeed < MinSpeed || f.RainbowSpeed > MaxSpeed {
		return fmt.Errorf("rainbow speed %.2f out of range [%.1f, %.1f]", f.RainbowSpeed, MinSpeed, MaxSpeed)
	}
	return nil
}

// Apply writes the form into the first Global rule of cfg, inserting one at
// the front when none exists. Other rules are left as they are.
func (f Form) Apply(cfg config.Config) (config.Config, error) {
	if err := f.Validate(); err != nil {
		return cfg, err
	}
	out := cfg.Clone()
	out.RainbowSpeed = f.RainbowSpeed
	out.HideTrayIcon = f.HideTrayIcon

	active := model.Rainbow()
	if !f.Rainbow {
		c, _ := model.ParseHex(f.ActiveHex)
		active = model.Solid(c)
	}
	inactive := model.Default()
	if !f.InactiveDisabled {
		c, _ := model.ParseHex(f.InactiveHex)
		inactive = model.Solid(c)
	}

	for i := range out.WindowRules {
		if out.WindowRules[i].Match == config.MatchGlobal {
			out.WindowRules[i].Active = active
			out.WindowRules[i].Inactive = inactive
			return out, nil
		}
	}
	global := config.Rule{Match: config.MatchGlobal, Active: active, Inactive: inactive}
	out.WindowRules = append([]config.Rule{global}, out.WindowRules...)
	return out, nil
}

// Save re-reads the config so concurrent external edits to other rules are
// kept, applies the form and persists the result.
func Save(s Store, f Form) error {
	cfg, err := f.Apply(s.ReadForGUI())
	if err != nil {
		return err
	}
	return s.Write(cfg)
}

// ClampSpeed limits v to the editor's slider range.
func ClampSpeed(v float64) float64 {
	switch {
	case v < MinSpeed:
		return MinSpeed
	case v > MaxSpeed:
		return MaxSpeed
	default:
		return v
	}
}

func firstGlobal(rules []config.Rule) (config.Rule, bool) {
	for _, r := range rules {
		if r.Match == config.MatchGlobal {
			return r, true
		}
	}
	return config.Rule{}, false
}

// Change is a partial edit of a Form. Nil fields are left alone.
type Change struct {
	// Active is a hex colour or "rainbow".
	Active *string
	// Inactive is a hex colour, or empty to restore the OS default.
	Inactive     *string
	Speed        *float64
	HideTrayIcon *bool
}

// Empty reports whether c edits nothing.
func (c Change) Empty() bool {
	return c.Active == nil && c.Inactive == nil && c.Speed == nil && c.HideTrayIcon == nil
}

// With returns f with c applied.
func (f Form) With(c Change) Form {
	if c.Active != nil {
		if strings.EqualFold(strings.TrimSpace(*c.Active), model.RainbowToken) {
			f.Rainbow = true
		} else {
			f.Rainbow = false
			f.ActiveHex = strings.TrimSpace(*c.Active)
		}
	}
	if c.Inactive != nil {
		v := strings.TrimSpace(*c.Inactive)
		f.InactiveDisabled = v == ""
		if v != "" {
			f.InactiveHex = v
		}
	}
	if c.Speed != nil {
		f.RainbowSpeed = *c.Speed
	}
	if c.HideTrayIcon != nil {
		f.HideTrayIcon = *c.HideTrayIcon
	}
	return f
}
