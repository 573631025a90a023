// Package config loads, validates, hot-reloads and persists the border rules.
//
// The on-disk form is YAML:
//
//	rainbow_speed: 1.0
//	hide_tray_icon: false
//	window_rules:
//	  - Match: Global
//	    active_border_color: "#c6a0f6"
//	    inactive_border_color: "#444444"
//	  - Match: Title
//	    contains: notepad
//	    active_border_color: rainbow
//	    inactive_border_color: ""
//
// Colour strings are decoded once at load into model.ColorSpec.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mj1618/cute-borders/internal/model"
	"gopkg.in/yaml.v3"
)

// MatchKind selects which window field a rule tests.
type MatchKind int

const (
	MatchGlobal MatchKind = iota
	MatchTitle
	MatchClass
)

func (m MatchKind) String() string {
	switch m {
	case MatchGlobal:
		return "Global"
	case MatchTitle:
		return "Title"
	case MatchClass:
		return "Class"
	default:
		return fmt.Sprintf("MatchKind(%d)", int(m))
	}
}

// ParseMatchKind accepts Global, Title or Class in any case.
func ParseMatchKind(s string) (MatchKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return MatchGlobal, nil
	case "title":
		return MatchTitle, nil
	case "class":
		return MatchClass, nil
	default:
		return MatchGlobal, fmt.Errorf("unknown Match %q (expected Global, Title, or Class)", s)
	}
}

// Rule assigns border colours to windows matching Match/Contains.
// Contains is required for Title and Class rules; a rule without it never
// matches.
type Rule struct {
	Match    MatchKind
	Contains *string
	Active   model.ColorSpec
	Inactive model.ColorSpec
}

// Config is one decoded snapshot of the config file.
type Config struct {
	RainbowSpeed float64
	HideTrayIcon bool
	WindowRules  []Rule
}

const DefaultRainbowSpeed = 1.0

// Default is the config synthesised when the file is missing or unreadable:
// a single Global rule, rainbow off.
func Default() Config {
	return Config{
		RainbowSpeed: DefaultRainbowSpeed,
		HideTrayIcon: false,
		WindowRules: []Rule{{
			Match:    MatchGlobal,
			Active:   model.Solid(model.RGB{R: 0xff, G: 0xff, B: 0xff}),
			Inactive: model.Solid(model.RGB{R: 0x44, G: 0x44, B: 0x44}),
		}},
	}
}

// RainbowEnabled reports whether any rule animates a border.
func (c Config) RainbowEnabled() bool {
	for _, r := range c.WindowRules {
		if r.Active.Kind == model.ColorRainbow || r.Inactive.Kind == model.ColorRainbow {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	if c.WindowRules == nil {
		return out
	}
	out.WindowRules = make([]Rule, len(c.WindowRules))
	for i, r := range c.WindowRules {
		if r.Contains != nil {
			s := *r.Contains
			r.Contains = &s
		}
		out.WindowRules[i] = r
	}
	return out
}

// Warnings lists non-fatal defects: specific rules without contains,
// undecodable colours and a non-positive rainbow speed.
func (c Config) Warnings() []string {
	var warns []string
	if c.RainbowSpeed <= 0 && c.RainbowEnabled() {
		warns = append(warns, fmt.Sprintf("rainbow_speed %.2f is not positive; rainbow will not animate", c.RainbowSpeed))
	}
	for i, r := range c.WindowRules {
		if r.Match != MatchGlobal && r.Contains == nil {
			warns = append(warns, fmt.Sprintf("rule %d: expected `contains` on Match=%q; rule never matches", i, r.Match))
		}
		if r.Active.Kind == model.ColorNone {
			warns = append(warns, fmt.Sprintf("rule %d: active_border_color %q is not a colour", i, r.Active.Raw))
		}
		if r.Inactive.Kind == model.ColorNone {
			warns = append(warns, fmt.Sprintf("rule %d: inactive_border_color %q is not a colour", i, r.Inactive.Raw))
		}
	}
	return warns
}

// fileConfig mirrors the YAML document. Pointers distinguish "absent" from
// the zero value: the scalars get defaults, window_rules is required.
type fileConfig struct {
	RainbowSpeed *float64    `yaml:"rainbow_speed"`
	HideTrayIcon *bool       `yaml:"hide_tray_icon"`
	WindowRules  *[]fileRule `yaml:"window_rules"`
}

// ErrMissingRules is returned by Decode for a document without window_rules,
// including an empty file.
var ErrMissingRules = errors.New("missing required key window_rules")

type fileRule struct {
	Match               string  `yaml:"Match"`
	Contains            *string `yaml:"contains,omitempty"`
	ActiveBorderColor   string  `yaml:"active_border_color"`
	InactiveBorderColor string  `yaml:"inactive_border_color"`
}

// Decode parses a YAML document. Unknown keys are ignored; a missing
// window_rules key or an unknown Match value is a parse error. An empty rule
// list decodes to nil rules. Undecodable colours are kept as model.ColorNone and
// reported by Warnings.
func Decode(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, err
	}

	cfg := Config{RainbowSpeed: DefaultRainbowSpeed}
	if fc.RainbowSpeed != nil {
		cfg.RainbowSpeed = *fc.RainbowSpeed
	}
	if fc.HideTrayIcon != nil {
		cfg.HideTrayIcon = *fc.HideTrayIcon
	}
	if fc.WindowRules == nil {
		return Config{}, ErrMissingRules
	}
	for i, fr := range *fc.WindowRules {
		kind, err := ParseMatchKind(fr.Match)
		if err != nil {
			return Config{}, fmt.Errorf("window_rules[%d]: %w", i, err)
		}
		active, _ := model.DecodeColor(fr.ActiveBorderColor)
		inactive, _ := model.DecodeColor(fr.InactiveBorderColor)
		cfg.WindowRules = append(cfg.WindowRules, Rule{
			Match:    kind,
			Contains: fr.Contains,
			Active:   active,
			Inactive: inactive,
		})
	}
	return cfg, nil
}

// Encode serialises cfg to YAML.
func Encode(cfg Config) ([]byte, error) {
	speed := cfg.RainbowSpeed
	hide := cfg.HideTrayIcon
	rules := make([]fileRule, 0, len(cfg.WindowRules))
	fc := fileConfig{
		RainbowSpeed: &speed,
		HideTrayIcon: &hide,
		WindowRules:  &rules,
	}
	for _, r := range cfg.WindowRules {
		rules = append(rules, fileRule{
			Match:               r.Match.String(),
			Contains:            r.Contains,
			ActiveBorderColor:   r.Active.String(),
			InactiveBorderColor: r.Inactive.String(),
		})
	}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return data, nil
}
