package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/logging"
	"github.com/mj1618/cute-borders/internal/model"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFromConfig_Default(t *testing.T) {
	f := FromConfig(config.Default())
	require.Equal(t, Form{
		RainbowSpeed: 1,
		ActiveHex:    "#ffffff",
		InactiveHex:  "#444444",
	}, f)
}

func TestFromConfig_RainbowAndDisabledInactive(t *testing.T) {
	cfg := config.Config{
		RainbowSpeed: 3,
		WindowRules: []config.Rule{
			{Match: config.MatchTitle, Contains: strPtr("x"), Active: model.Solid(model.RGB{R: 1}), Inactive: model.Solid(model.RGB{R: 1})},
			{Match: config.MatchGlobal, Active: model.Rainbow(), Inactive: model.Default()},
		},
	}
	f := FromConfig(cfg)
	require.True(t, f.Rainbow)
	require.True(t, f.InactiveDisabled)
	require.Equal(t, DefaultActiveHex, f.ActiveHex)
	require.Equal(t, DefaultInactiveHex, f.InactiveHex)
	require.Equal(t, 3.0, f.RainbowSpeed)
}

func TestFromConfig_NoGlobalRule(t *testing.T) {
	f := FromConfig(config.Config{RainbowSpeed: 1})
	require.False(t, f.Rainbow)
	require.Equal(t, DefaultActiveHex, f.ActiveHex)
}

func TestApply_UpdatesFirstGlobalOnly(t *testing.T) {
	specific := config.Rule{Match: config.MatchClass, Contains: strPtr("Chrome"), Active: model.Solid(model.RGB{G: 1}), Inactive: model.Default()}
	cfg := config.Config{
		RainbowSpeed: 1,
		WindowRules: []config.Rule{
			specific,
			{Match: config.MatchGlobal, Active: model.Solid(model.RGB{}), Inactive: model.Solid(model.RGB{})},
			{Match: config.MatchGlobal, Active: model.Solid(model.RGB{B: 9}), Inactive: model.Solid(model.RGB{B: 9})},
		},
	}
	f := Form{Rainbow: true, RainbowSpeed: 4, ActiveHex: "#000000", InactiveHex: "#123456"}

	out, err := f.Apply(cfg)
	require.NoError(t, err)
	require.Len(t, out.WindowRules, 3)
	require.Equal(t, specific, out.WindowRules[0])
	require.Equal(t, model.Rainbow(), out.WindowRules[1].Active)
	require.Equal(t, model.Solid(model.RGB{R: 0x12, G: 0x34, B: 0x56}), out.WindowRules[1].Inactive)
	require.Equal(t, model.Solid(model.RGB{B: 9}), out.WindowRules[2].Active)
	require.Equal(t, 4.0, out.RainbowSpeed)

	// The input is not modified.
	require.Equal(t, model.Solid(model.RGB{}), cfg.WindowRules[1].Active)
}

func TestApply_InsertsGlobalAtFront(t *testing.T) {
	specific := config.Rule{Match: config.MatchTitle, Contains: strPtr("vim"), Active: model.Default(), Inactive: model.Default()}
	cfg := config.Config{RainbowSpeed: 1, WindowRules: []config.Rule{specific}}
	f := Form{RainbowSpeed: 1, ActiveHex: "#c6a0f6", InactiveDisabled: true}

	out, err := f.Apply(cfg)
	require.NoError(t, err)
	require.Len(t, out.WindowRules, 2)
	require.Equal(t, config.MatchGlobal, out.WindowRules[0].Match)
	require.Equal(t, model.Default(), out.WindowRules[0].Inactive)
	require.Equal(t, specific, out.WindowRules[1])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		ok   bool
	}{
		{"valid", Form{RainbowSpeed: 1, ActiveHex: "#ffffff", InactiveHex: "444444"}, true},
		{"bad_active", Form{RainbowSpeed: 1, ActiveHex: "white", InactiveHex: "#444444"}, false},
		{"bad_active_ignored_in_rainbow", Form{Rainbow: true, RainbowSpeed: 1, ActiveHex: "white", InactiveHex: "#444444"}, true},
		{"bad_inactive_ignored_when_disabled", Form{RainbowSpeed: 1, ActiveHex: "#ffffff", InactiveDisabled: true, InactiveHex: "?"}, true},
		{"speed_too_low", Form{RainbowSpeed: 0.01, ActiveHex: "#ffffff", InactiveHex: "#444444"}, false},
		{"speed_too_high", Form{RainbowSpeed: 11, ActiveHex: "#ffffff", InactiveHex: "#444444"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			require.Equal(t, tt.ok, err == nil, "error: %v", err)
		})
	}
}

func TestClampSpeed(t *testing.T) {
	require.Equal(t, MinSpeed, ClampSpeed(0))
	require.Equal(t, MaxSpeed, ClampSpeed(100))
	require.Equal(t, 2.5, ClampSpeed(2.5))
}

func TestSaveAndLoad_ThroughStore(t *testing.T) {
	store := config.Open(filepath.Join(t.TempDir(), "config.yaml"), logging.Discard())

	f := Load(store)
	f.Rainbow = true
	f.RainbowSpeed = 2
	f.HideTrayIcon = true
	require.NoError(t, Save(store, f))

	got := Load(store)
	require.True(t, got.Rainbow)
	require.Equal(t, 2.0, got.RainbowSpeed)
	require.True(t, got.HideTrayIcon)
	require.Equal(t, "#444444", got.InactiveHex)
	require.True(t, store.Get().RainbowEnabled())
}

type failingStore struct{ cfg config.Config }

func (s failingStore) ReadForGUI() config.Config { return s.cfg }
func (s failingStore) Write(config.Config) error {
	return &config.IoError{Path: "config.yaml", Op: "write", Err: errors.New("disk full")}
}

func TestSave_PropagatesWriteError(t *testing.T) {
	err := Save(failingStore{cfg: config.Default()}, FromConfig(config.Default()))
	var ioErr *config.IoError
	require.True(t, errors.As(err, &ioErr))
}

func TestForm_With(t *testing.T) {
	base := FromConfig(config.Default())
	rainbowTok := "Rainbow"
	hex := " #00ff00 "
	empty := ""
	speed := 7.5
	hide := true

	tests := []struct {
		name   string
		change Change
		check  func(t *testing.T, f Form)
	}{
		{"empty", Change{}, func(t *testing.T, f Form) { require.Equal(t, base, f) }},
		{"rainbow", Change{Active: &rainbowTok}, func(t *testing.T, f Form) {
			require.True(t, f.Rainbow)
			require.Equal(t, base.ActiveHex, f.ActiveHex)
		}},
		{"solid_active", Change{Active: &hex}, func(t *testing.T, f Form) {
			require.False(t, f.Rainbow)
			require.Equal(t, "#00ff00", f.ActiveHex)
		}},
		{"disable_inactive", Change{Inactive: &empty}, func(t *testing.T, f Form) {
			require.True(t, f.InactiveDisabled)
			require.Equal(t, base.InactiveHex, f.InactiveHex)
		}},
		{"speed_and_tray", Change{Speed: &speed, HideTrayIcon: &hide}, func(t *testing.T, f Form) {
			require.Equal(t, 7.5, f.RainbowSpeed)
			require.True(t, f.HideTrayIcon)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, base.With(tt.change))
		})
	}
	require.True(t, Change{}.Empty())
	require.False(t, Change{Speed: &speed}.Empty())
}

func TestFromConfig_ClampsOutOfRangeSpeed(t *testing.T) {
	cfg := config.Default()
	cfg.RainbowSpeed = 20
	f := FromConfig(cfg)
	require.Equal(t, MaxSpeed, f.RainbowSpeed)

	cfg.RainbowSpeed = 0
	require.Equal(t, MinSpeed, FromConfig(cfg).RainbowSpeed)
}

func TestSave_UnrelatedEditWithOutOfRangeSpeedOnDisk(t *testing.T) {
	store := config.Open(filepath.Join(t.TempDir(), "config.yaml"), logging.Discard())
	cfg := config.Default()
	cfg.RainbowSpeed = 20
	require.NoError(t, store.Write(cfg))

	active := "#00ff00"
	require.NoError(t, Save(store, Load(store).With(Change{Active: &active})))

	got := store.ReadForGUI()
	require.Equal(t, MaxSpeed, got.RainbowSpeed)
	require.Equal(t, model.Solid(model.RGB{G: 0xff}), got.WindowRules[0].Active)
}
