package cmd

import (
	"fmt"

	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/output"
	"github.com/mj1618/cute-borders/internal/settings"
	"github.com/spf13/cobra"
)

// addSettingsFlags registers the settings editor fields on cmd.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().String("active", "", "Active border colour as hex (e.g. #c6a0f6)")
	cmd.Flags().Bool("rainbow", false, "Animate the active border through the hue wheel")
	cmd.Flags().String("inactive", "", "Inactive border colour as hex (e.g. #444444)")
	cmd.Flags().Bool("no-inactive", false, "Leave inactive borders at the OS default")
	cmd.Flags().Float64("speed", 1.0, "Rainbow speed, clamped to 0.1..10")
	cmd.Flags().Bool("hide-tray-icon", false, "Hide the tray icon")
}

// settingsChange collects only the settings flags the user actually set.
func settingsChange(cmd *cobra.Command) (settings.Change, error) {
	var c settings.Change
	flags := cmd.Flags()

	if flags.Changed("rainbow") && flags.Changed("active") {
		return c, fmt.Errorf("--rainbow and --active are mutually exclusive")
	}
	if flags.Changed("no-inactive") && flags.Changed("inactive") {
		return c, fmt.Errorf("--no-inactive and --inactive are mutually exclusive")
	}

	if flags.Changed("active") {
		v, _ := flags.GetString("active")
		c.Active = &v
	}
	if flags.Changed("rainbow") {
		if on, _ := flags.GetBool("rainbow"); on {
			v := model.RainbowToken
			c.Active = &v
		}
	}
	if flags.Changed("inactive") {
		v, _ := flags.GetString("inactive")
		if v == "" {
			return c, fmt.Errorf("--inactive needs a colour; use --no-inactive for the OS default")
		}
		c.Inactive = &v
	}
	if flags.Changed("no-inactive") {
		if on, _ := flags.GetBool("no-inactive"); on {
			v := ""
			c.Inactive = &v
		}
	}
	if flags.Changed("speed") {
		v, _ := flags.GetFloat64("speed")
		v = settings.ClampSpeed(v)
		c.Speed = &v
	}
	if flags.Changed("hide-tray-icon") {
		v, _ := flags.GetBool("hide-tray-icon")
		c.HideTrayIcon = &v
	}
	return c, nil
}

// runSettings prints the settings form, or applies the given field flags to
// it and saves.
func runSettings(cmd *cobra.Command, env *appEnv) error {
	change, err := settingsChange(cmd)
	if err != nil {
		return err
	}
	form := settings.Load(env.store)
	if change.Empty() {
		return output.Print(form)
	}

	form = form.With(change)
	if err := settings.Save(env.store, form); err != nil {
		return err
	}
	env.logger.Info("settings saved", "path", env.store.Path(), "rainbow", form.Rainbow, "speed", form.RainbowSpeed)
	return output.Print(form)
}
