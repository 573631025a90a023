package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mj1618/cute-borders/internal/engine"
	"github.com/mj1618/cute-borders/internal/output"
	"github.com/mj1618/cute-borders/internal/platform"
	"github.com/mj1618/cute-borders/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cute-borders",
	Short: "Colour window borders by focus state",
	Long: `cute-borders paints the border of every top-level window with a colour chosen
from the rules in its config file, distinguishing the active window (and its
dialogs and menus) from the rest. Run without a subcommand it stays in the
background and repaints until interrupted, then restores the OS defaults.

Examples:
  cute-borders
  cute-borders --config-gui --rainbow --speed 2
  cute-borders list --format json --pretty`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (runRoot -> openEnv -> rootCmd).
	rootCmd.RunE = runRoot
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file path (default: <user config dir>/cute-borders/config.yaml)")
	pf.String("log-file", "", "Log file path (default: cute-borders.log next to the default config)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("format", "yaml", "Output format: yaml, json")
	pf.Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")

	rootCmd.Flags().Bool("config-gui", false, "Edit the baseline colours instead of painting borders")
	rootCmd.Flags().Duration("interval", engine.DefaultInterval, "Repaint interval")
	addSettingsFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flags directly so subcommand flags can't
		// shadow them.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if gui, _ := cmd.Flags().GetBool("config-gui"); gui {
		return runSettings(cmd, env)
	}
	change, err := settingsChange(cmd)
	if err != nil {
		return err
	}
	if !change.Empty() {
		return fmt.Errorf("settings flags require --config-gui")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", interval)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runService(ctx, provider, env, interval)
}

func runService(ctx context.Context, provider *platform.Provider, env *appEnv, interval time.Duration) error {
	cfg := env.store.Get()
	for _, w := range cfg.Warnings() {
		env.logger.Warn("config warning", "path", env.store.Path(), "warning", w)
	}
	if !cfg.HideTrayIcon {
		env.logger.Debug("tray icon requested but not available in this build")
	}
	env.logger.Info("starting", "version", version.Version, "interval", interval)

	svc := engine.NewService(provider, env.store, interval, env.logger)
	return svc.Run(ctx)
}
