package cmd

import (
	"github.com/mj1618/cute-borders/internal/engine"
	"github.com/mj1618/cute-borders/internal/output"
	"github.com/mj1618/cute-borders/internal/platform"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every window border to the OS default",
	Long:  "Restore the default border on every paintable window once. Use this after a crash left custom borders behind.",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

// ResetResult is the output of the `reset` command.
type ResetResult struct {
	Windows int `yaml:"windows" json:"windows"`
	Reset   int `yaml:"reset"   json:"reset"`
	Skipped int `yaml:"skipped" json:"skipped"`
	Failed  int `yaml:"failed"  json:"failed"`
}

func runReset(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	return output.Print(resetAll(provider, env))
}

func resetAll(provider *platform.Provider, env *appEnv) ResetResult {
	applier := engine.NewApplier(provider, env.store, nil, env.logger)
	rep := applier.Apply(true)
	env.logger.Info("borders reset", "windows", rep.Windows, "failed", rep.Failed)
	return ResetResult{Windows: rep.Windows, Reset: rep.Painted, Skipped: rep.Skipped, Failed: rep.Failed}
}
