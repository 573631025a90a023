package cmd

import (
	"github.com/mj1618/cute-borders/internal/engine"
	"github.com/mj1618/cute-borders/internal/output"
	"github.com/mj1618/cute-borders/internal/platform"
	"github.com/mj1618/cute-borders/internal/server"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows with the border each one would get",
	Long: `List every paintable top-level window with its handle, title, class and PID,
the rule that matched it, whether it counts as active, and the colour the
painter would apply. Nothing is painted.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("active", false, "Only list windows that count as active")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	onlyActive, _ := cmd.Flags().GetBool("active")
	return printList(provider, env, onlyActive)
}

func printList(provider *platform.Provider, env *appEnv, onlyActive bool) error {
	applier := engine.NewApplier(provider, env.store, nil, env.logger)
	decisions, err := applier.Plan()
	if err != nil {
		return err
	}
	if onlyActive {
		kept := decisions[:0]
		for _, d := range decisions {
			if d.Active {
				kept = append(kept, d)
			}
		}
		decisions = kept
	}

	list := server.BuildList(decisions, env.store.Get(), provider.Inspector.ForegroundWindow())
	return output.Print(list)
}
