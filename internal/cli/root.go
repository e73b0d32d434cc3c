// Package cli implements the cookengine command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/cookengine/internal/app"
	"github.com/bobmcallan/cookengine/internal/common"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "cookengine",
		Short:        "CookEngine: recipes from what you have",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file (default: $COOKENGINE_CONFIG or config/cookengine.toml)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "override logging level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		serveCmd(g),
		recipesCmd(g),
		ingredientsCmd(g),
		matchCmd(g),
		generateCmd(g),
		versionCmd(),
	)
	return cmd
}

// loadApp builds the app from the resolved config file. A non-empty
// defaultLevel replaces the configured logging level unless --log-level is set.
func loadApp(g *globalFlags, defaultLevel string) (*app.App, error) {
	cfg, err := common.LoadConfig(app.ResolveConfigPath(g.configPath))
	if err != nil {
		return nil, err
	}

	if defaultLevel != "" {
		cfg.Logging.Level = defaultLevel
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}

	return app.New(cfg, common.NewLogger(cfg.Logging.Level, cfg.Logging.Format))
}
