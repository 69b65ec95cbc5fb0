// Package cmd provides the Cobra commands of the dynpanels CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dynpanels/internal/cli"
	"github.com/bnema/dynpanels/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = newRootCmd()
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dynpanels",
		Short: "Inspect and manage docking panel layouts",
		Long: `dynpanels manages docking panel layouts: panels docked into a tree of
horizontal and vertical groups, floating panels, and the layouts saved for
each canvas.

Use the layout subcommands to inspect or delete stored layouts, and
'dynpanels demo' to see how a layout is solved for a given canvas size.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}
			if app != nil {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
}

// needsApp reports whether cmd uses the layout store.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["store"] == "true" {
			return true
		}
	}
	return false
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetApp injects an app, replacing the one built from the config.
func SetApp(a *cli.App) {
	app = a
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
	},
}
