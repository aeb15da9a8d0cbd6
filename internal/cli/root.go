// Package cli implements the vatwatch command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a workflow function for the actual work:
//
//	vatwatch watch        - Run the live dashboard TUI
//	vatwatch init         - Create a config file interactively
//	vatwatch version      - Print version information
//	vatwatch completion   - Generate shell completion scripts
//
// The global --config flag is defined on the root command and available
// to all subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag holds the global --config value.
var configFlag string

// rootCmd is the base command. Running vatwatch with no subcommand starts
// the dashboard, matching the single-purpose nature of the tool.
var rootCmd = &cobra.Command{
	Use:   "vatwatch",
	Short: "Live terminal dashboard for pasteurization process sensors",
	Long: `vatwatch renders a live 3x3 grid of sensor charts from a
pasteurization process stream.

It connects to a server-sent-events endpoint (http://{host}:{port}/stream),
decodes one JSON sample per event, keeps a bounded sliding window, and
redraws fixed-range charts for the nine process channels: T, pH, Kappa,
Mu, Tau, Q_in, Q_out, P, and dTdt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// ConfigPath returns the global --config flag value.
func ConfigPath() string {
	return configFlag
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
