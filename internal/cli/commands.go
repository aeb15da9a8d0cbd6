package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vatwatch/vatwatch/internal/errors"
)

// WatchFlags holds the connection overrides for the watch command.
// Empty/zero values mean "use the config file value".
type WatchFlags struct {
	Host     string
	Port     string
	Interval float64
	Window   int
}

var (
	watchFlags WatchFlags
	initHost   string
	initForce  bool
)

// watchCmd runs the live dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the live sensor dashboard",
	Long: `Connect to the sensor stream and render the live chart grid.

Flags override the config file; anything not set falls back to the
config, then to the defaults (127.0.0.1:8000, 1.0s refresh, 300 samples).

Keyboard shortcuts inside the dashboard:
  q / Ctrl+C  Quit
  r           Reconnect
  e           Edit connection settings
  c           Clear the sample window
  ?           Show help

Examples:
  vatwatch watch
  vatwatch watch --host 192.168.1.40 --port 8000
  vatwatch watch --interval 0.5 --window 600`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchFlags)
	},
}

// initCmd creates a config file interactively.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .vatwatch.yaml configuration",
	Long: `Initialize a vatwatch configuration file in the current directory.

Guides you through the connection settings with interactive prompts.

Examples:
  vatwatch init
  vatwatch init --host 192.168.1.40
  vatwatch init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initHost, initForce)
	},
}

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a completion script for your shell.

Examples:
  # Bash
  vatwatch completion bash > /etc/bash_completion.d/vatwatch

  # Zsh
  vatwatch completion zsh > "${fpath[1]}/_vatwatch"

  # Fish
  vatwatch completion fish > ~/.config/fish/completions/vatwatch.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// watch command flags (also available on the bare root command)
	for _, cmd := range []*cobra.Command{rootCmd, watchCmd} {
		cmd.Flags().StringVar(&watchFlags.Host, "host", "", "stream server host")
		cmd.Flags().StringVar(&watchFlags.Port, "port", "", "stream server port")
		cmd.Flags().Float64Var(&watchFlags.Interval, "interval", 0, "refresh interval in seconds (0.1-5.0)")
		cmd.Flags().IntVar(&watchFlags.Window, "window", 0, "samples to keep (100-1000)")
	}

	// init command flags
	initCmd.Flags().StringVar(&initHost, "host", "", "pre-specify the server host")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
