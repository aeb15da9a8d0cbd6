package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vatwatch/vatwatch/internal/config"
	"github.com/vatwatch/vatwatch/internal/dashboard"
	"github.com/vatwatch/vatwatch/internal/stream"
)

// watchCommand loads the session configuration and runs the dashboard TUI.
func watchCommand(flags WatchFlags) error {
	cfg, err := config.LoadOrDefault(ConfigPath())
	if err != nil {
		return err
	}

	applyOverrides(cfg, flags)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	model := dashboard.NewModel(cfg, stream.NewClient())

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// applyOverrides merges non-empty command-line flags over the config.
func applyOverrides(cfg *config.Config, flags WatchFlags) {
	if flags.Host != "" {
		cfg.Server.Host = flags.Host
	}
	if flags.Port != "" {
		cfg.Server.Port = flags.Port
	}
	if flags.Interval != 0 {
		cfg.Stream.Interval = flags.Interval
	}
	if flags.Window != 0 {
		cfg.Stream.Window = flags.Window
	}
}
