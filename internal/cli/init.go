package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/vatwatch/vatwatch/internal/config"
	"github.com/vatwatch/vatwatch/internal/errors"
	"github.com/vatwatch/vatwatch/internal/ui"
)

// initCommand creates a .vatwatch.yaml in the current directory, prompting
// for the connection settings.
func initCommand(hostFlag string, force bool) error {
	path := config.ConfigFileName

	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	defaults := config.DefaultConfig()

	host := defaults.Server.Host
	if hostFlag != "" {
		host = hostFlag
	}
	port := defaults.Server.Port
	interval := strconv.FormatFloat(defaults.Stream.Interval, 'f', -1, 64)
	window := strconv.Itoa(defaults.Stream.Window)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Server host").
				Description("Host running the sensor stream endpoint").
				Placeholder("127.0.0.1").
				Value(&host).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("host is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Server port").
				Placeholder("8000").
				Value(&port).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("port is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh interval (seconds)").
				Description(fmt.Sprintf("Pause between chart redraws, %.1f to %.1f", config.MinInterval, config.MaxInterval)).
				Value(&interval).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					if v < config.MinInterval || v > config.MaxInterval {
						return fmt.Errorf("must be between %.1f and %.1f", config.MinInterval, config.MaxInterval)
					}
					return nil
				}),
			huh.NewInput().
				Title("Window size (samples)").
				Description(fmt.Sprintf("Samples retained for the charts, %d to %d", config.MinWindow, config.MaxWindow)).
				Value(&window).
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("must be a whole number")
					}
					if v < config.MinWindow || v > config.MaxWindow {
						return fmt.Errorf("must be between %d and %d", config.MinWindow, config.MaxWindow)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Run again, or create "+path+" by hand")
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host: strings.TrimSpace(host),
			Port: strings.TrimSpace(port),
		},
	}
	cfg.Stream.Interval, _ = strconv.ParseFloat(strings.TrimSpace(interval), 64)
	cfg.Stream.Window, _ = strconv.Atoi(strings.TrimSpace(window))

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(cfg, path); err != nil {
		return err
	}

	success := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Created %s\n", success.Render(ui.SymbolSuccess), path)
	fmt.Println("Run 'vatwatch watch' to start the dashboard.")
	return nil
}
