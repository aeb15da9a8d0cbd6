package config

import (
	"fmt"
	"strings"

	"github.com/vatwatch/vatwatch/internal/errors"
)

// Validate checks the config for errors and returns structured messages.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Server.Host) == "" {
		return errors.New(errors.ErrConfig,
			"Server host is empty",
			"Set server.host in the config, or pass --host")
	}

	if strings.TrimSpace(cfg.Server.Port) == "" {
		return errors.New(errors.ErrConfig,
			"Server port is empty",
			"Set server.port in the config, or pass --port")
	}

	if err := ValidateInterval(cfg.Stream.Interval); err != nil {
		return err
	}

	return ValidateWindow(cfg.Stream.Window)
}

// ValidateInterval checks the refresh interval against its allowed range.
func ValidateInterval(interval float64) error {
	if interval < MinInterval || interval > MaxInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %.2fs is out of range", interval),
			fmt.Sprintf("Use a value between %.1f and %.1f seconds", MinInterval, MaxInterval))
	}
	return nil
}

// ValidateWindow checks the window size against its allowed range.
func ValidateWindow(window int) error {
	if window < MinWindow || window > MaxWindow {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Window size %d is out of range", window),
			fmt.Sprintf("Use a value between %d and %d samples", MinWindow, MaxWindow))
	}
	return nil
}
