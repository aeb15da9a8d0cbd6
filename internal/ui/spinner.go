package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// SpinnerFrames defines the custom animation frames (◐ ◓ ◑ ◒) for use in
// Bubble Tea programs. This keeps styling consistent between CLI spinners
// and TUI components.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}
