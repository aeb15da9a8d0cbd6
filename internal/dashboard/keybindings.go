package dashboard

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyReconnect  = "r"
	KeySettings   = "e"
	KeyClear      = "c"
	KeyToggleHelp = "?"
	KeyDismiss    = "esc"
)

// handleKey processes keyboard input. While the settings form is open it
// gets the keys first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Ctrl+C always quits, even inside the settings form.
	if key == KeyQuitAlt {
		m.quitting = true
		m.closeStream()
		return m, tea.Quit
	}

	if m.settings.active {
		return m.handleSettingsKey(msg)
	}

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return m, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyDismiss {
		m.showHelp = false
		return m, nil
	}

	switch key {
	case KeyQuit:
		m.quitting = true
		m.closeStream()
		return m, tea.Quit

	case KeyReconnect:
		return m, m.reconnect()

	case KeySettings:
		m.settings.open(m.cfg)
		return m, m.settings.focusCmd()

	case KeyClear:
		m.window.Clear()
		return m, nil
	}

	return m, nil
}
