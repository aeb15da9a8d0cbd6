package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vatwatch/vatwatch/internal/config"
	"github.com/vatwatch/vatwatch/internal/errors"
)

// Settings form field indexes.
const (
	fieldHost = iota
	fieldPort
	fieldInterval
	fieldWindow
	fieldCount
)

var settingsLabels = [fieldCount]string{
	"Server host",
	"Server port",
	"Refresh interval (s)",
	"Window size (samples)",
}

// settingsModel is the in-dashboard connection settings editor. Applying
// it rebuilds the stream URL and reconnects; cancelling leaves the
// running session untouched.
type settingsModel struct {
	active bool
	inputs [fieldCount]textinput.Model
	focus  int
	errMsg string
}

func newSettingsModel() settingsModel {
	var s settingsModel
	for i := range s.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		in.Width = 24
		s.inputs[i] = in
	}
	s.inputs[fieldHost].Placeholder = "127.0.0.1"
	s.inputs[fieldPort].Placeholder = "8000"
	s.inputs[fieldInterval].Placeholder = "1.0"
	s.inputs[fieldWindow].Placeholder = "300"
	return s
}

// open loads current values into the form and focuses the first field.
func (s *settingsModel) open(cfg *config.Config) {
	s.inputs[fieldHost].SetValue(cfg.Server.Host)
	s.inputs[fieldPort].SetValue(cfg.Server.Port)
	s.inputs[fieldInterval].SetValue(strconv.FormatFloat(cfg.Stream.Interval, 'f', -1, 64))
	s.inputs[fieldWindow].SetValue(strconv.Itoa(cfg.Stream.Window))
	s.errMsg = ""
	s.focus = fieldHost
	s.setFocus(fieldHost)
	s.active = true
}

func (s *settingsModel) close() {
	s.active = false
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
}

// focusCmd returns the cursor blink command for the focused field.
func (s settingsModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (s *settingsModel) setFocus(idx int) {
	for i := range s.inputs {
		if i == idx {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	s.focus = idx
}

// values parses the form into a validated config fragment.
func (s settingsModel) values() (*config.Config, error) {
	host := strings.TrimSpace(s.inputs[fieldHost].Value())
	port := strings.TrimSpace(s.inputs[fieldPort].Value())

	interval, err := strconv.ParseFloat(strings.TrimSpace(s.inputs[fieldInterval].Value()), 64)
	if err != nil {
		return nil, errors.New(errors.ErrConfig,
			"Refresh interval must be a number",
			fmt.Sprintf("Use a value between %.1f and %.1f seconds", config.MinInterval, config.MaxInterval))
	}

	window, err := strconv.Atoi(strings.TrimSpace(s.inputs[fieldWindow].Value()))
	if err != nil {
		return nil, errors.New(errors.ErrConfig,
			"Window size must be a whole number",
			fmt.Sprintf("Use a value between %d and %d samples", config.MinWindow, config.MaxWindow))
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Host: host, Port: port},
		Stream: config.StreamConfig{Interval: interval, Window: window},
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// handleSettingsKey routes keys to the settings form.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyDismiss:
		m.settings.close()
		return m, nil

	case "enter":
		return m, m.applySettings()

	case "tab", "down":
		m.settings.setFocus((m.settings.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.settings.setFocus((m.settings.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	var cmd tea.Cmd
	m.settings.inputs[m.settings.focus], cmd = m.settings.inputs[m.settings.focus].Update(msg)
	return m, cmd
}

// renderSettings draws the settings form overlay.
func (m Model) renderSettings() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Connection Settings"))
	b.WriteString("\n\n")

	for i := range m.settings.inputs {
		label := settingsLabels[i]
		style := LabelStyle
		if i == m.settings.focus {
			style = lipgloss.NewStyle().Foreground(ColorAccent)
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", style.Render(label), m.settings.inputs[i].View()))
	}

	if m.settings.errMsg != "" {
		b.WriteString(ErrorStyle.Render(strings.TrimSpace(m.settings.errMsg)))
		b.WriteString("\n\n")
	}

	b.WriteString(MutedStyle.Render("enter apply & reconnect | tab next field | esc cancel"))

	return HelpStyle.Render(b.String())
}
