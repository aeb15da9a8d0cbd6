// Package dashboard implements the live sensor dashboard TUI: a Bubble Tea
// model that consumes the process stream one sample at a time, keeps a
// bounded window, and renders a 3x3 grid of fixed-range charts.
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vatwatch/vatwatch/internal/config"
	"github.com/vatwatch/vatwatch/internal/sample"
	"github.com/vatwatch/vatwatch/internal/stream"
	"github.com/vatwatch/vatwatch/internal/ui"
)

// State is the dashboard lifecycle state.
type State int

const (
	// StateConnecting covers both opening the connection and waiting for
	// the first sample to arrive.
	StateConnecting State = iota
	// StateStreaming means samples are flowing and charts are live.
	StateStreaming
	// StateEnded means the server closed the stream cleanly. Terminal
	// until the user reconnects.
	StateEnded
	// StateError means the connection failed or the transport broke.
	// Terminal until the user reconnects.
	StateError
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateEnded:
		return "ended"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Model is the Bubble Tea model for the sensor dashboard. It owns the
// whole session: connection parameters, the live stream, and the sample
// window. The session dies with the model.
type Model struct {
	cfg    *config.Config
	client *stream.Client
	stream *stream.Stream
	window *sample.Window

	state    State
	err      error
	received int
	lastRecv time.Time

	// gen is the connection generation. Messages stamped with an older
	// generation belong to a torn-down stream and are discarded.
	gen int

	width    int
	height   int
	spin     spinner.Model
	settings settingsModel
	showHelp bool
	quitting bool
}

// connectedMsg carries a freshly opened stream.
type connectedMsg struct {
	gen int
	s   *stream.Stream
}

// connectFailedMsg reports a failed connection attempt.
type connectFailedMsg struct {
	gen int
	err error
}

// sampleMsg carries one decoded sample.
type sampleMsg struct {
	gen int
	s   sample.Sample
}

// streamEndedMsg reports a clean server-side close.
type streamEndedMsg struct {
	gen int
}

// streamFailedMsg reports a mid-stream transport failure.
type streamFailedMsg struct {
	gen int
	err error
}

// readTickMsg signals that the per-iteration pause has elapsed.
type readTickMsg struct {
	gen int
}

// NewModel creates a dashboard model for the given configuration.
// The config is owned by the model for the session's lifetime.
func NewModel(cfg *config.Config, client *stream.Client) Model {
	sp := spinner.New()
	sp.Spinner = ui.SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		cfg:      cfg,
		client:   client,
		window:   sample.NewWindow(cfg.Stream.Window),
		state:    StateConnecting,
		spin:     sp,
		settings: newSettingsModel(),
	}
}

// Init opens the stream and starts the waiting spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.connectCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case connectedMsg:
		if msg.gen != m.gen {
			// Stale connection from before a reconnect; drop it.
			msg.s.Close()
			return m, nil
		}
		m.stream = msg.s
		m.state = StateConnecting // still awaiting the first sample
		return m, m.readCmd()

	case connectFailedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = StateError
		m.err = msg.err
		m.stream = nil

	case sampleMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = StateStreaming
		m.window.Append(msg.s)
		m.received++
		m.lastRecv = time.Now()
		return m, m.pauseCmd()

	case readTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, m.readCmd()

	case streamEndedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = StateEnded
		m.closeStream()

	case streamFailedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = StateError
		m.err = msg.err
		m.closeStream()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// connectCmd opens the stream off the UI goroutine.
func (m Model) connectCmd() tea.Cmd {
	gen := m.gen
	client := m.client
	host := m.cfg.Server.Host
	port := m.cfg.Server.Port
	return func() tea.Msg {
		s, err := client.Open(context.Background(), host, port)
		if err != nil {
			return connectFailedMsg{gen: gen, err: err}
		}
		return connectedMsg{gen: gen, s: s}
	}
}

// readCmd blocks on the next stream event.
func (m Model) readCmd() tea.Cmd {
	gen := m.gen
	s := m.stream
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		smp, err := s.Next()
		switch {
		case err == nil:
			return sampleMsg{gen: gen, s: smp}
		case err == stream.ErrStreamEnded:
			return streamEndedMsg{gen: gen}
		default:
			return streamFailedMsg{gen: gen, err: err}
		}
	}
}

// pauseCmd waits the configured refresh interval before the next read.
func (m Model) pauseCmd() tea.Cmd {
	gen := m.gen
	interval := time.Duration(m.cfg.Stream.Interval * float64(time.Second))
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return readTickMsg{gen: gen}
	})
}

// reconnect tears down the current stream and opens a new one against the
// current settings. The sample window is kept; only an explicit clear
// resets it.
func (m *Model) reconnect() tea.Cmd {
	m.closeStream()
	m.gen++
	m.state = StateConnecting
	m.err = nil
	return tea.Batch(m.spin.Tick, m.connectCmd())
}

// closeStream releases the current stream, if any.
func (m *Model) closeStream() {
	if m.stream != nil {
		m.stream.Close()
		m.stream = nil
	}
}

// applySettings validates and adopts edited connection settings, then
// reconnects. Returns the command to run, or nil if validation failed
// (the settings form stays open showing the problem).
func (m *Model) applySettings() tea.Cmd {
	edited, err := m.settings.values()
	if err != nil {
		m.settings.errMsg = err.Error()
		return nil
	}

	m.cfg.Server.Host = edited.Server.Host
	m.cfg.Server.Port = edited.Server.Port
	m.cfg.Stream.Interval = edited.Stream.Interval
	m.cfg.Stream.Window = edited.Stream.Window
	m.window.SetLimit(edited.Stream.Window)

	m.settings.close()
	return m.reconnect()
}

// Config returns the model's live configuration.
func (m Model) Config() *config.Config {
	return m.cfg
}

// StreamURL returns the endpoint the session is pointed at.
func (m Model) StreamURL() string {
	return stream.URL(m.cfg.Server.Host, m.cfg.Server.Port)
}

// CurrentState returns the lifecycle state, for tests.
func (m Model) CurrentState() State {
	return m.state
}

// Window returns the sample window, for tests.
func (m Model) Window() *sample.Window {
	return m.window
}

// SecondsSinceSample returns whole seconds since the last sample arrived.
func (m Model) SecondsSinceSample() int {
	if m.lastRecv.IsZero() {
		return 0
	}
	return int(time.Since(m.lastRecv).Seconds())
}
