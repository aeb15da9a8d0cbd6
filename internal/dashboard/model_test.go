package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vatwatch/vatwatch/internal/config"
	"github.com/vatwatch/vatwatch/internal/errors"
	"github.com/vatwatch/vatwatch/internal/sample"
	"github.com/vatwatch/vatwatch/internal/stream"
)

func newTestModel() Model {
	return NewModel(config.DefaultConfig(), stream.NewClient())
}

func fptr(v float64) *float64 { return &v }

func testSample(ts, temp float64) sample.Sample {
	return sample.Sample{Timestamp: fptr(ts), T: fptr(temp)}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	next, ok := nm.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestNewModelInitialState(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, StateConnecting, m.CurrentState())
	assert.Equal(t, 0, m.Window().Len())
	assert.Equal(t, sample.DefaultWindowSize, m.Window().Limit())
	assert.Equal(t, "http://127.0.0.1:8000/stream", m.StreamURL())
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateConnecting, "connecting"},
		{StateStreaming, "streaming"},
		{StateEnded, "ended"},
		{StateError, "error"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestSampleMsgStartsStreaming(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, sampleMsg{gen: 0, s: testSample(1, 50)})

	assert.Equal(t, StateStreaming, m.CurrentState())
	assert.Equal(t, 1, m.Window().Len())
	// Next read is paced by the refresh interval
	assert.NotNil(t, cmd)
}

func TestSamplesAccumulateInOrder(t *testing.T) {
	m := newTestModel()

	for i, temp := range []float64{50, 52, 55} {
		m, _ = update(t, m, sampleMsg{gen: 0, s: testSample(float64(i+1), temp)})
	}

	require.Equal(t, 3, m.Window().Len())
	_, values := m.Window().Series(sample.ChanT)
	assert.Equal(t, []float64{50, 52, 55}, values)
}

func TestStaleSampleDropped(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, sampleMsg{gen: 7, s: testSample(1, 50)})

	assert.Equal(t, StateConnecting, m.CurrentState())
	assert.Equal(t, 0, m.Window().Len())
	assert.Nil(t, cmd)
}

func TestStreamEndedMsg(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, sampleMsg{gen: 0, s: testSample(1, 50)})

	m, _ = update(t, m, streamEndedMsg{gen: 0})

	assert.Equal(t, StateEnded, m.CurrentState())
	// Window retained so the last readings stay visible
	assert.Equal(t, 1, m.Window().Len())
}

func TestStreamFailedMsg(t *testing.T) {
	m := newTestModel()
	streamErr := errors.New(errors.ErrStream, "stream read failed", "")

	m, _ = update(t, m, streamFailedMsg{gen: 0, err: streamErr})

	assert.Equal(t, StateError, m.CurrentState())
	assert.Equal(t, streamErr, m.err)
}

func TestConnectFailedMsg(t *testing.T) {
	m := newTestModel()
	connErr := errors.New(errors.ErrConnect, "could not reach server", "")

	m, _ = update(t, m, connectFailedMsg{gen: 0, err: connErr})

	assert.Equal(t, StateError, m.CurrentState())
	assert.Equal(t, connErr, m.err)
}

func TestStaleLifecycleMsgsDropped(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, sampleMsg{gen: 0, s: testSample(1, 50)})

	for _, msg := range []tea.Msg{
		streamEndedMsg{gen: 3},
		streamFailedMsg{gen: 3, err: errors.New(errors.ErrStream, "old", "")},
		connectFailedMsg{gen: 3, err: errors.New(errors.ErrConnect, "old", "")},
		readTickMsg{gen: 3},
	} {
		m, _ = update(t, m, msg)
		assert.Equal(t, StateStreaming, m.CurrentState())
	}
}

func TestReconnectKeepsWindow(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, sampleMsg{gen: 0, s: testSample(1, 50)})
	m, _ = update(t, m, streamEndedMsg{gen: 0})

	m, cmd := update(t, m, keyMsg("r"))

	assert.Equal(t, StateConnecting, m.CurrentState())
	assert.Equal(t, 1, m.gen)
	assert.Nil(t, m.err)
	assert.Equal(t, 1, m.Window().Len())
	assert.NotNil(t, cmd)
}

func TestReconnectInvalidatesOldGeneration(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("r"))

	// A sample from the pre-reconnect stream must not land
	m, _ = update(t, m, sampleMsg{gen: 0, s: testSample(1, 50)})

	assert.Equal(t, StateConnecting, m.CurrentState())
	assert.Equal(t, 0, m.Window().Len())
}

func TestClearKeyEmptiesWindow(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, sampleMsg{gen: 0, s: testSample(1, 50)})

	m, _ = update(t, m, keyMsg("c"))

	assert.Equal(t, 0, m.Window().Len())
	assert.Equal(t, StateStreaming, m.CurrentState())
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel()
			m, cmd := update(t, m, keyMsg(key))

			assert.True(t, m.quitting)
			assert.Empty(t, m.View())
			require.NotNil(t, cmd)
		})
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, keyMsg("?"))
	assert.True(t, m.showHelp)

	m, _ = update(t, m, keyMsg("esc"))
	assert.False(t, m.showHelp)
}

func TestWindowSizeMsg(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestSettingsOpenAndApply(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("e"))
	require.True(t, m.settings.active)

	m.settings.inputs[fieldHost].SetValue("10.0.0.5")
	m.settings.inputs[fieldPort].SetValue("9000")
	m.settings.inputs[fieldInterval].SetValue("0.5")
	m.settings.inputs[fieldWindow].SetValue("500")

	m, cmd := update(t, m, keyMsg("enter"))

	assert.False(t, m.settings.active)
	assert.Equal(t, "10.0.0.5", m.Config().Server.Host)
	assert.Equal(t, "9000", m.Config().Server.Port)
	assert.Equal(t, 0.5, m.Config().Stream.Interval)
	assert.Equal(t, 500, m.Config().Stream.Window)
	assert.Equal(t, 500, m.Window().Limit())
	assert.Equal(t, "http://10.0.0.5:9000/stream", m.StreamURL())

	// Apply triggers a reconnect against the new endpoint
	assert.Equal(t, 1, m.gen)
	assert.Equal(t, StateConnecting, m.CurrentState())
	assert.NotNil(t, cmd)
}

func TestSettingsApplyRejectsInvalid(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("e"))

	m.settings.inputs[fieldInterval].SetValue("not-a-number")

	m, cmd := update(t, m, keyMsg("enter"))

	// Form stays open showing the problem; nothing is adopted
	assert.True(t, m.settings.active)
	assert.NotEmpty(t, m.settings.errMsg)
	assert.Equal(t, 1.0, m.Config().Stream.Interval)
	assert.Equal(t, 0, m.gen)
	assert.Nil(t, cmd)
}

func TestSettingsEscCancels(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("e"))
	m.settings.inputs[fieldHost].SetValue("changed.example")

	m, _ = update(t, m, keyMsg("esc"))

	assert.False(t, m.settings.active)
	assert.Equal(t, "127.0.0.1", m.Config().Server.Host)
}

func TestSettingsTabCyclesFocus(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("e"))
	assert.Equal(t, fieldHost, m.settings.focus)

	m, _ = update(t, m, keyMsg("tab"))
	assert.Equal(t, fieldPort, m.settings.focus)

	for i := 0; i < fieldCount-1; i++ {
		m, _ = update(t, m, keyMsg("tab"))
	}
	assert.Equal(t, fieldHost, m.settings.focus)
}
