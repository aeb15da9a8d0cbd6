package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vatwatch/vatwatch/internal/sample"
)

// render draws the complete dashboard frame. Every call rebuilds the whole
// view; Bubble Tea swaps it in place of the previous frame.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.settings.active:
		b.WriteString(m.overlay(m.renderSettings()))
	case m.showHelp:
		b.WriteString(m.overlay(m.renderHelp()))
	case m.state == StateConnecting:
		b.WriteString(m.renderWaiting())
	case m.state == StateError:
		b.WriteString(m.renderError())
	default:
		if m.state == StateEnded {
			b.WriteString(NoticeStyle.Render("Stream ended by server. Press r to reconnect."))
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with connection and session stats.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("vatwatch")

	stateLabel := m.state.String()
	var stateStyled string
	switch m.state {
	case StateStreaming:
		stateStyled = lipgloss.NewStyle().Foreground(ColorHealthy).Render(stateLabel)
	case StateError:
		stateStyled = ErrorStyle.Render(stateLabel)
	case StateEnded:
		stateStyled = NoticeStyle.Render(stateLabel)
	default:
		stateStyled = LabelStyle.Render(stateLabel)
	}

	stats := fmt.Sprintf(" | %s | %s | %d samples", m.StreamURL(), stateStyled, m.window.Len())
	if m.state == StateStreaming && !m.lastRecv.IsZero() {
		switch secs := m.SecondsSinceSample(); secs {
		case 0:
			stats += " | just now"
		case 1:
			stats += " | 1s ago"
		default:
			stats += fmt.Sprintf(" | %ds ago", secs)
		}
	}

	return HeaderStyle.Render(title + LabelStyle.Render(stats))
}

// renderWaiting renders the pre-first-sample indicator.
func (m Model) renderWaiting() string {
	var b strings.Builder
	b.WriteString(m.spin.View())
	b.WriteString(" ")
	b.WriteString(LabelStyle.Render("Waiting for live data..."))
	b.WriteString("\n\n")
	b.WriteString(MutedStyle.Render("connecting to " + m.StreamURL()))
	return b.String()
}

// renderError renders the terminal error view.
func (m Model) renderError() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(strings.TrimRight(m.err.Error(), "\n")))
	} else {
		b.WriteString(ErrorStyle.Render("✗ Connection failed"))
	}
	b.WriteString("\n\n")
	b.WriteString(MutedStyle.Render("Press r to reconnect, e to edit connection settings."))
	if m.window.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render(fmt.Sprintf("%d samples retained from the previous connection.", m.window.Len())))
	}
	return b.String()
}

// renderGrid renders the 3x3 channel chart grid in fixed channel order.
func (m Model) renderGrid() string {
	cols := m.gridColumns()
	cardWidth := m.cardWidth(cols)
	chartHeight := m.chartHeight()

	var cards []string
	for _, ch := range sample.Channels {
		cards = append(cards, m.renderChannelCard(ch, cardWidth, chartHeight))
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderChannelCard renders one channel's chart card: name as the legend,
// the braille line graph, and the fixed axis bounds in a left gutter.
func (m Model) renderChannelCard(ch sample.Channel, cardWidth, chartHeight int) string {
	rng := sample.Ranges[ch]

	inner := cardWidth - 4 // border + padding
	if inner < 12 {
		inner = 12
	}

	maxLabel := formatAxis(rng.Max)
	minLabel := formatAxis(rng.Min)
	gutter := len(maxLabel)
	if len(minLabel) > gutter {
		gutter = len(minLabel)
	}

	chartWidth := inner - gutter - 1
	if chartWidth < 4 {
		chartWidth = 4
	}

	// Title row: channel name left, latest reading right.
	name := ChannelNameStyle.Foreground(channelColor(ch)).Render(string(ch))
	latest := ""
	if v := m.window.Latest(ch); v != nil {
		latest = ValueStyle.Render(strconv.FormatFloat(*v, 'f', 2, 64))
	}
	pad := inner - lipgloss.Width(name) - lipgloss.Width(latest)
	if pad < 1 {
		pad = 1
	}
	title := name + strings.Repeat(" ", pad) + latest

	_, values := m.window.Series(ch)

	var body string
	if len(values) == 0 {
		empty := MutedStyle.Render("no data")
		body = lipgloss.Place(inner, chartHeight, lipgloss.Center, lipgloss.Center, empty)
	} else {
		chart := RenderBrailleChart(values, chartWidth, chartHeight, rng, channelColor(ch))
		body = attachAxis(chart, gutter, maxLabel, minLabel)
	}

	return CardStyle.Width(cardWidth - 2).Render(title + "\n" + body)
}

// attachAxis prefixes chart rows with a fixed-range gutter: the max bound
// on the top row, the min bound on the bottom row.
func attachAxis(chart string, gutter int, maxLabel, minLabel string) string {
	rows := strings.Split(chart, "\n")
	for i := range rows {
		var label string
		switch i {
		case 0:
			label = maxLabel
		case len(rows) - 1:
			label = minLabel
		}
		rows[i] = MutedStyle.Render(fmt.Sprintf("%*s", gutter, label)) + " " + rows[i]
	}
	return strings.Join(rows, "\n")
}

// formatAxis formats a fixed axis bound without trailing zeros.
func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// gridColumns picks the column count from the terminal width.
func (m Model) gridColumns() int {
	switch {
	case m.width == 0 || m.width >= BreakpointThreeCol:
		return 3
	case m.width >= BreakpointTwoCol:
		return 2
	default:
		return 1
	}
}

// cardWidth splits the terminal width evenly across the columns.
func (m Model) cardWidth(cols int) int {
	if m.width == 0 {
		return 36
	}
	w := (m.width - cols) / cols
	if w < 20 {
		w = 20
	}
	if w > 48 {
		w = 48
	}
	return w
}

// chartHeight scales the graph rows with the terminal height.
func (m Model) chartHeight() int {
	switch {
	case m.height >= 42:
		return 5
	case m.height >= 33:
		return 4
	default:
		return 3
	}
}

// renderHelp renders the keyboard help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"q / ctrl+c", "quit"},
		{"r", "reconnect to the stream"},
		{"e", "edit connection settings"},
		{"c", "clear the sample window"},
		{"?", "toggle this help"},
		{"esc", "dismiss overlay"},
	}
	for _, bind := range bindings {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			ValueStyle.Render(fmt.Sprintf("%-11s", bind.key)),
			LabelStyle.Render(bind.desc)))
	}

	return HelpStyle.Render(b.String())
}

// overlay centers content in the available space when dimensions are known.
func (m Model) overlay(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	// Leave room for the header and footer rows.
	h := m.height - 5
	if h < lipgloss.Height(content) {
		return content
	}
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, content)
}

// renderFooter renders the keyboard hint footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r reconnect",
		"e settings",
		"c clear",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}
