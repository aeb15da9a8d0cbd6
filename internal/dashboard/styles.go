package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vatwatch/vatwatch/internal/sample"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep background
	ColorSurfaceBg = lipgloss.Color("#12121A") // Card surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Card border

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent  = lipgloss.Color("#FF2E97") // Neon pink
	ColorHealthy = lipgloss.Color("#39FF14") // Neon green
	ColorWarning = lipgloss.Color("#FFAA00") // Electric amber
	ColorError   = lipgloss.Color("#FF0055") // Hot red-pink
)

// channelColors assigns each chart a stable line color.
var channelColors = map[sample.Channel]lipgloss.Color{
	sample.ChanT:     lipgloss.Color("#FF6B35"), // warm orange for temperature
	sample.ChanPH:    lipgloss.Color("#39FF14"),
	sample.ChanKappa: lipgloss.Color("#00FFFF"),
	sample.ChanMu:    lipgloss.Color("#BF40FF"),
	sample.ChanTau:   lipgloss.Color("#FF2E97"),
	sample.ChanQIn:   lipgloss.Color("#4DA6FF"),
	sample.ChanQOut:  lipgloss.Color("#4DFFB8"),
	sample.ChanP:     lipgloss.Color("#FFAA00"),
	sample.ChanDTdt:  lipgloss.Color("#FFF14D"),
}

// channelColor returns the line color for a channel, falling back to cyan.
func channelColor(ch sample.Channel) lipgloss.Color {
	if c, ok := channelColors[ch]; ok {
		return c
	}
	return lipgloss.Color("#00FFFF")
}

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ChannelNameStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)
)

// Width breakpoints for the chart grid layout.
const (
	BreakpointThreeCol = 108
	BreakpointTwoCol   = 76
)
