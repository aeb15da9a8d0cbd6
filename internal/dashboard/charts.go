package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vatwatch/vatwatch/internal/sample"
)

// Braille character rendering for high-resolution terminal line charts.
//
// Braille patterns use a 2x4 dot matrix per character, so each character
// cell carries 2 horizontal data points at 4 vertical levels. Unicode
// braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// brailleDots maps row/column to the bit offset for the braille pattern.
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right).
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// normalizeFixed maps a value into [0, 1] against a fixed axis range,
// clipping out-of-range values rather than rescaling. This keeps every
// chart's scale constant regardless of the data actually seen.
func normalizeFixed(val float64, rng sample.Range) float64 {
	if rng.Max <= rng.Min {
		return 0.5
	}
	n := (val - rng.Min) / (rng.Max - rng.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// RenderBrailleChart renders a line chart of values using braille
// characters, scaled against the fixed range rng. Each character column
// holds 2 data points; each row holds 4 vertical levels. When the series
// is shorter than the display width it fills from the right, so the
// newest sample is always at the right edge.
func RenderBrailleChart(values []float64, width, height int, rng sample.Range, color lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	totalDots := height * 4
	targetPoints := width * 2

	resampled := values
	if len(values) > targetPoints {
		resampled = resampleSeries(values, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	// Right-align data when we have less than full width
	horizOffset := targetPoints - len(resampled)
	if horizOffset < 0 {
		horizOffset = 0
	}

	for i, val := range resampled {
		normalized := normalizeFixed(val, rng)
		dotHeight := clampInt(int(normalized*float64(totalDots)), totalDots)
		if dotHeight == 0 {
			// In-range minimum still shows a baseline dot.
			dotHeight = 1
		}

		charCol := (i + horizOffset) / 2
		if charCol >= width {
			continue
		}
		subCol := (i + horizOffset) % 2

		// Fill dots from bottom up
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			if row < 0 {
				continue
			}
			subRow := 3 - (dot % 4)
			bitOffset := brailleDots[subRow][subCol]
			grid[row][charCol] |= rune(1 << bitOffset)
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, 0, height)
	for _, row := range grid {
		lines = append(lines, style.Render(string(row)))
	}

	return strings.Join(lines, "\n")
}

// resampleSeries downsamples values to targetSize points using max-based
// bucketing so short spikes stay visible after compression.
func resampleSeries(values []float64, targetSize int) []float64 {
	if len(values) == 0 || targetSize <= 0 {
		return nil
	}
	if len(values) <= targetSize {
		return values
	}

	result := make([]float64, targetSize)
	bucketSize := float64(len(values)) / float64(targetSize)
	for i := 0; i < targetSize; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(values) {
			end = len(values)
		}
		if start >= end {
			start = end - 1
		}
		if start < 0 {
			start = 0
		}

		maxVal := values[start]
		for j := start + 1; j < end; j++ {
			if values[j] > maxVal {
				maxVal = values[j]
			}
		}
		result[i] = maxVal
	}
	return result
}
