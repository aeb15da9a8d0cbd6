package dashboard

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vatwatch/vatwatch/internal/sample"
)

func TestMain(m *testing.M) {
	// Strip ANSI sequences so rendered output can be compared as plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestNormalizeFixed(t *testing.T) {
	rng := sample.Range{Min: 0, Max: 80}

	tests := []struct {
		name     string
		val      float64
		rng      sample.Range
		expected float64
	}{
		{"minimum", 0, rng, 0},
		{"maximum", 80, rng, 1},
		{"midpoint", 40, rng, 0.5},
		{"below range clips to floor", -10, rng, 0},
		{"above range clips to ceiling", 200, rng, 1},
		{"negative range", 0, sample.Range{Min: -1, Max: 1}, 0.5},
		{"degenerate range", 5, sample.Range{Min: 3, Max: 3}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeFixed(tt.val, tt.rng))
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-3, 10))
	assert.Equal(t, 5, clampInt(5, 10))
	assert.Equal(t, 10, clampInt(15, 10))
}

func TestRenderBrailleChartDimensions(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	out := RenderBrailleChart(values, 10, 3, sample.Range{Min: 0, Max: 80}, ColorAccent)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, []rune(line), 10)
	}
}

func TestRenderBrailleChartZeroSize(t *testing.T) {
	assert.Empty(t, RenderBrailleChart([]float64{1}, 0, 3, sample.Range{Min: 0, Max: 1}, ColorAccent))
	assert.Empty(t, RenderBrailleChart([]float64{1}, 10, 0, sample.Range{Min: 0, Max: 1}, ColorAccent))
}

func TestRenderBrailleChartEmptySeries(t *testing.T) {
	out := RenderBrailleChart(nil, 6, 2, sample.Range{Min: 0, Max: 1}, ColorAccent)

	for _, line := range strings.Split(out, "\n") {
		for _, r := range line {
			assert.Equal(t, rune(brailleBase), r)
		}
	}
}

func TestRenderBrailleChartRightAligned(t *testing.T) {
	// A single sample lands in the rightmost column, not the leftmost.
	out := RenderBrailleChart([]float64{80}, 4, 1, sample.Range{Min: 0, Max: 80}, ColorAccent)

	line := []rune(strings.Split(out, "\n")[0])
	require.Len(t, line, 4)
	for _, r := range line[:3] {
		assert.Equal(t, rune(brailleBase), r)
	}
	assert.NotEqual(t, rune(brailleBase), line[3])
}

func TestRenderBrailleChartInRangeMinimumShowsBaseline(t *testing.T) {
	// A value at the bottom of the range still draws one dot.
	out := RenderBrailleChart([]float64{0, 0}, 1, 2, sample.Range{Min: 0, Max: 80}, ColorAccent)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, string(rune(brailleBase)), lines[0])
	assert.NotEqual(t, string(rune(brailleBase)), lines[1])
}

func TestRenderBrailleChartClipsOutOfRange(t *testing.T) {
	// Out-of-range values render identically to the range bounds.
	rng := sample.Range{Min: 0, Max: 80}
	clipped := RenderBrailleChart([]float64{500, -500}, 1, 2, rng, ColorAccent)
	bounded := RenderBrailleChart([]float64{80, 0}, 1, 2, rng, ColorAccent)

	assert.Equal(t, bounded, clipped)
}

func TestResampleSeries(t *testing.T) {
	t.Run("short series unchanged", func(t *testing.T) {
		values := []float64{1, 2, 3}
		assert.Equal(t, values, resampleSeries(values, 10))
	})

	t.Run("downsamples to target size", func(t *testing.T) {
		values := make([]float64, 100)
		for i := range values {
			values[i] = float64(i)
		}
		out := resampleSeries(values, 10)
		assert.Len(t, out, 10)
	})

	t.Run("spikes survive compression", func(t *testing.T) {
		values := make([]float64, 100)
		values[57] = 99
		out := resampleSeries(values, 10)

		found := false
		for _, v := range out {
			if v == 99 {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, resampleSeries(nil, 10))
	})
}
