package chart

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/econviz/internal/series"
)

func TestRenderTerminalSingleTrace(t *testing.T) {
	t.Parallel()

	fig, err := Build("GDP Growth", testTable("GDP"), KindLine, testTheme())
	require.NoError(t, err)

	out := RenderTerminal(fig, 40, 8)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)

	assert.Contains(t, out, "Jan 2020")
	assert.Contains(t, out, "Dec 2023")
	assert.Contains(t, out, string(pointGlyph))
	assert.NotContains(t, out, legendGlyph)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestRenderTerminalMultiTraceHasLegend(t *testing.T) {
	t.Parallel()

	fig, err := Build("Employment Trends", testTable("Full Time", "Part Time"), KindLine, testTheme())
	require.NoError(t, err)

	out := RenderTerminal(fig, 40, 9)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[8], "Full Time")
	assert.Contains(t, lines[8], "Part Time")
}

func TestRenderTerminalRisingSeriesEndsHigh(t *testing.T) {
	t.Parallel()

	fig, err := Build("Rising", testTable("A"), KindLine, testTheme())
	require.NoError(t, err)

	lines := strings.Split(RenderTerminal(fig, 30, 6), "\n")
	top := []rune(lines[0])
	bottom := []rune(lines[4])
	assert.Equal(t, pointGlyph, top[len(top)-1], "last value sits on the top row")
	assert.Contains(t, string(bottom), string(pointGlyph), "first value sits on the bottom row")
}

func TestRenderTerminalDegenerateSizes(t *testing.T) {
	t.Parallel()

	fig, err := Build("GDP Growth", testTable("GDP"), KindLine, testTheme())
	require.NoError(t, err)

	assert.Empty(t, RenderTerminal(nil, 10, 10))
	assert.Empty(t, RenderTerminal(fig, 0, 10))
	assert.Contains(t, RenderTerminal(fig, 20, 2), "GDP Growth")
}

func TestRenderTerminalLegendFitsWidth(t *testing.T) {
	t.Parallel()

	fig, err := Build("Employment Trends", testTable("Full Time", "Part Time"), KindLine, testTheme())
	require.NoError(t, err)

	for _, line := range strings.Split(RenderTerminal(fig, 18, 8), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 18)
	}
}

func TestRenderTerminalRepeatedValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []float64
	}{
		{name: "flat then step", values: []float64{1, 1, 2}},
		{name: "step then flat", values: []float64{2, 1, 1}},
		{name: "constant", values: []float64{3, 3, 3}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			table := series.Table{
				Dates:   series.Dates()[:len(tc.values)],
				Columns: []series.Column{{Name: "A", Values: tc.values}},
			}
			fig, err := Build("Flat", table, KindLine, testTheme())
			require.NoError(t, err)

			var out string
			require.NotPanics(t, func() { out = RenderTerminal(fig, 30, 6) })
			assert.Len(t, strings.Split(out, "\n"), 6)
			assert.Contains(t, out, string(pointGlyph))
		})
	}
}

func TestRenderTerminalGeneratedGallery(t *testing.T) {
	t.Parallel()

	const height = 8
	widths := []int{22, 36}

	for _, region := range series.Regions() {
		region := region
		t.Run(region.String(), func(t *testing.T) {
			t.Parallel()

			coll, err := series.Generate(region, rand.New(rand.NewPCG(42, uint64(region)+1)))
			require.NoError(t, err)

			for _, entry := range coll.Entries {
				fig, err := Build(entry.Name, entry.Table, KindLine, testTheme())
				require.NoError(t, err, entry.Name)

				for _, width := range widths {
					var out string
					require.NotPanics(t, func() { out = RenderTerminal(fig, width, height) }, "%s at %d", entry.Name, width)

					lines := strings.Split(out, "\n")
					assert.Len(t, lines, height, "%s at %d", entry.Name, width)
					for _, line := range lines {
						assert.LessOrEqual(t, lipgloss.Width(line), width, "%s at %d", entry.Name, width)
					}
				}
			}
		})
	}
}
