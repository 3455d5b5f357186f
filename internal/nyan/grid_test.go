package nyan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/nyan-rush/internal/core"
)

func TestNewGridLayout(t *testing.T) {
	g := NewGrid([]string{"ab", "c"}, 3, 7)

	require.Equal(t, 3, g.Len())
	assert.Equal(t, []Glyph{
		{X: 3, Y: 7, Char: 'a', Color: core.ColorWhite},
		{X: 4, Y: 7, Char: 'b', Color: core.ColorWhite},
		{X: 3, Y: 8, Char: 'c', Color: core.ColorWhite},
	}, g.Glyphs())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 2, g.Width())

	x, y := g.Anchor()
	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)
}

func TestNewGridEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"nil", nil},
		{"empty slice", []string{}},
		{"single empty row", []string{""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.lines, 5, 5)
			assert.Zero(t, g.Len())
			assert.Empty(t, g.Glyphs())
		})
	}
}

func TestNewGridRunes(t *testing.T) {
	g := NewGrid([]string{"é^"}, 0, 0)

	glyphs := g.Glyphs()
	require.Len(t, glyphs, 2)
	assert.Equal(t, 'é', glyphs[0].Char)
	assert.Equal(t, 1, glyphs[1].X, "each rune takes one column")
}

func TestGridTranslateClips(t *testing.T) {
	g := NewGrid([]string{"abc"}, 0, 0)

	g.Translate(-1, 2)

	glyphs := g.Glyphs()
	require.Len(t, glyphs, 2)
	assert.Equal(t, Glyph{X: 0, Y: 2, Char: 'b', Color: core.ColorWhite}, glyphs[0])
	assert.Equal(t, Glyph{X: 1, Y: 2, Char: 'c', Color: core.ColorWhite}, glyphs[1])
}

func TestGridScrollInvariant(t *testing.T) {
	g := NewGrid([]string{"abcde", "fgh", "i"}, 2, 0)

	for step := 0; step < 8; step++ {
		before := map[rune]int{}
		for _, glyph := range g.Glyphs() {
			before[glyph.Char] = glyph.X
		}

		g.Translate(-1, 0)

		for _, glyph := range g.Glyphs() {
			assert.GreaterOrEqual(t, glyph.X, 0)
			prevX, ok := before[glyph.Char]
			require.True(t, ok, "clipping never adds glyphs")
			assert.Less(t, glyph.X, prevX+1, "no glyph moves right")
		}
	}
	assert.Zero(t, g.Len(), "everything scrolls off eventually")
}

func TestGridClippedGlyphsNeverReturn(t *testing.T) {
	g := NewGrid([]string{"xy"}, 0, 0)

	g.Translate(-1, 0)
	require.Equal(t, 1, g.Len())

	g.Translate(5, 0)
	glyphs := g.Glyphs()
	require.Len(t, glyphs, 1)
	assert.Equal(t, 'y', glyphs[0].Char)
	assert.Equal(t, 5, glyphs[0].X)
}

func TestGridAppend(t *testing.T) {
	g := NewGrid(nil, 0, 0)

	g.Append([]rune{'o', 'o'}, []core.Color{core.ColorRed, core.ColorBlue}, 4, 1)

	assert.Equal(t, []Glyph{
		{X: 4, Y: 1, Char: 'o', Color: core.ColorRed},
		{X: 4, Y: 2, Char: 'o', Color: core.ColorBlue},
	}, g.Glyphs())
}

func TestGridAppendMismatchedLengths(t *testing.T) {
	g := NewGrid(nil, 0, 0)

	g.Append([]rune{'a', 'b', 'c'}, []core.Color{core.ColorGreen}, 0, 0)
	assert.Equal(t, 1, g.Len())

	g.Append(nil, []core.Color{core.ColorGreen}, 0, 0)
	assert.Equal(t, 1, g.Len())
}

func TestGridGlyphsIsACopy(t *testing.T) {
	g := NewGrid([]string{"a"}, 1, 1)

	glyphs := g.Glyphs()
	glyphs[0].X = 99

	assert.Equal(t, 1, g.Glyphs()[0].X)
}

func TestGlyphMovedAndSameCell(t *testing.T) {
	a := Glyph{X: 1, Y: 2, Char: 'a', Color: core.ColorRed}
	b := a.Moved(2, -1)

	assert.Equal(t, Glyph{X: 3, Y: 1, Char: 'a', Color: core.ColorRed}, b)
	assert.Equal(t, 1, a.X, "Moved must not modify the receiver")

	assert.True(t, a.SameCell(Glyph{X: 1, Y: 2, Char: 'z', Color: core.ColorBlue}))
	assert.False(t, a.SameCell(b))
}
