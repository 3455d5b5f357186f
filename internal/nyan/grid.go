// Package nyan implements the Nyan Rush simulation: a cat glyph that moves
// vertically while walls with a door scroll in from the right edge.
//
// Everything visible is a Glyph owned by exactly one Grid. Grids scroll by
// translating their glyphs and dropping those that pass the left edge, which
// is the only scrolling mechanism in the package.
package nyan

import "github.com/vovakirdan/nyan-rush/internal/core"

// Glyph is a single positioned, colored character on the playfield grid.
type Glyph struct {
	X, Y  int
	Char  rune
	Color core.Color
}

// Moved returns a copy of the glyph shifted by (dx, dy).
func (g Glyph) Moved(dx, dy int) Glyph {
	g.X += dx
	g.Y += dy
	return g
}

// SameCell reports whether two glyphs occupy the same grid cell.
// Character and color are ignored.
func (g Glyph) SameCell(other Glyph) bool {
	return g.X == other.X && g.Y == other.Y
}

// Grid is an ordered collection of glyphs with bulk translate, clip and
// append operations. A Grid exclusively owns its glyphs.
type Grid struct {
	glyphs  []Glyph
	anchorX int
	anchorY int
	height  int
	width   int
}

// NewGrid lays out shape lines into glyphs, one per rune, at
// (x + column, y + row) with the default glyph color. Rows may differ in
// length. A nil or empty slice yields an empty grid.
func NewGrid(lines []string, x, y int) *Grid {
	g := &Grid{anchorX: x, anchorY: y}
	if len(lines) == 0 {
		return g
	}

	g.height = len(lines)
	for row, line := range lines {
		col := 0
		for _, r := range line {
			g.glyphs = append(g.glyphs, Glyph{X: x + col, Y: y + row, Char: r, Color: core.ColorWhite})
			col++
		}
		g.width = core.Max(g.width, col)
	}
	return g
}

// Translate shifts every glyph by (dx, dy) and then clips.
func (g *Grid) Translate(dx, dy int) {
	for i, glyph := range g.glyphs {
		g.glyphs[i] = glyph.Moved(dx, dy)
	}
	g.Clip()
}

// Clip drops every glyph left of column 0. Dropped glyphs never come back.
func (g *Grid) Clip() {
	kept := g.glyphs[:0]
	for _, glyph := range g.glyphs {
		if glyph.X >= 0 {
			kept = append(kept, glyph)
		}
	}
	// clear dropped slots left in the backing array
	for i := len(kept); i < len(g.glyphs); i++ {
		g.glyphs[i] = Glyph{}
	}
	g.glyphs = kept
}

// Append adds a vertical column of glyphs at (x, y+i). Only the common prefix
// of chars and colors is used.
func (g *Grid) Append(chars []rune, colors []core.Color, x, y int) {
	n := core.Min(len(chars), len(colors))
	for i := 0; i < n; i++ {
		g.glyphs = append(g.glyphs, Glyph{X: x, Y: y + i, Char: chars[i], Color: colors[i]})
	}
}

// Glyphs returns a copy of the grid contents in order.
func (g *Grid) Glyphs() []Glyph {
	out := make([]Glyph, len(g.glyphs))
	copy(out, g.glyphs)
	return out
}

// AppendTo appends the grid contents to dst and returns the extended slice.
func (g *Grid) AppendTo(dst []Glyph) []Glyph {
	return append(dst, g.glyphs...)
}

// Len returns the number of glyphs currently held.
func (g *Grid) Len() int {
	return len(g.glyphs)
}

// Height returns the number of shape rows given at construction.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the longest shape row, in runes, given at construction.
func (g *Grid) Width() int {
	return g.width
}

// Anchor returns the construction anchor.
func (g *Grid) Anchor() (int, int) {
	return g.anchorX, g.anchorY
}
