package nyan

import "github.com/vovakirdan/nyan-rush/internal/core"

var (
	trailChars  = []rune{'o', 'o', 'o', 'o'}
	trailColors = []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorBlue}
)

// Trail is the rainbow tail painted one column behind the head. A new
// column is added every tick and older columns scroll left until clipped.
type Trail struct {
	head *Head
	grid *Grid
}

// NewTrail creates an empty trail that follows head.
func NewTrail(head *Head) *Trail {
	return &Trail{
		head: head,
		grid: NewGrid(nil, head.X()-1, head.Y()),
	}
}

// Regenerate ages the trail by one column and paints a fresh column behind
// the head's current position.
func (t *Trail) Regenerate() {
	t.grid.Translate(-1, 0)
	t.grid.Append(trailChars, trailColors, t.head.X()-1, t.head.Y())
}

// Glyphs returns the trail glyphs, oldest first.
func (t *Trail) Glyphs() []Glyph {
	return t.grid.Glyphs()
}
