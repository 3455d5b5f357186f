package nyan

import "github.com/vovakirdan/nyan-rush/internal/core"

// Head shape layout relative to the position passed to NewHead.
const (
	HeadOffsetX     = 6
	HeadOffsetY     = 2
	HeadShapeHeight = 4
)

// Smallest playfield that holds the head shape when it starts centered.
const (
	MinWidth  = 2 * HeadOffsetX
	MinHeight = HeadShapeHeight
)

// headShape is the cat drawn for the player.
var headShape = []string{
	`,-----`,
	`|   /\_/\`,
	`|__( ^ .^)`,
	`""  ""`,
}

// Head is the player-controlled part of the character. Its position is the
// top-left corner of the shape and stays inside [0, playfieldHeight).
type Head struct {
	x, y            int
	playfieldHeight int
	grid            *Grid
}

// NewHead builds the head shape around (x, y) for a playfield of the given height.
func NewHead(x, y, playfieldHeight int) *Head {
	h := &Head{
		x:               x - HeadOffsetX,
		y:               y - HeadOffsetY,
		playfieldHeight: playfieldHeight,
	}
	h.grid = NewGrid(headShape, h.x, h.y)
	return h
}

// MoveUp moves the head one row up unless it already touches the top.
func (h *Head) MoveUp() {
	h.moveTo(h.y - 1)
}

// MoveDown moves the head one row down unless it already touches the bottom.
func (h *Head) MoveDown() {
	h.moveTo(h.y + 1)
}

func (h *Head) moveTo(y int) {
	y = core.Clamp(y, 0, core.Max(h.playfieldHeight-h.grid.Height(), 0))
	if dy := y - h.y; dy != 0 {
		h.y = y
		h.grid.Translate(0, dy)
	}
}

// X returns the column of the shape's left edge.
func (h *Head) X() int { return h.x }

// Y returns the row of the shape's top edge.
func (h *Head) Y() int { return h.y }

// Height returns the shape height in rows.
func (h *Head) Height() int { return h.grid.Height() }

// Bounds returns the shape's bounding box.
func (h *Head) Bounds() core.Rect {
	return core.NewRect(h.x, h.y, h.grid.Width(), h.grid.Height())
}

// Glyphs returns the head glyphs.
func (h *Head) Glyphs() []Glyph {
	return h.grid.Glyphs()
}
