package nyan

// Character composes the head and its trail.
type Character struct {
	head  *Head
	trail *Trail
}

// NewCharacter creates a character centered near (x, y).
func NewCharacter(x, y, playfieldHeight int) *Character {
	head := NewHead(x, y, playfieldHeight)
	return &Character{
		head:  head,
		trail: NewTrail(head),
	}
}

// Update advances the trail by one tick.
func (c *Character) Update() {
	c.trail.Regenerate()
}

// Glyphs returns head glyphs followed by trail glyphs.
func (c *Character) Glyphs() []Glyph {
	out := c.head.grid.AppendTo(make([]Glyph, 0, c.head.grid.Len()+c.trail.grid.Len()))
	return c.trail.grid.AppendTo(out)
}

// MoveUp forwards to the head.
func (c *Character) MoveUp() { c.head.MoveUp() }

// MoveDown forwards to the head.
func (c *Character) MoveDown() { c.head.MoveDown() }

// Head returns the character's head.
func (c *Character) Head() *Head { return c.head }

// Trail returns the character's trail.
func (c *Character) Trail() *Trail { return c.trail }
