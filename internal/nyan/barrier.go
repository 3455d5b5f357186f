package nyan

import "strings"

// DoorHeight is the number of open rows in every barrier.
const DoorHeight = 4

// WallChar is the rune used for wall cells.
const WallChar = '#'

// Rand is the random source used to place doors. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Barrier is a wall column with a door, split into a top and a bottom
// segment. Both segments start at the right edge and scroll left together.
type Barrier struct {
	doorStart int
	top       *Grid
	bottom    *Grid
}

// NewBarrier builds a barrier for a width x height playfield with the door
// start drawn uniformly from [0, height-DoorHeight). When the playfield is
// not taller than the door, the door starts at row 0 and there is no wall.
func NewBarrier(width, height int, rng Rand) *Barrier {
	doorStart := 0
	if span := height - DoorHeight; span > 0 {
		doorStart = rng.Intn(span)
	}

	right := width - 1
	bottomStart := doorStart + DoorHeight

	return &Barrier{
		doorStart: doorStart,
		top:       NewGrid(wallColumn(doorStart), right, 0),
		bottom:    NewGrid(wallColumn(height-bottomStart), right, bottomStart),
	}
}

// wallColumn returns n single-cell wall rows.
func wallColumn(n int) []string {
	if n <= 0 {
		return nil
	}
	return strings.Split(strings.Repeat(string(WallChar), n), "")
}

// Update scrolls both segments one column left.
func (b *Barrier) Update() {
	b.top.Translate(-1, 0)
	b.bottom.Translate(-1, 0)
}

// Glyphs returns the top segment followed by the bottom segment.
func (b *Barrier) Glyphs() []Glyph {
	out := b.top.AppendTo(make([]Glyph, 0, b.top.Len()+b.bottom.Len()))
	return b.bottom.AppendTo(out)
}

// DoorStart returns the first open row.
func (b *Barrier) DoorStart() int { return b.doorStart }

// Top returns the segment above the door.
func (b *Barrier) Top() *Grid { return b.top }

// Bottom returns the segment below the door.
func (b *Barrier) Bottom() *Grid { return b.bottom }

// RightmostX returns the largest column occupied by a wall cell, or -1 once
// the barrier has scrolled off the playfield.
func (b *Barrier) RightmostX() int {
	right := -1
	for _, g := range b.Glyphs() {
		if g.X > right {
			right = g.X
		}
	}
	return right
}

// Exhausted reports whether every wall cell has been clipped.
func (b *Barrier) Exhausted() bool {
	return b.top.Len() == 0 && b.bottom.Len() == 0
}
