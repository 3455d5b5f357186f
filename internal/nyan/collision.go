package nyan

import "github.com/kamstrup/intmap"

// Collides reports whether any head glyph shares a cell with any barrier
// glyph. It compares every pair, which is O(len(head) * len(barrier)).
func Collides(head, barrier []Glyph) bool {
	for _, b := range barrier {
		for _, h := range head {
			if b.SameCell(h) {
				return true
			}
		}
	}
	return false
}

// CellIndex is a hashed set of occupied cells. It answers the same question
// as Collides in O(len(barrier) + len(head)).
type CellIndex struct {
	cells *intmap.Map[uint64, struct{}]
}

// NewCellIndex indexes the cells occupied by glyphs.
func NewCellIndex(glyphs []Glyph) *CellIndex {
	idx := &CellIndex{cells: intmap.New[uint64, struct{}](len(glyphs))}
	for _, g := range glyphs {
		idx.cells.Put(cellKey(g.X, g.Y), struct{}{})
	}
	return idx
}

// Occupied reports whether (x, y) is in the index.
func (idx *CellIndex) Occupied(x, y int) bool {
	_, ok := idx.cells.Get(cellKey(x, y))
	return ok
}

// Hits reports whether any of glyphs lands on an indexed cell.
func (idx *CellIndex) Hits(glyphs []Glyph) bool {
	for _, g := range glyphs {
		if idx.Occupied(g.X, g.Y) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct indexed cells.
func (idx *CellIndex) Len() int {
	return idx.cells.Len()
}

func cellKey(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}
