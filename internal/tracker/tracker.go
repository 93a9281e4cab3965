// Package tracker maintains the row/column/box symbol sets of one
// solving session and answers which symbols remain legal per cell.
package tracker

import (
	"math/bits"

	"svw.info/sudoku-engine/internal/domain"
)

// AllSymbols is the candidate mask with every symbol 1..9 legal.
// Bit v (1-based) represents symbol v; bit 0 is unused.
const AllSymbols uint16 = 0x3FE

// Tracker holds the constraint sets of a single board. It is owned by
// one solving session and is not safe for concurrent use.
type Tracker struct {
	board   *domain.Board
	rowMask [9]uint16
	colMask [9]uint16
	boxMask [9]uint16
}

// BlockIndex maps (row, col) to its 3x3 box, 0..8 in reading order.
func BlockIndex(row, col int) int { return (row/3)*3 + col/3 }

// New builds a tracker over b with empty constraint sets.
// Call Init before using it.
func New(b *domain.Board) *Tracker { return &Tracker{board: b} }

// Init scans all filled cells once and populates the constraint sets.
// It returns false if the board already violates the uniqueness rule;
// the tracker is then unusable for this board.
func (t *Tracker) Init() bool {
	t.rowMask = [9]uint16{}
	t.colMask = [9]uint16{}
	t.boxMask = [9]uint16{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := t.board.Values[r][c]
			if v == 0 {
				continue
			}
			bit := uint16(1) << v
			box := BlockIndex(r, c)
			if t.rowMask[r]&bit != 0 || t.colMask[c]&bit != 0 || t.boxMask[box]&bit != 0 {
				return false
			}
			t.rowMask[r] |= bit
			t.colMask[c] |= bit
			t.boxMask[box] |= bit
		}
	}
	return true
}

// Candidates returns the mask of symbols still legal at (row, col):
// the alphabet minus the union of the three relevant sets. It does
// not look at the cell's own value.
func (t *Tracker) Candidates(row, col int) uint16 {
	used := t.rowMask[row] | t.colMask[col] | t.boxMask[BlockIndex(row, col)]
	return AllSymbols &^ used
}

// Place writes v into (row, col) and adds it to the three sets.
// The caller guarantees v is currently legal there; Place does not
// re-validate.
func (t *Tracker) Place(row, col int, v uint8, o domain.Origin) {
	bit := uint16(1) << v
	t.rowMask[row] |= bit
	t.colMask[col] |= bit
	t.boxMask[BlockIndex(row, col)] |= bit
	t.board.Set(row, col, v, o)
}

// Unplace undoes a Place: clears the cell and removes v from the
// three sets. Used by backtracking for trial and undo.
func (t *Tracker) Unplace(row, col int, v uint8) {
	bit := uint16(1) << v
	t.rowMask[row] &^= bit
	t.colMask[col] &^= bit
	t.boxMask[BlockIndex(row, col)] &^= bit
	t.board.Set(row, col, 0, domain.OriginNone)
}

// RowHas reports whether v is already placed in row r.
func (t *Tracker) RowHas(r int, v uint8) bool { return t.rowMask[r]&(1<<v) != 0 }

// ColHas reports whether v is already placed in column c.
func (t *Tracker) ColHas(c int, v uint8) bool { return t.colMask[c]&(1<<v) != 0 }

// BoxHas reports whether v is already placed in box b.
func (t *Tracker) BoxHas(b int, v uint8) bool { return t.boxMask[b]&(1<<v) != 0 }

// Symbols expands a candidate mask into symbols in ascending order.
func Symbols(mask uint16) []uint8 {
	out := make([]uint8, 0, bits.OnesCount16(mask))
	for v := uint8(1); v <= 9; v++ {
		if mask&(1<<v) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// Count returns the number of symbols in a candidate mask.
func Count(mask uint16) int { return bits.OnesCount16(mask) }

// Single returns the sole symbol of a one-bit mask, or 0 otherwise.
func Single(mask uint16) uint8 {
	if bits.OnesCount16(mask) != 1 {
		return 0
	}
	return uint8(bits.TrailingZeros16(mask))
}
