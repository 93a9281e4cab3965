package domain

// Board holds current values and where each value came from.
// A zero value means the cell is empty; filled cells hold 1..9.
type Board struct {
	Values [9][9]uint8  `json:"board"`
	Origin [9][9]Origin `json:"origin,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Value    uint8        `json:"value,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Empty reports whether the cell at (r, c) holds no value.
func (b *Board) Empty(r, c int) bool { return b.Values[r][c] == 0 }

// Set places v at (r, c) with the given origin. Clearing a cell
// (v == 0) resets the origin as well.
func (b *Board) Set(r, c int, v uint8, o Origin) {
	b.Values[r][c] = v
	if v == 0 {
		o = OriginNone
	}
	b.Origin[r][c] = o
}

// NormalizeOrigins tags filled cells without provenance as supplied
// by the caller. Provenance never influences solving.
func (b *Board) NormalizeOrigins() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 && b.Origin[r][c] == OriginNone {
				b.Origin[r][c] = OriginUser
			}
		}
	}
}

// InBounds reports whether (r, c) names a cell of the 9x9 grid.
func InBounds(r, c int) bool { return r >= 0 && r < 9 && c >= 0 && c < 9 }

// ValidValue reports whether v is empty (0) or one of the nine symbols.
func ValidValue(v uint8) bool { return v <= 9 }
