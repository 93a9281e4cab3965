package validator

import (
	"context"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/tracker"
)

// FastValidator performs pure row/col/box uniqueness checks and
// per-cell candidate queries. It never mutates the board.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans all filled cells once. It returns ok=false together
// with the coordinates of every cell that repeats a symbol already
// seen in its row, column, or box, so a display layer can highlight
// them.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := uint16(0)
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := uint16(0)
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := uint16(0)
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val == 0 {
						continue
					}
					bit := uint16(1) << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Candidates returns the symbols still legal at (row, col), ascending.
// A filled cell has no candidates. The board must be valid; the
// coordinates are range-checked here so the engine can assume
// well-formed input past this boundary.
func (v *FastValidator) Candidates(ctx context.Context, b *domain.Board, row, col int) ([]uint8, error) {
	if !domain.InBounds(row, col) {
		return nil, fmt.Errorf("cell (%d,%d) out of range", row, col)
	}
	t := tracker.New(b.Clone())
	if !t.Init() {
		return nil, domain.ErrInvalidBoard
	}
	if !b.Empty(row, col) {
		return []uint8{}, nil
	}
	return tracker.Symbols(t.Candidates(row, col)), nil
}
