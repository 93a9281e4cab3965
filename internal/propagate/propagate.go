// Package propagate fills every logically forced cell of a board
// without guessing, leaving only genuinely ambiguous cells for search.
package propagate

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/tracker"
)

// FixedPoint applies naked singles, hidden singles, and box/line
// reduction in rounds until a full round changes nothing.
type FixedPoint struct{}

func New() *FixedPoint { return &FixedPoint{} }

// roundCap bounds the fixed-point loop. Each successful deduction
// strictly shrinks total candidate cardinality, so a conforming run
// converges long before this; tripping the cap is an internal fault.
const roundCap = 81

var errRoundCap = errors.New("propagation did not converge within round cap")

// session is the per-call working state: the board under mutation,
// its constraint sets, and a candidate mask per empty cell.
type session struct {
	trk   *tracker.Tracker
	board *domain.Board
	cands [9][9]uint16
	steps int
}

// Propagate returns a new board with all forced cells filled and
// tagged OriginSolver; the input is not mutated. On an invalid input
// board it returns a copy unchanged along with ErrInvalidBoard.
func (p *FixedPoint) Propagate(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	out := b.Clone()
	out.NormalizeOrigins()

	s := &session{board: out, trk: tracker.New(out)}
	if !s.trk.Init() {
		return out, ports.Stats{Duration: time.Since(start)}, domain.ErrInvalidBoard
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Empty(r, c) {
				s.cands[r][c] = s.trk.Candidates(r, c)
			}
		}
	}

	for round := 0; ; round++ {
		if round >= roundCap {
			return out, ports.Stats{Nodes: s.steps, Duration: time.Since(start)}, errRoundCap
		}
		if ctx.Err() != nil {
			return out, ports.Stats{Nodes: s.steps, Duration: time.Since(start)}, ctx.Err()
		}
		changed := s.nakedSingles()
		changed = s.hiddenSingles() || changed
		changed = s.boxLineReduction() || changed
		if !changed {
			break
		}
	}
	return out, ports.Stats{Nodes: s.steps, Duration: time.Since(start)}, nil
}

// fill commits a deduced value: writes the cell, updates the
// constraint sets, drops the cell's candidate entry, and clears the
// symbol from every peer's candidates.
func (s *session) fill(r, c int, v uint8) {
	s.trk.Place(r, c, v, domain.OriginSolver)
	s.cands[r][c] = 0
	s.steps++

	bit := uint16(1) << v
	for i := 0; i < 9; i++ {
		s.cands[r][i] &^= bit
		s.cands[i][c] &^= bit
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			s.cands[br+dr][bc+dc] &^= bit
		}
	}
}

// nakedSingles fills every empty cell whose candidate set has exactly
// one member. Scan order is rows then columns, so runs are
// deterministic for identical input.
func (s *session) nakedSingles() bool {
	changed := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !s.board.Empty(r, c) {
				continue
			}
			if v := tracker.Single(s.cands[r][c]); v != 0 {
				s.fill(r, c, v)
				changed = true
			}
		}
	}
	return changed
}

// hiddenSingles fills, for each row, column, and box, every symbol
// that has exactly one eligible cell left in that unit. The cell may
// still list other candidates; the symbol is uniquely positioned.
func (s *session) hiddenSingles() bool {
	changed := false
	for r := 0; r < 9; r++ {
		for v := uint8(1); v <= 9; v++ {
			if s.trk.RowHas(r, v) {
				continue
			}
			spot, n := -1, 0
			for c := 0; c < 9; c++ {
				if s.board.Empty(r, c) && s.cands[r][c]&(1<<v) != 0 {
					spot, n = c, n+1
				}
			}
			if n == 1 {
				s.fill(r, spot, v)
				changed = true
			}
		}
	}
	for c := 0; c < 9; c++ {
		for v := uint8(1); v <= 9; v++ {
			if s.trk.ColHas(c, v) {
				continue
			}
			spot, n := -1, 0
			for r := 0; r < 9; r++ {
				if s.board.Empty(r, c) && s.cands[r][c]&(1<<v) != 0 {
					spot, n = r, n+1
				}
			}
			if n == 1 {
				s.fill(spot, c, v)
				changed = true
			}
		}
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for v := uint8(1); v <= 9; v++ {
			if s.trk.BoxHas(b, v) {
				continue
			}
			sr, sc, n := -1, -1, 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br+dr, bc+dc
					if s.board.Empty(r, c) && s.cands[r][c]&(1<<v) != 0 {
						sr, sc, n = r, c, n+1
					}
				}
			}
			if n == 1 {
				s.fill(sr, sc, v)
				changed = true
			}
		}
	}
	return changed
}

// boxLineReduction prunes candidates only: if every cell of a box
// that can hold a symbol lies in one row (or column) of the box, the
// symbol cannot appear in that line outside the box.
func (s *session) boxLineReduction() bool {
	changed := false
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for v := uint8(1); v <= 9; v++ {
			if s.trk.BoxHas(b, v) {
				continue
			}
			bit := uint16(1) << v
			row, col, n := -1, -1, 0
			sameRow, sameCol := true, true
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br+dr, bc+dc
					if !s.board.Empty(r, c) || s.cands[r][c]&bit == 0 {
						continue
					}
					if n == 0 {
						row, col = r, c
					} else {
						if r != row {
							sameRow = false
						}
						if c != col {
							sameCol = false
						}
					}
					n++
				}
			}
			if n < 2 {
				continue // none, or a hidden single handled elsewhere
			}
			if sameRow {
				for c := 0; c < 9; c++ {
					if c/3 == bc/3 {
						continue
					}
					if s.cands[row][c]&bit != 0 {
						s.cands[row][c] &^= bit
						s.steps++
						changed = true
					}
				}
			}
			if sameCol {
				for r := 0; r < 9; r++ {
					if r/3 == br/3 {
						continue
					}
					if s.cands[r][col]&bit != 0 {
						s.cands[r][col] &^= bit
						s.steps++
						changed = true
					}
				}
			}
		}
	}
	return changed
}
