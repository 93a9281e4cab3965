package solver

import (
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/tracker"
)

// BacktrackingSolver is a recursive solver with minimum-remaining-
// values cell ordering over the constraint tracker.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// pickCell chooses the empty cell with the fewest legal candidates.
// Ties break on the first encountered (lowest row, then column), and
// a one-candidate cell ends the scan immediately. found is false when
// no empty cell remains; a zero mask means a dead end.
func pickCell(t *tracker.Tracker, b *domain.Board) (row, col int, mask uint16, found bool) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.Empty(r, c) {
				continue
			}
			m := t.Candidates(r, c)
			n := tracker.Count(m)
			if !found || n < best {
				row, col, mask, best = r, c, m, n
				found = true
				if n <= 1 {
					return
				}
			}
		}
	}
	return
}
