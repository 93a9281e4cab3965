package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/tracker"
)

// Solve finds one complete valid assignment of the empty cells.
// Candidates are tried in ascending symbol order with explicit undo,
// and the context is checked between candidate trials so callers can
// impose an external time budget on pathological inputs.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	out := b.Clone()
	out.NormalizeOrigins()

	trk := tracker.New(out)
	if !trk.Init() {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrInvalidBoard
	}

	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, mask, found := pickCell(trk, out)
		if !found {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			if mask&(1<<v) == 0 {
				continue
			}
			nodes++
			trk.Place(r, c, v, domain.OriginSolver)
			if dfs() {
				return true
			}
			trk.Unplace(r, c, v)
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrNoSolution
	}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
