package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds one complete valid assignment, or reports that none
// exists (domain.ErrNoSolution) or that the input was invalid
// (domain.ErrInvalidBoard). The input board is never mutated.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Propagator fills every logically forced cell and returns the new
// board; the input is never mutated.
type Propagator interface {
	Propagate(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) and
// candidate queries for display hints.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
	Candidates(ctx context.Context, b *domain.Board, row, col int) ([]uint8, error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}
