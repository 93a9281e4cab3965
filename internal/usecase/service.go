package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Service aggregates the engine's public operations for the hosts.
type Service struct {
	Solver     ports.Solver
	Propagator ports.Propagator
	Validator  ports.Validator
	Hinter     ports.Hinter
}

func NewService(s ports.Solver, p ports.Propagator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Propagator: p, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Propagate(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Propagator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Propagator.Propagate(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Candidates(ctx context.Context, b *domain.Board, row, col int) ([]uint8, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	return u.Validator.Candidates(ctx, b, row, col)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}
