package domain

import "errors"

// ErrInvalidBoard means the input already breaks the row/col/box
// uniqueness rule; the engine refuses to run on such input.
var ErrInvalidBoard = errors.New("board violates row/col/box uniqueness")

// ErrNoSolution means exhaustive search found no complete assignment.
var ErrNoSolution = errors.New("board has no solution")
