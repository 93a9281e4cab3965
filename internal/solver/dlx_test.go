package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

func TestDLXSolveUnder1s(t *testing.T) {
	in := &domain.Board{Values: sample}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewDLXSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	checkSolved(t, sample, out)
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
}

func TestDLXSolvesHardPuzzle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, _, err := NewDLXSolver().Solve(ctx, &domain.Board{Values: hard})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	checkSolved(t, hard, out)
}

func TestDLXAgreesWithBacktrackingOnUniquePuzzle(t *testing.T) {
	// the sample has a unique solution, so the engines must agree
	a, _, err := NewDLXSolver().Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("DLX failed: %v", err)
	}
	b, _, err := NewBacktrackingSolver().Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("backtracking failed: %v", err)
	}
	if a.Values != b.Values {
		t.Fatal("engines disagree on a uniquely solvable puzzle")
	}
}

func TestDLXReportsNoSolution(t *testing.T) {
	_, _, err := NewDLXSolver().Solve(context.Background(), unsolvable())
	if !errors.Is(err, domain.ErrNoSolution) {
		t.Fatalf("want ErrNoSolution, got %v", err)
	}
}

func TestDLXRejectsInvalidBoard(t *testing.T) {
	b := &domain.Board{}
	b.Values[6][0] = 2
	b.Values[8][2] = 2 // same box
	_, _, err := NewDLXSolver().Solve(context.Background(), b)
	if !errors.Is(err, domain.ErrInvalidBoard) {
		t.Fatalf("want ErrInvalidBoard, got %v", err)
	}
}

func TestDLXDoesNotMutateInput(t *testing.T) {
	in := &domain.Board{Values: sample}
	if _, _, err := NewDLXSolver().Solve(context.Background(), in); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if in.Values != sample {
		t.Fatal("input board was mutated")
	}
}
