// Package cli implements the sudoku-cli command tree.
package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/propagate"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	Engine  string
	Timeout time.Duration
	Stats   bool
}

// NewRootCommand creates the sudoku-cli root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sudoku-cli",
		Short: "Solve, propagate, and inspect 9x9 Sudoku grids",
		Long: `Solve, propagate, and inspect 9x9 Sudoku grids.

Grids are read from a file argument or stdin as 81 characters:
digits 1-9 for filled cells, '.' or '0' for empty ones. Whitespace
is ignored, so one row per line works too.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Engine, "engine", "backtrack", "solve engine: backtrack|dlx")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "search budget for solve (0 = none)")
	cmd.PersistentFlags().BoolVar(&opts.Stats, "stats", false, "print node/step counts to stderr")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewPropagateCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewCandidatesCommand(opts))
	cmd.AddCommand(NewHintCommand(opts))

	return cmd
}

func newService(opts *RootOptions) *usecase.Service {
	var s ports.Solver
	switch strings.ToLower(opts.Engine) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}
	return usecase.NewService(s, propagate.New(), validator.New(), hint.NewSingles())
}
