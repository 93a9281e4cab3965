package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Find one complete valid assignment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if rootOpts.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, rootOpts.Timeout)
				defer cancel()
			}
			svc := newService(rootOpts)
			out, st, err := svc.Solve(ctx, b)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInvalidBoard):
					return fmt.Errorf("grid is invalid")
				case errors.Is(err, domain.ErrNoSolution):
					return fmt.Errorf("no solution exists")
				case errors.Is(err, context.DeadlineExceeded):
					return fmt.Errorf("search exceeded %v budget", rootOpts.Timeout)
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderBoard(out))
			if rootOpts.Stats {
				fmt.Fprintf(cmd.ErrOrStderr(), "nodes=%d dur=%v\n", st.Nodes, st.Duration)
			}
			return nil
		},
	}
}
