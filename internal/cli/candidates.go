package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

// NewCandidatesCommand creates the candidates command.
func NewCandidatesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <row> <col> [grid-file]",
		Short: "List symbols still legal at a cell (0-based coordinates)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("row: %w", err)
			}
			col, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("col: %w", err)
			}
			if !domain.InBounds(row, col) {
				return fmt.Errorf("row/col out of range 0..8")
			}
			b, err := loadBoard(args[2:])
			if err != nil {
				return err
			}
			svc := newService(rootOpts)
			cands, err := svc.Candidates(cmd.Context(), b, row, col)
			if err != nil {
				return err
			}
			if len(cands) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			for i, v := range cands {
				if i > 0 {
					fmt.Fprint(cmd.OutOrStdout(), " ")
				}
				fmt.Fprint(cmd.OutOrStdout(), v)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
