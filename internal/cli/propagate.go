package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

// NewPropagateCommand creates the propagate command.
func NewPropagateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "propagate [grid-file]",
		Short: "Fill every logically forced cell without guessing",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args)
			if err != nil {
				return err
			}
			svc := newService(rootOpts)
			out, st, err := svc.Propagate(cmd.Context(), b)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidBoard) {
					return fmt.Errorf("grid is invalid; nothing propagated")
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderBoard(out))
			if rootOpts.Stats {
				fmt.Fprintf(cmd.ErrOrStderr(), "steps=%d dur=%v\n", st.Nodes, st.Duration)
			}
			return nil
		},
		Args: cobra.MaximumNArgs(1),
	}
}
