package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [grid-file]",
		Short: "Check a grid for row/column/box conflicts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args)
			if err != nil {
				return err
			}
			svc := newService(rootOpts)
			ok, conflicts, err := svc.Validate(cmd.Context(), b)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			for _, cc := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "  conflict at row %d, col %d\n", cc.Row, cc.Col)
			}
			return nil
		},
	}
}
