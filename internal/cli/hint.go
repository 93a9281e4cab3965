package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

// NewHintCommand creates the hint command.
func NewHintCommand(rootOpts *RootOptions) *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "hint [grid-file]",
		Short: "Suggest the next logical step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(args)
			if err != nil {
				return err
			}
			max := domain.StrategySingles
			if tier == "advanced" {
				max = domain.StrategyAdvanced
			}
			svc := newService(rootOpts)
			h, ok, err := svc.Hint(cmd.Context(), b, max)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no hint found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.Message)
			for _, cc := range h.Cells {
				fmt.Fprintf(cmd.OutOrStdout(), "  row %d, col %d\n", cc.Row, cc.Col)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "singles", "max strategy tier: singles|advanced")

	return cmd
}
