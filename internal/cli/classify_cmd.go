package cli

import (
	"fmt"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "classify EXPR...",
		Short: "Print the shape of an expression",
		Long: `Print the shape of an expression: minute, hour, day, week, month or year.

The expression may be given as one quoted argument or as five separate
arguments. Malformed and unsupported expressions are errors.`,
		Example: `  cronpick classify "0 5 * * 1,2"
  cronpick classify 0 5 '*' '*' 1,2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := joinExprArgs(args)
			shape, err := cronexpr.Classify(input)
			if err != nil {
				return err
			}
			if quiet {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), shape)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only set the exit status")
	return cmd
}
