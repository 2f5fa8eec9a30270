package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func overrideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "override <n>",
		Short: "Wrap a numeric dial entry into [0,26) and show its angle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("dial entry must be an integer: %q", args[0])
			}
			r, err := appCtx.Dials.Override(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shift: %d\nAngle: %.4f\n", r.Shift, r.Snapped)
			return nil
		},
	}
}
