package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// quantize <angle>: negative angles go after "--", e.g. quantize -- -10.
func quantizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quantize <angle>",
		Short: "Show where an angle in degrees lands on the dial grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angle, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("angle must be a number: %q", args[0])
			}
			r, err := appCtx.Dials.Quantize(cmd.Context(), angle)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Angle: %g\nNormalized: %.4f\nShift: %d\nSnapped: %.4f\n",
				r.Angle, r.Normalized, r.Shift, r.Snapped)
			return nil
		},
	}
}
