package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shiftdial/internal/crypto"
	"shiftdial/internal/dial"
	"shiftdial/internal/schedule"
)

func scheduleCmd() *cobra.Command {
	var dials string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the key schedule assembled from the active dials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := dial.ParseSlots(dials)
			if err != nil {
				return err
			}
			s := schedule.Build(slots)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dials: %s\n", dial.FormatSlots(slots))
			if s.Len() == 0 {
				fmt.Fprintln(out, "Schedule: (empty, letters pass through)")
			} else {
				fmt.Fprintf(out, "Schedule: %s\n", schedule.Format(s))
			}
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(s))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dials, "dials", "k", "", `dial entries in board order, e.g. "3,,0,25"`)
	return cmd
}
