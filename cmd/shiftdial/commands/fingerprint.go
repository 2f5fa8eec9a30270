package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shiftdial/internal/crypto"
	"shiftdial/internal/dial"
	"shiftdial/internal/schedule"
)

func fingerprintCmd() *cobra.Command {
	var dials string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the key schedule fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := dial.ParseSlots(dials)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(schedule.Build(slots)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dials, "dials", "k", "", `dial entries in board order, e.g. "3,,0,25"`)
	return cmd
}
