package commands

import (
	"github.com/spf13/cobra"

	"shiftdial/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dial board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), tui.New(appCtx.Ciphers, cfg.Dials, cfg.IndexingMode()))
		},
	}
}
