package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"shiftdial/internal/dial"
	"shiftdial/internal/domain"
)

// encode|decode [text...]: apply the --dials schedule to text, or to stdin
// when no text is given.
func cipherCmd(dir domain.Direction) *cobra.Command {
	var (
		dials   string
		showKey bool
	)
	alias, short := "cipher", "Cipher text with the active dials"
	if dir == domain.Decode {
		alias, short = "decipher", "Decipher text with the active dials"
	}

	cmd := &cobra.Command{
		Use:     string(dir) + " [text...]",
		Aliases: []string{alias},
		Short:   short,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := dial.ParseSlots(dials)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			trimNewline := false
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
				trimNewline = strings.HasSuffix(text, "\n")
			}

			res, err := appCtx.Ciphers.Apply(cmd.Context(), domain.CipherRequest{
				Text:      text,
				Slots:     slots,
				Direction: dir,
				Indexing:  cfg.IndexingMode(),
			})
			if err != nil {
				return err
			}

			out := res.Output
			if trimNewline {
				out = strings.TrimSuffix(out, "\n")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			if showKey {
				fmt.Fprintf(cmd.ErrOrStderr(), "Key: %s (%d active dials)\n", res.Fingerprint, res.Schedule.Len())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dials, "dials", "k", "", `dial entries in board order, e.g. "3,,0,25"`)
	cmd.Flags().BoolVar(&showKey, "show-key", false, "print the key fingerprint to stderr")
	return cmd
}
