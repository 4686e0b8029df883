package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tabmarks/src/safety"
)

func newRemoveCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name-or-id>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			b, err := findBookmark(client, args[0])
			if err != nil {
				return err
			}
			opts := getSafetyOptions(cmd)
			ok, err := safety.Confirm(opts, os.Stdin, stdout, fmt.Sprintf("Remove bookmark %q?", b.Name))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := client.DeleteBookmark(b.ID); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Removed %q\n", b.Name)
			return nil
		},
	}
}
