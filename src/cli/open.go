package cli

import (
	"fmt"
	"io"

	"github.com/cli/browser"
	"github.com/spf13/cobra"
)

func newOpenCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "open <name-or-id>",
		Short: "Open a bookmark in the browser",
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
			if err := browser.OpenURL(b.URL); err != nil {
				return fmt.Errorf("open %s: %w", b.URL, err)
			}
			fmt.Fprintf(stdout, "Opening %s\n", b.URL)
			return nil
		},
	}
}
