package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"tabmarks/src/transfer"
)

func newExportCmd(stdout, stderr io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export bookmarks and groups to a portable JSON file",
		Long: `Writes a JSON snapshot of all bookmarks and groups. Group references
are encoded as positions in the exported groups list, not backend IDs, so
the file can be imported into a backend that assigns fresh IDs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			bookmarks, err := client.ListBookmarks()
			if err != nil {
				return err
			}
			groups, err := client.ListGroups()
			if err != nil {
				return err
			}

			payload := transfer.Build(bookmarks, groups)
			path := output
			if path == "" {
				path = transfer.Filename(time.Now())
			}
			if err := transfer.WriteFile(path, payload); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Exported %d bookmarks and %d groups to %s\n",
				len(payload.Bookmarks), len(payload.Groups), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default bookmarks-export-<date>.json)")
	return cmd
}
