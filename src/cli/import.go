package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tabmarks/src/api"
	"tabmarks/src/safety"
	"tabmarks/src/transfer"
)

func newImportCmd(stdout, stderr io.Writer) *cobra.Command {
	var tabName string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all bookmarks and groups with an exported file",
		Long: `Validates an export file, shows what it contains, and then replaces
every existing bookmark and group with the file's contents. Group
references are rebuilt from their positions in the file. This is
destructive and cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			payload, err := transfer.Validate(raw)
			if err != nil {
				return fmt.Errorf("invalid import file: %w", err)
			}

			fmt.Fprintf(stdout, "Import preview: %d bookmarks, %d groups\n",
				len(payload.Bookmarks), len(payload.Groups))
			fmt.Fprintln(stdout, "This replaces ALL existing bookmarks and groups.")
			opts := getSafetyOptions(cmd)
			ok, err := safety.Confirm(opts, os.Stdin, stdout, "Continue?")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			log := newLogger(cmd)
			client, err := buildClient(cmd, log)
			if err != nil {
				return err
			}
			tabID, err := resolveImportTab(client, tabName)
			if err != nil {
				return err
			}
			res, err := transfer.Apply(client, payload, tabID, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Imported %d groups and %d bookmarks\n",
				res.GroupsCreated, res.BookmarksCreated)
			if res.Failed > 0 {
				fmt.Fprintf(stdout, "%d records failed and were skipped (see log)\n", res.Failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tabName, "tab", "", "Tab to attach imported groups to (default: first tab)")
	return cmd
}

// resolveImportTab picks the tab imported groups land in: the named tab
// (created when missing), else the first existing tab, else a fresh
// "Imported" tab.
func resolveImportTab(client api.Client, name string) (string, error) {
	tabs, err := client.ListTabs()
	if err != nil {
		return "", err
	}
	if name != "" {
		for _, t := range tabs {
			if t.Name == name {
				return t.ID, nil
			}
		}
		created, err := client.CreateTab(api.Tab{Name: name})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	}
	if len(tabs) > 0 {
		return tabs[0].ID, nil
	}
	created, err := client.CreateTab(api.Tab{Name: "Imported"})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}
