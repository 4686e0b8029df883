package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"tabmarks/src/api"
)

func newListCmd(stdout, stderr io.Writer) *cobra.Command {
	var tabName, output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
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
			if tabName != "" {
				tab, err := findTab(client, tabName)
				if err != nil {
					return err
				}
				kept := bookmarks[:0]
				for _, b := range bookmarks {
					for _, id := range b.TabIDs {
						if id == tab.ID {
							kept = append(kept, b)
							break
						}
					}
				}
				bookmarks = kept
			}

			switch output {
			case "json":
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(bookmarks)
			case "table", "":
				renderBookmarks(stdout, bookmarks, groups)
				return nil
			default:
				return fmt.Errorf("unsupported --output: %s", output)
			}
		},
	}
	cmd.Flags().StringVar(&tabName, "tab", "", "Only show bookmarks in this tab")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

func renderBookmarks(w io.Writer, bookmarks []api.Bookmark, groups []api.Group) {
	byID := make(map[string]api.Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NAME", "URL", "GROUPS")
	for _, b := range bookmarks {
		var cells []string
		for _, id := range b.GroupIDs {
			g, ok := byID[id]
			if !ok {
				continue
			}
			cells = append(cells, lipgloss.NewStyle().
				Foreground(lipgloss.Color(g.Color)).
				Render(g.Name))
		}
		t.Row(b.Name, b.URL, strings.Join(cells, " "))
	}
	fmt.Fprintln(w, t.String())
}
