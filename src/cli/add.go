package cli

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"tabmarks/src/api"
	"tabmarks/src/urlutil"
)

func newAddCmd(stdout, stderr io.Writer) *cobra.Command {
	var name, tabName string
	var groupNames []string
	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Add a bookmark",
		Long: `Adds a bookmark. The URL is normalized first (scheme-less input gets
https://). When --name is omitted the page title is fetched from the URL;
if that fails the host name is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := urlutil.Normalize(args[0])
			if err != nil {
				return err
			}
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}

			b := api.Bookmark{Name: name, URL: normalized}
			if b.Name == "" {
				b.Name = fetchTitle(normalized)
			}
			if b.Name == "" {
				u, _ := url.Parse(normalized)
				b.Name = u.Host
			}

			if tabName != "" {
				tab, err := findTab(client, tabName)
				if err != nil {
					return err
				}
				b.TabIDs = []string{tab.ID}
			}
			if len(groupNames) > 0 {
				groups, err := client.ListGroups()
				if err != nil {
					return err
				}
				for _, want := range groupNames {
					found := false
					for _, g := range groups {
						if g.Name == want {
							b.GroupIDs = append(b.GroupIDs, g.ID)
							found = true
							break
						}
					}
					if !found {
						return fmt.Errorf("group %q not found", want)
					}
				}
			}

			created, err := client.CreateBookmark(b)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Added %q (%s)\n", created.Name, created.URL)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name (default: page title)")
	cmd.Flags().StringVar(&tabName, "tab", "", "Tab to file the bookmark under")
	cmd.Flags().StringSliceVar(&groupNames, "group", nil, "Group name(s) to add the bookmark to")
	return cmd
}

// fetchTitle grabs the page <title>. Best effort: any failure returns "".
func fetchTitle(rawURL string) string {
	resp, err := http.Get(rawURL)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
