package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tabmarks/src/api"
	"tabmarks/src/safety"
)

func newGroupCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{Use: "group", Short: "Manage bookmark groups"}
	cmd.AddCommand(newGroupListCmd(stdout, stderr))
	cmd.AddCommand(newGroupAddCmd(stdout, stderr))
	cmd.AddCommand(newGroupRemoveCmd(stdout, stderr))
	return cmd
}

func newGroupListCmd(stdout, stderr io.Writer) *cobra.Command {
	var tabName string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups, optionally scoped to one tab",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
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
				kept := groups[:0]
				for _, g := range groups {
					if g.TabID == tab.ID {
						kept = append(kept, g)
					}
				}
				groups = kept
			}
			tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tTAB")
			for _, g := range groups {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.ID, g.Name, g.Color, g.TabID)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&tabName, "tab", "", "Only show groups in this tab")
	return cmd
}

func newGroupAddCmd(stdout, stderr io.Writer) *cobra.Command {
	var color, tabName string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a group in a tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			tab, err := findTab(client, tabName)
			if err != nil {
				return err
			}
			groups, err := client.ListGroups()
			if err != nil {
				return err
			}
			position := 0
			for _, g := range groups {
				if g.TabID == tab.ID {
					position++
				}
			}
			created, err := client.CreateGroup(api.Group{
				Name:     args[0],
				Color:    color,
				TabID:    tab.ID,
				Position: position,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Created group %q in tab %q\n", created.Name, tab.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "#6b7280", "Group color, e.g. #10b981")
	cmd.Flags().StringVar(&tabName, "tab", "", "Owning tab (default: first tab)")
	return cmd
}

func newGroupRemoveCmd(stdout, stderr io.Writer) *cobra.Command {
	var tabName string
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			groups, err := client.ListGroups()
			if err != nil {
				return err
			}
			var target *api.Group
			for i, g := range groups {
				if g.Name != args[0] {
					continue
				}
				if tabName != "" {
					tab, err := findTab(client, tabName)
					if err != nil {
						return err
					}
					if g.TabID != tab.ID {
						continue
					}
				}
				target = &groups[i]
				break
			}
			if target == nil {
				return fmt.Errorf("group %q not found", args[0])
			}
			opts := getSafetyOptions(cmd)
			ok, err := safety.Confirm(opts, os.Stdin, stdout, fmt.Sprintf("Remove group %q?", target.Name))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := client.DeleteGroup(target.ID); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Removed group %q\n", target.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&tabName, "tab", "", "Disambiguate by owning tab")
	return cmd
}
