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

func newTabCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{Use: "tab", Short: "Manage workspace tabs"}
	cmd.AddCommand(newTabListCmd(stdout, stderr))
	cmd.AddCommand(newTabAddCmd(stdout, stderr))
	cmd.AddCommand(newTabRemoveCmd(stdout, stderr))
	return cmd
}

func newTabListCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspace tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			tabs, err := client.ListTabs()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
			for _, t := range tabs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Color)
			}
			return tw.Flush()
		},
	}
}

func newTabAddCmd(stdout, stderr io.Writer) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a workspace tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			created, err := client.CreateTab(api.Tab{Name: args[0], Color: color})
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Created tab %q (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "Tab color, e.g. #10b981")
	return cmd
}

func newTabRemoveCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a workspace tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			tab, err := findTab(client, args[0])
			if err != nil {
				return err
			}
			opts := getSafetyOptions(cmd)
			ok, err := safety.Confirm(opts, os.Stdin, stdout, fmt.Sprintf("Remove tab %q?", tab.Name))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := client.DeleteTab(tab.ID); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Removed tab %q\n", tab.Name)
			return nil
		},
	}
}
