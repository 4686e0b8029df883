package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the root cobra command for the tabmarks CLI.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabmarks",
		Short: "Organize bookmarks into workspace tabs and color-coded groups",

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	// Subcommands
	cmd.AddCommand(newVersionCmd(stdout))
	cmd.AddCommand(newTabCmd(stdout, stderr))
	cmd.AddCommand(newGroupCmd(stdout, stderr))
	cmd.AddCommand(newAddCmd(stdout, stderr))
	cmd.AddCommand(newListCmd(stdout, stderr))
	cmd.AddCommand(newRemoveCmd(stdout, stderr))
	cmd.AddCommand(newOpenCmd(stdout, stderr))
	cmd.AddCommand(newExportCmd(stdout, stderr))
	cmd.AddCommand(newImportCmd(stdout, stderr))

	return cmd
}

// Execute runs the CLI with the process stdio.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
