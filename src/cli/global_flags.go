package cli

import (
	"github.com/spf13/cobra"

	"tabmarks/src/safety"
)

// addGlobalFlags adds persistent flags to the root command.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("dry-run", false, "Show planned actions without making changes")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to prompts and run non-interactively")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "Config file path (default ~/.config/tabmarks/config.yaml)")
	cmd.PersistentFlags().String("server", "", "Backend base URL (overrides config)")
	cmd.PersistentFlags().String("data-dir", "", "Local store directory (overrides config)")
}

// getSafetyOptions reads global flags into a safety.Options struct.
func getSafetyOptions(cmd *cobra.Command) safety.Options {
	dry, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	return safety.Options{DryRun: dry, Yes: yes}
}
