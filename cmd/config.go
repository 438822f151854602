package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage WordTools configuration",
	Long: `Provides commands for managing the WordTools configuration file.

Use these commands to:
  - Set the default cipher keyword and dictionary (config init)
  - Display the current settings (config show)

Examples:
  # Use a system word list for spellchecking
  wordtools config init --dictionary /usr/share/dict/words

  # Show the current configuration
  wordtools config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigCommandState resets all config command global variables to their default values for testing.
func resetConfigCommandState() {
	resetConfigInitState()
	resetConfigShowState()
}
