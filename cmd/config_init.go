package cmd

import (
	"fmt"

	"github.com/PolarWolf314/wordtools/internal/configs"
	kerrors "github.com/PolarWolf314/wordtools/internal/errors"
	"github.com/PolarWolf314/wordtools/internal/ui"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	configInitKeyword        string
	configInitDictionary     string
	configInitFilter         string
	configInitDisableHistory bool
)

func init() {
	configInitCmd.Flags().StringVarP(&configInitKeyword, "keyword", "k", "", "default cipher keyword")
	configInitCmd.Flags().StringVar(&configInitDictionary, "dictionary", "", "default spellcheck dictionary")
	configInitCmd.Flags().StringVar(&configInitFilter, "filter", "", "file filter for the interactive picker, e.g. \"*.txt\"")
	configInitCmd.Flags().BoolVar(&configInitDisableHistory, "disable-history", false, "stop recording operations in the history log")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitKeyword = ""
	configInitDictionary = ""
	configInitFilter = ""
	configInitDisableHistory = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the configuration file",
	Long: `Writes the WordTools configuration file, keeping any existing values that
are not overridden by flags.

Examples:
  wordtools config init
  wordtools config init --keyword owl --dictionary ~/words.txt
  wordtools config init --filter "**/*.md"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		config, err := configs.LoadConfig()
		if err != nil {
			fmt.Println(formatError(err))
			return nil
		}

		flags := cmd.Flags()
		if flags.Changed("keyword") {
			config.Cipher.Keyword = configInitKeyword
		}
		if flags.Changed("dictionary") {
			config.Spellcheck.Dictionary = configInitDictionary
		}
		if flags.Changed("filter") {
			if !doublestar.ValidatePattern(configInitFilter) {
				fmt.Println(formatError(fmt.Errorf("%w: invalid filter %q", kerrors.ErrInvalidConfig, configInitFilter)))
				return nil
			}
			config.Picker.Filter = configInitFilter
		}
		if flags.Changed("disable-history") {
			config.History.Disabled = configInitDisableHistory
		}

		Logger.Debugf("Saving config %+v", *config)
		if err := configs.SaveConfig(config); err != nil {
			return Logger.ErrorfAndReturn("Failed to save config: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Configuration saved to " + ui.Path.Sprint(configs.ConfigPath()))
		return nil
	},
}
