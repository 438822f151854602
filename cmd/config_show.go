package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/wordtools/internal/cipher"
	"github.com/PolarWolf314/wordtools/internal/configs"
	"github.com/PolarWolf314/wordtools/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the effective WordTools configuration, including defaults for
values missing from the configuration file.

Examples:
  wordtools config show
  wordtools config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		config, err := configs.LoadConfig()
		if err != nil {
			fmt.Println(formatError(err))
			return nil
		}

		if configShowJSON {
			data, err := json.MarshalIndent(struct {
				Path       string `json:"path"`
				Keyword    string `json:"keyword"`
				Alphabet   string `json:"alphabet"`
				Dictionary string `json:"dictionary"`
				Filter     string `json:"filter"`
				History    bool   `json:"history"`
			}{
				Path:       configs.ConfigPath(),
				Keyword:    config.Cipher.Keyword,
				Alphabet:   cipher.GenerateAlphabet(config.Cipher.Keyword).String(),
				Dictionary: config.Spellcheck.Dictionary,
				Filter:     config.Picker.Filter,
				History:    !config.History.Disabled,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		dictionary := config.Spellcheck.Dictionary
		if dictionary == "" {
			dictionary = ui.Muted.Sprint("not set")
		} else {
			dictionary = ui.Path.Sprint(dictionary)
		}
		historyState := "enabled"
		if config.History.Disabled {
			historyState = "disabled"
		}

		fmt.Println("Configuration file: " + ui.Path.Sprint(configs.ConfigPath()))
		fmt.Println("  Keyword:    " + ui.Highlight.Sprint(config.Cipher.Keyword))
		fmt.Println("  Alphabet:   " + cipher.GenerateAlphabet(config.Cipher.Keyword).String())
		fmt.Println("  Dictionary: " + dictionary)
		fmt.Println("  Filter:     " + ui.Highlight.Sprint(config.Picker.Filter))
		fmt.Println("  History:    " + historyState)
		return nil
	},
}
