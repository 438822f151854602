package cmd

import (
	"github.com/PolarWolf314/wordtools/internal/configs"
	"github.com/PolarWolf314/wordtools/internal/workflows"
	"github.com/spf13/cobra"
)

var spellcheckDictionary string

func init() {
	spellcheckCmd.Flags().StringVar(&spellcheckDictionary, "dictionary", "", "word list to check against (default from config)")
}

// resetSpellcheckCommandState resets the spellcheck command's global state for testing.
func resetSpellcheckCommandState() {
	spellcheckDictionary = ""
}

var spellcheckCmd = &cobra.Command{
	Use:   "spellcheck <file>",
	Short: "Reports words in a file that are not in the dictionary",
	Long: `Checks every whitespace-separated word of a text file against a dictionary
of whitespace-separated words. Words are compared case-insensitively with
punctuation and digits removed.

The dictionary comes from --dictionary, or from spellcheck.dictionary in the
config file.

Examples:
  wordtools spellcheck essay.txt --dictionary /usr/share/dict/words
  wordtools config init --dictionary /usr/share/dict/words
  wordtools spellcheck essay.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting spellcheck command")
		spinner, cleanup := startSpinner("Checking spelling...", verbose)
		defer cleanup()

		config, err := configs.LoadConfig()
		if err != nil {
			Logger.Errorf("Failed to load config: %v", err)
			spinner.FinalMSG = formatError(err)
			return nil
		}

		opts := workflows.SpellcheckOptions{
			InputPath:      args[0],
			DictionaryPath: config.ResolveDictionary(spellcheckDictionary),
			SkipHistory:    config.History.Disabled,
		}
		Logger.Debugf("Input: %s, Dictionary: %s", opts.InputPath, opts.DictionaryPath)

		result, err := workflows.Spellcheck(cmd.Context(), opts)
		if err != nil {
			Logger.Errorf("Spellcheck failed: %v", err)
			spinner.FinalMSG = formatError(err)
			if isUnexpectedError(err) {
				return err
			}
			return nil
		}

		Logger.Infof("Loaded %d dictionary words, found %d unknown words", result.DictionaryWords, len(result.Unknown))
		spinner.FinalMSG = formatSpellcheckResult(result)
		return nil
	},
}
