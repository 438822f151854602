package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/wordtools/internal/configs"
	"github.com/PolarWolf314/wordtools/internal/menu"
	"github.com/PolarWolf314/wordtools/internal/ui"
	"github.com/PolarWolf314/wordtools/internal/utils"
	"github.com/PolarWolf314/wordtools/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	menuPlain      bool
	menuKeyword    string
	menuDictionary string
)

func init() {
	menuCmd.Flags().BoolVar(&menuPlain, "plain", false, "use line prompts instead of interactive forms")
	menuCmd.Flags().StringVarP(&menuKeyword, "keyword", "k", "", "keyword for encrypt and decrypt (default from config, else FEATHER)")
	menuCmd.Flags().StringVar(&menuDictionary, "dictionary", "", "word list for spellcheck (default from config)")
}

// resetMenuCommandState resets the menu command's global state for testing.
func resetMenuCommandState() {
	menuPlain = false
	menuKeyword = ""
	menuDictionary = ""
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Opens the interactive menu",
	Long: `Opens a menu offering spellcheck, encrypt, decrypt and exit, and keeps
offering it until you choose exit. Files are chosen with a file picker, or
with numbered line prompts when --plain is set or the terminal is not
interactive.

Running wordtools without a command opens the same menu.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunMenu(cmd)
	},
}

// RunMenu runs the interactive menu loop on cmd's input and output.
func RunMenu(cmd *cobra.Command) error {
	Logger.Infof("Starting interactive menu")

	config, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), formatError(err))
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
	}

	var prompter menu.Prompter
	if !menuPlain && !utils.IsInteractive() {
		Logger.WarnfAlways("Not running in a terminal, falling back to line prompts")
	}
	if menuPlain || !utils.IsInteractive() {
		Logger.Debugf("Using line prompts with filter %q", config.Picker.Filter)
		prompter = menu.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout(), wd, config.Picker.Filter)
	} else {
		Logger.Debugf("Using interactive forms with filter %q", config.Picker.Filter)
		prompter = &menu.FormPrompter{Dir: wd, Filter: config.Picker.Filter}
	}

	loop := &menu.Loop{
		Prompter: prompter,
		Handler:  newMenuHandler(config),
		Out:      cmd.OutOrStdout(),
		Banner:   ui.Banner("WordTools"),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return loop.Run(ctx)
}

// newMenuHandler runs menu requests through the workflows and renders the outcome.
func newMenuHandler(config *configs.Config) menu.Handler {
	return func(ctx context.Context, req menu.Request) string {
		Logger.Debugf("Menu request: %+v", req)

		switch req.Operation {
		case menu.Spellcheck:
			result, err := workflows.Spellcheck(ctx, workflows.SpellcheckOptions{
				InputPath:      req.InputPath,
				DictionaryPath: config.ResolveDictionary(menuDictionary),
				SkipHistory:    config.History.Disabled,
			})
			if err != nil {
				return formatError(err)
			}
			return formatSpellcheckResult(result)

		case menu.Encrypt, menu.Decrypt:
			opts := workflows.CipherOptions{
				InputPath:   req.InputPath,
				OutputPath:  req.OutputPath,
				Keyword:     config.ResolveKeyword(menuKeyword),
				SkipHistory: config.History.Disabled,
			}
			run := workflows.Encrypt
			if req.Operation == menu.Decrypt {
				run = workflows.Decrypt
			}
			result, err := run(ctx, opts)
			if err != nil {
				return formatError(err)
			}
			return formatCipherResult(result)
		}

		return formatError(fmt.Errorf("unsupported operation %v", req.Operation))
	}
}
