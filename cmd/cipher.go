package cmd

import (
	"context"

	"github.com/PolarWolf314/wordtools/internal/cipher"
	"github.com/PolarWolf314/wordtools/internal/configs"
	"github.com/PolarWolf314/wordtools/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptKeyword string
	decryptKeyword string
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptKeyword, "keyword", "k", "", "keyword the cipher alphabet is derived from (default from config, else FEATHER)")
	decryptCmd.Flags().StringVarP(&decryptKeyword, "keyword", "k", "", "keyword the cipher alphabet is derived from (default from config, else FEATHER)")
}

// resetCipherCommandState resets the encrypt and decrypt commands' global state for testing.
func resetCipherCommandState() {
	encryptKeyword = ""
	decryptKeyword = ""
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <input> <output>",
	Short: "Encrypts a text file with the keyword substitution cipher",
	Long: `Encrypts a text file letter by letter with a monoalphabetic substitution
cipher derived from a keyword. Letter case, digits, punctuation and
whitespace are preserved. The output file is created or truncated.

Examples:
  wordtools encrypt notes.txt notes.enc.txt
  wordtools encrypt notes.txt notes.enc.txt --keyword owl`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCipherCommand(cmd.Context(), cipher.Encrypt, args[0], args[1], encryptKeyword)
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <input> <output>",
	Short: "Decrypts a file produced by encrypt",
	Long: `Decrypts a text file encrypted with the same keyword. The output file is
created or truncated.

Examples:
  wordtools decrypt notes.enc.txt notes.txt
  wordtools decrypt notes.enc.txt notes.txt --keyword owl`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCipherCommand(cmd.Context(), cipher.Decrypt, args[0], args[1], decryptKeyword)
	},
}

func runCipherCommand(ctx context.Context, direction cipher.Direction, input, output, keywordFlag string) error {
	Logger.Infof("Starting %s command", direction)
	spinner, cleanup := startSpinner("Running "+direction.String()+"...", verbose)
	defer cleanup()

	Logger.Debugf("Loading config from %s", configs.ConfigPath())
	config, err := configs.LoadConfig()
	if err != nil {
		Logger.Errorf("Failed to load config: %v", err)
		spinner.FinalMSG = formatError(err)
		return nil
	}

	opts := workflows.CipherOptions{
		InputPath:   input,
		OutputPath:  output,
		Keyword:     config.ResolveKeyword(keywordFlag),
		SkipHistory: config.History.Disabled,
	}
	Logger.Debugf("Input: %s, Output: %s", opts.InputPath, opts.OutputPath)

	run := workflows.Encrypt
	if direction == cipher.Decrypt {
		run = workflows.Decrypt
	}

	result, err := run(ctx, opts)
	if err != nil {
		Logger.Errorf("%s failed: %v", direction.Noun(), err)
		spinner.FinalMSG = formatError(err)
		if isUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Cipher alphabet: %s", result.Alphabet)
	Logger.Infof("Wrote %d bytes to %s", result.BytesWritten, result.OutputPath)
	spinner.FinalMSG = formatCipherResult(result)
	return nil
}
