package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/wordtools/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordtools",
	Short: "WordTools - spellcheck, encrypt and decrypt text files.",
	Long: `WordTools checks text files against a dictionary and encrypts or decrypts
them with a keyword substitution cipher.

Features:
  - Report words missing from a dictionary
  - Encrypt and decrypt files, preserving case, digits and punctuation
  - Interactive menu with a file picker

Usage:
  wordtools [command] [flags]

Run without a command to open the interactive menu.
Run 'wordtools help <command>' for more details on a specific command.
`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return cmd.RunMenu(c)
	},
}

func init() {
	cmd.Register(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
