package cmd

import (
	"github.com/PolarWolf314/wordtools/internal/configs"
	logger "github.com/PolarWolf314/wordtools/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// Register attaches the global flags and every WordTools command to root.
func Register(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		if err := configs.SettingsError(); err != nil {
			Logger.WarnfAlways("Cannot locate user directories, config file and history are disabled: %v", err)
		}
	}

	root.AddCommand(spellcheckCmd)
	root.AddCommand(encryptCmd)
	root.AddCommand(decryptCmd)
	root.AddCommand(menuCmd)
	root.AddCommand(historyCmd)
	root.AddCommand(ConfigCmd)
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetSpellcheckCommandState()
	resetCipherCommandState()
	resetMenuCommandState()
	resetHistoryCommandState()
	resetConfigCommandState()
	for _, c := range []*cobra.Command{spellcheckCmd, encryptCmd, decryptCmd, menuCmd, historyCmd, ConfigCmd, configInitCmd, configShowCmd} {
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
