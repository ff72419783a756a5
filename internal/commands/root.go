package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moasq/choose/internal/config"
	"github.com/moasq/choose/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

// ErrCancelled is returned when the user cancels a prompt.
var ErrCancelled = errors.New("cancelled")

var (
	configFlag  string
	logFileFlag string

	// cfg and logger are set up before any subcommand runs.
	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "choose",
	Short:         "Interactive single-choice prompts for the terminal",
	Long:          "choose asks a question, lets you pick one of the options with the arrow keys and prints the choice to stdout.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup() error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if logFileFlag != "" {
		loaded.LogFile = logFileFlag
	}

	log, err := logging.New(loaded.LogFile)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = log
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $CHOOSE_CONFIG or <user config dir>/choose/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append JSON debug logs to this file")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(mcpCmd)
}
