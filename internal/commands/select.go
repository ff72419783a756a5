package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moasq/choose/internal/fsutil"
	"github.com/moasq/choose/internal/terminal"
)

var (
	clearFlag  bool
	dirFlag    string
	hiddenFlag bool
)

var selectCmd = &cobra.Command{
	Use:   "select MESSAGE [OPTION...]",
	Short: "Ask a question and print the chosen option",
	Long: `Shows MESSAGE followed by the options. Use the up and down arrows to move
the selection and Enter to confirm. The prompt is drawn on stderr and the
chosen option is printed to stdout.`,
	Example: `  choose select "Please select a browser:" safari chrome firefox
  cd "$(choose select --clear --dir . 'Go to:')"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := args[1:]
		if hiddenFlag && dirFlag == "" {
			terminal.Warning("--hidden has no effect without --dir")
		}
		if dirFlag != "" {
			entries, err := dirOptions(dirFlag, hiddenFlag || cfg.ShowHidden)
			if err != nil {
				return err
			}
			options = append(options, entries...)
		}
		if len(options) == 0 {
			return fmt.Errorf("no options given")
		}

		clearPrompt := cfg.Clear
		if cmd.Flags().Changed("clear") {
			clearPrompt = clearFlag
		}

		prompt := terminal.NewPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(),
			terminal.WithClear(clearPrompt),
			terminal.WithInterruptCancel(cfg.InterruptCancels),
			terminal.WithLogger(logger),
		)

		label, ok, err := prompt.Select(args[0], options)
		if err != nil {
			logger.Error("select failed", zap.Error(err))
			return err
		}
		if !ok {
			return ErrCancelled
		}

		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	},
}

// dirOptions returns the sorted entry labels of dir.
func dirOptions(dir string, hidden bool) ([]string, error) {
	var labels []string
	for e, err := range fsutil.ReadDir(dir) {
		if err != nil {
			return nil, err
		}
		if !hidden && strings.HasPrefix(e.Name, ".") {
			continue
		}
		labels = append(labels, entryLabel(e))
	}
	sort.Strings(labels)
	return labels, nil
}

// entryLabel suffixes directories with a slash.
func entryLabel(e fsutil.DirEntry) string {
	if e.IsDirectory {
		return e.Name + "/"
	}
	return e.Name
}

func init() {
	selectCmd.Flags().BoolVar(&clearFlag, "clear", false, "erase the prompt once an option is chosen")
	selectCmd.Flags().StringVar(&dirFlag, "dir", "", "add the entries of this directory as options")
	selectCmd.Flags().BoolVar(&hiddenFlag, "hidden", false, "include dot entries with --dir")
}
