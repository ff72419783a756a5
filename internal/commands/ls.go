package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/choose/internal/fsutil"
	"github.com/moasq/choose/internal/terminal"
)

var lsCmd = &cobra.Command{
	Use:   "ls [PATH]",
	Short: "List directory entries",
	Long:  "Prints the entries of PATH (default .) one per line, directories suffixed with /. Entries are printed as they are read, in no particular order.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		out := cmd.OutOrStdout()
		count := 0
		for e, err := range fsutil.ReadDir(dir) {
			if err != nil {
				return err
			}
			fmt.Fprintln(out, entryLabel(e))
			count++
		}
		if count == 0 {
			terminal.Info(fmt.Sprintf("%s is empty.", dir))
		}
		return nil
	},
}
