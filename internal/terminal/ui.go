package terminal

import (
	"fmt"
	"io"
	"os"
)

// Colors for terminal output.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Blue   = "\033[34m"
	Yellow = "\033[33m"
)

// Messages go to stderr so stdout only ever carries results.
var messageOut io.Writer = os.Stderr

// Info prints a blue info message.
func Info(msg string) {
	fmt.Fprintf(messageOut, "%s%si%s %s\n", Bold, Blue, Reset, msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	fmt.Fprintf(messageOut, "%s%s!%s %s\n", Bold, Yellow, Reset, msg)
}
