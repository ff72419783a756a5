package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// RawMode switches an input stream into raw mode. The returned restore func
// puts the stream back into the mode it had before.
type RawMode interface {
	MakeRaw() (restore func() error, err error)
}

// ErrNotTerminal is returned by a RawMode whose input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// ttyMode toggles raw mode on a file descriptor via golang.org/x/term.
type ttyMode struct {
	fd int
}

// TTYMode returns the RawMode for f.
func TTYMode(f *os.File) RawMode {
	return ttyMode{fd: int(f.Fd())}
}

func (t ttyMode) MakeRaw() (func() error, error) {
	if !term.IsTerminal(t.fd) {
		return nil, ErrNotTerminal
	}
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	return func() error {
		return term.Restore(t.fd, oldState)
	}, nil
}

// noRawMode is used for inputs that are not files at all.
type noRawMode struct{}

func (noRawMode) MakeRaw() (func() error, error) {
	return nil, ErrNotTerminal
}
