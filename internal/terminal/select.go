package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	// eraseLine moves up one line, returns to column zero and clears to the
	// end of the line.
	eraseLine = "\x1b[1A\r\x1b[K"

	pointer   = "❯ "
	noPointer = "  "
	lineEnd   = "\r\n"
)

var (
	// ErrInputUnavailable means raw mode could not be enabled on the input.
	ErrInputUnavailable = errors.New("interactive input unavailable")

	// ErrNoOptions is returned when Select is called without options.
	ErrNoOptions = errors.New("no options to select from")
)

// IOError reports a read or write failure in the middle of a prompt.
// The terminal has already been restored when it is returned.
type IOError struct {
	Op  string // "read", "write" or "restore"
	Err error
}

func (e *IOError) Error() string {
	return "prompt " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Prompt draws single-choice selection prompts. Input, output and the raw
// mode switch are injected so the prompt can be driven without a terminal.
type Prompt struct {
	in               io.Reader
	out              io.Writer
	raw              RawMode
	clear            bool
	interruptCancels bool
	log              *zap.Logger
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithClear erases the whole prompt, question included, once it finishes.
func WithClear(enabled bool) Option {
	return func(p *Prompt) { p.clear = enabled }
}

// WithInterruptCancel makes Ctrl-C cancel the prompt. Without it Ctrl-C is
// ignored like any other unbound key.
func WithInterruptCancel(enabled bool) Option {
	return func(p *Prompt) { p.interruptCancels = enabled }
}

// WithRawMode overrides how raw mode is toggled on the input.
func WithRawMode(raw RawMode) Option {
	return func(p *Prompt) { p.raw = raw }
}

// WithLogger sets the logger for session events.
func WithLogger(log *zap.Logger) Option {
	return func(p *Prompt) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPrompt returns a prompt reading keys from in and drawing on out.
// When in is an *os.File its terminal is switched to raw mode for the
// duration of each Select.
func NewPrompt(in io.Reader, out io.Writer, opts ...Option) *Prompt {
	p := &Prompt{
		in:  in,
		out: out,
		raw: noRawMode{},
		log: zap.NewNop(),
	}
	if f, ok := in.(*os.File); ok {
		p.raw = TTYMode(f)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Select shows message and options and blocks until the user confirms an
// option with Enter. It returns the chosen label with ok set. When the prompt
// is cancelled it returns ok == false and a nil error.
func (p *Prompt) Select(message string, options []string) (label string, ok bool, err error) {
	if len(options) == 0 {
		return "", false, ErrNoOptions
	}

	restoreRaw, err := p.raw.MakeRaw()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	restored := false
	restore := func() error {
		if restored {
			return nil
		}
		restored = true
		return restoreRaw()
	}
	defer restore()

	s := &session{out: p.out, message: message, options: options}
	p.log.Debug("prompt started", zap.Int("options", len(options)), zap.Bool("clear", p.clear))

	if err := s.renderInitial(); err != nil {
		p.log.Debug("prompt failed", zap.Error(err))
		return "", false, err
	}

	var dec KeyDecoder
	var keys []Key
	buf := make([]byte, 64)
	for {
		n, readErr := p.in.Read(buf)
		keys = dec.Feed(keys[:0], buf[:n])

		for _, k := range keys {
			switch k {
			case KeyUp, KeyDown:
				s.move(k)
				p.log.Debug("prompt key", zap.Stringer("key", k), zap.Int("selected", s.selected))
				if err := s.redraw(); err != nil {
					p.log.Debug("prompt failed", zap.Error(err))
					return "", false, err
				}

			case KeyEnter:
				if err := p.finish(s, restore); err != nil {
					return "", false, err
				}
				p.log.Debug("prompt confirmed", zap.Int("selected", s.selected))
				return options[s.selected], true, nil

			case KeyInterrupt:
				if !p.interruptCancels {
					continue
				}
				if err := p.finish(s, restore); err != nil {
					return "", false, err
				}
				p.log.Debug("prompt cancelled")
				return "", false, nil
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				readErr = io.ErrUnexpectedEOF
			}
			ioErr := &IOError{Op: "read", Err: readErr}
			p.log.Debug("prompt failed", zap.Error(ioErr))
			return "", false, ioErr
		}
	}
}

// finish restores the terminal and, with clear set, erases the prompt.
func (p *Prompt) finish(s *session, restore func() error) error {
	if err := restore(); err != nil {
		return &IOError{Op: "restore", Err: err}
	}
	if p.clear {
		return s.erase(len(s.options) + 1)
	}
	return nil
}

// session is the state of a single Select call.
type session struct {
	out      io.Writer
	message  string
	options  []string
	selected int
}

func (s *session) move(k Key) {
	n := len(s.options)
	switch k {
	case KeyUp:
		s.selected = (s.selected - 1 + n) % n
	case KeyDown:
		s.selected = (s.selected + 1) % n
	}
}

func (s *session) renderInitial() error {
	if err := s.write(s.message + lineEnd); err != nil {
		return err
	}
	return s.renderOptions()
}

func (s *session) renderOptions() error {
	for i, opt := range s.options {
		prefix := noPointer
		if i == s.selected {
			prefix = pointer
		}
		if err := s.write(prefix + opt + lineEnd); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) redraw() error {
	if err := s.erase(len(s.options)); err != nil {
		return err
	}
	return s.renderOptions()
}

// erase removes the last count rendered lines in a single write.
func (s *session) erase(count int) error {
	return s.write(strings.Repeat(eraseLine, count))
}

func (s *session) write(str string) error {
	n, err := io.WriteString(s.out, str)
	if err == nil && n < len(str) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
