// Package console runs the lamp in a terminal: the keyboard is the button and a
// coloured status line is the light.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/term"

	"github.com/aretw0/minuterie/internal/adapters/memory"
)

const ctrlC = 0x03

// Keyboard turns key presses into button presses. Space and Enter press the button;
// q, Esc and Ctrl+C request shutdown.
type Keyboard struct {
	memory.Button

	in     io.Reader
	quit   func()
	logger *slog.Logger
}

// NewKeyboard reads keys from in. quit is called once when the user asks to stop.
func NewKeyboard(in io.Reader, quit func(), logger *slog.Logger) *Keyboard {
	if quit == nil {
		quit = func() {}
	}
	return &Keyboard{in: in, quit: quit, logger: logger}
}

// Run reads keys until the reader is exhausted, a quit key is read or ctx is done.
// A blocked read only notices ctx after the next key.
func (k *Keyboard) Run(ctx context.Context) error {
	r := bufio.NewReader(k.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch b {
		case ' ', '\r', '\n':
			k.Press()
			k.logger.DebugContext(ctx, "key press")
		case 'q', 'Q', 0x1b, ctrlC:
			k.logger.InfoContext(ctx, "quit requested from keyboard")
			k.quit()
			return nil
		}
	}
}

// RawMode puts fd into raw mode when it is a terminal, so single keys arrive without
// Enter. The returned function restores the previous mode; it is a no-op when fd is
// not a terminal.
func RawMode(fd int) (restore func() error, err error) {
	if !term.IsTerminal(fd) {
		return func() error { return nil }, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, old) }, nil
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
