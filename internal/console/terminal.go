// internal/console/terminal.go
//
// Terminal frontends for the shell.
// Responsibilities:
//   - Terminal: the blocking display/input boundary used by Shell.
//   - LineTerminal: plain reader/writer frontend (pipes, tests, dumb terminals).
//
// Notes:
//   - Prompts honor ctx cancellation: input is pumped on a background goroutine.
//   - End of input is reported as ErrQuit.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// ErrQuit reports that the player closed the input.
var ErrQuit = errors.New("player quit")

// Terminal shows frames and reads raw player input.
type Terminal interface {
	// Show replaces whatever was displayed with f.
	Show(f Frame) error
	// Prompt displays label and blocks until a line is entered or ctx is done.
	Prompt(ctx context.Context, label string) (string, error)
	Close() error
}

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

type lineResult struct {
	text string
	err  error
}

// LineTerminal reads lines from an io.Reader and writes frames to an io.Writer.
type LineTerminal struct {
	in    io.Reader
	out   io.Writer
	clear bool

	once      sync.Once
	lines     chan lineResult
	done      chan struct{}
	closeOnce sync.Once
}

// NewLineTerminal wraps in/out. The screen is cleared between frames only when out
// is an interactive terminal.
func NewLineTerminal(in io.Reader, out io.Writer) *LineTerminal {
	t := &LineTerminal{in: in, out: out, done: make(chan struct{})}
	if f, ok := out.(*os.File); ok {
		t.clear = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return t
}

func (t *LineTerminal) Show(f Frame) error {
	var b strings.Builder
	if t.clear {
		b.WriteString(clearScreen)
	}
	for _, l := range f.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *LineTerminal) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(t.out, label); err != nil {
		return "", err
	}
	t.once.Do(func() {
		t.lines = make(chan lineResult)
		go t.pump()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.done:
		return "", ErrQuit
	case r, ok := <-t.lines:
		if !ok || errors.Is(r.err, io.EOF) {
			return "", ErrQuit
		}
		if r.err != nil {
			return "", fmt.Errorf("read input: %w", r.err)
		}
		return r.text, nil
	}
}

// pump delivers one line per receive, then the terminal error, then closes.
// It stops early once the terminal is closed.
func (t *LineTerminal) pump() {
	defer close(t.lines)
	sc := bufio.NewScanner(t.in)
	for sc.Scan() {
		if !t.send(lineResult{text: strings.TrimRight(sc.Text(), "\r")}) {
			return
		}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	t.send(lineResult{err: err})
}

func (t *LineTerminal) send(r lineResult) bool {
	select {
	case <-t.done:
		return false
	default:
	}
	select {
	case t.lines <- r:
		return true
	case <-t.done:
		return false
	}
}

// Close stops the input pump. A read already blocked on the reader ends when the
// reader does.
func (t *LineTerminal) Close() error {
	t.closeOnce.Do(func() { close(t.done) })
	return nil
}
