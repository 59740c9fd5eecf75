package console

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	figureStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle   = tcell.StyleDefault
	promptStyle = tcell.StyleDefault.Bold(true)
)

// ScreenTerminal is a full-screen tcell frontend with a simple line editor.
type ScreenTerminal struct {
	screen tcell.Screen
	frame  Frame
}

// NewScreenTerminal takes over the controlling terminal. Call Close to restore it.
func NewScreenTerminal() (*ScreenTerminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return newScreenTerminal(s)
}

func newScreenTerminal(s tcell.Screen) (*ScreenTerminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(textStyle)
	s.Clear()
	return &ScreenTerminal{screen: s}, nil
}

func (t *ScreenTerminal) Show(f Frame) error {
	t.frame = f
	t.draw("", "")
	return nil
}

// Prompt edits a single line: runes append, Backspace deletes, Enter submits.
// Escape, Ctrl-C and Ctrl-D quit.
func (t *ScreenTerminal) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	var buf []rune
	t.draw(label, "")
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", ErrQuit
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return "", err
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(buf), nil
			case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
				return "", ErrQuit
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case tcell.KeyRune:
				buf = append(buf, ev.Rune())
			}
		}
		t.draw(label, string(buf))
	}
}

func (t *ScreenTerminal) Close() error {
	t.screen.Fini()
	return nil
}

func (t *ScreenTerminal) draw(label, input string) {
	t.screen.Clear()
	lines := t.frame.Lines()
	y := 0
	for i, l := range lines {
		st := textStyle
		if i < len(t.frame.Figure) {
			st = figureStyle
		}
		t.put(0, y, l, st)
		y++
	}
	if label != "" {
		y++
		x := t.put(0, y, label, promptStyle)
		x = t.put(x, y, input, textStyle)
		t.screen.ShowCursor(x, y)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

// put writes s at (x, y) and returns the column after it.
func (t *ScreenTerminal) put(x, y int, s string, st tcell.Style) int {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, st)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		x += w
	}
	return x
}
