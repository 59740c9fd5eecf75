package console

import (
	"strconv"
	"strings"

	"github.com/robalobadob/hangman/internal/figure"
	"github.com/robalobadob/hangman/internal/game"
)

// separator is printed under the figure.
const separator = "#######################"

// Frame is everything shown to the player for one turn.
type Frame struct {
	Figure       []string
	Pattern      string // revealed letters, "_" for hidden ones, space separated
	Incorrect    string
	AttemptsLeft int
	Secret       string // only set in debug mode
	Message      string
}

// NewFrame builds a Frame from an engine snapshot.
func NewFrame(snap game.Snapshot) Frame {
	return Frame{
		Figure:       figure.Render(snap.WrongGuesses),
		Pattern:      Pattern(snap.Revealed),
		Incorrect:    string(snap.IncorrectLetters),
		AttemptsLeft: snap.AttemptsRemaining,
	}
}

// Pattern formats slots as "C _ T".
func Pattern(slots []game.Slot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		if s.Revealed {
			parts[i] = string(s.Letter)
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}

// Lines lays the frame out top to bottom. The figure always comes first.
func (f Frame) Lines() []string {
	out := make([]string, 0, len(f.Figure)+10)
	out = append(out, f.Figure...)
	out = append(out, separator)
	if f.Secret != "" {
		out = append(out, "Secret word is "+f.Secret)
	}
	out = append(out,
		"Guesses left: "+strconv.Itoa(f.AttemptsLeft),
		"",
		"Incorrect characters:",
		f.Incorrect,
		"",
		f.Pattern,
	)
	if f.Message != "" {
		out = append(out, "")
		out = append(out, strings.Split(f.Message, "\n")...)
	}
	return out
}
