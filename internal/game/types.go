// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - Outcome: derived round state (in progress / won / lost).
//   - Result: what a single guess did to the round.
//   - Slot: one position of the secret, revealed or not.
//   - Snapshot: raw values handed to a display.

package game

import "errors"

// MaxAttempts is the wrong-guess budget of a round.
const MaxAttempts = 10

var (
	ErrInvalidSecret         = errors.New("secret must be one or more letters")
	ErrInvalidGuessLength    = errors.New("guess length does not match the word")
	ErrInvalidGuessCharacter = errors.New("guess is not a letter")
	ErrAlreadyFinished       = errors.New("round already finished")
)

// Outcome is the state of a round. Won and Lost are terminal.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "in_progress"
}

// Result reports the effect of an accepted guess.
type Result int

const (
	// Hit revealed at least one new position (or the whole word).
	Hit Result = iota
	// Miss cost an attempt.
	Miss
	// Repeat changed nothing: the letter was already revealed or already known wrong.
	Repeat
)

func (r Result) String() string {
	switch r {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "repeat"
}

// Slot is one position of the secret word. Letter is only meaningful when Revealed.
type Slot struct {
	Letter   rune
	Revealed bool
}

// Snapshot is a copy of everything a display needs for one turn.
type Snapshot struct {
	Revealed          []Slot
	IncorrectLetters  []rune
	AttemptsRemaining int
	WrongGuesses      int
	Outcome           Outcome
}
