// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create rounds from a secret word with a fixed attempt budget.
//   - Apply letter and whole-word guesses.
//   - Derive the round outcome: in progress → won/lost.
//
// Notes:
//   - Letters and words are compared in uppercase.
//   - Wrong letters are remembered and never charged twice; wrong whole words are
//     charged every time they are tried.
//   - The engine does no I/O. Display code reads Snapshot and renders it.
package game

import (
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Game holds the state of one round.
type Game struct {
	ID string

	secret    []rune
	revealed  []Slot
	incorrect []rune // guess order, no duplicates
	attempts  int
	max       int
}

// Option customizes a new Game.
type Option func(*Game)

// WithMaxAttempts overrides the attempt budget. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.max = n
		}
	}
}

// New starts a round for secret. The secret is uppercased and must contain only letters.
func New(secret string, opts ...Option) (*Game, error) {
	word := []rune(upper(secret))
	if len(word) == 0 {
		return nil, ErrInvalidSecret
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return nil, ErrInvalidSecret
		}
	}

	g := &Game{
		ID:       uuid.NewString(),
		secret:   word,
		revealed: make([]Slot, len(word)),
		max:      MaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.attempts = g.max
	return g, nil
}

// GuessLetter applies a single-letter guess.
//
// A letter in the secret is revealed at every position; guessing it again is free.
// A letter not in the secret costs one attempt the first time only.
func (g *Game) GuessLetter(letter rune) (Result, error) {
	if g.Outcome() != InProgress {
		return Repeat, ErrAlreadyFinished
	}
	if !unicode.IsLetter(letter) {
		return Repeat, ErrInvalidGuessCharacter
	}
	letter = upperRune(letter)

	found, revealed := false, false
	for i, r := range g.secret {
		if r != letter {
			continue
		}
		found = true
		if !g.revealed[i].Revealed {
			g.revealed[i] = Slot{Letter: r, Revealed: true}
			revealed = true
		}
	}
	switch {
	case revealed:
		return Hit, nil
	case found:
		return Repeat, nil
	}

	for _, r := range g.incorrect {
		if r == letter {
			return Repeat, nil
		}
	}
	g.incorrect = append(g.incorrect, letter)
	g.attempts--
	return Miss, nil
}

// GuessWord applies a whole-word guess. Candidates of the wrong length are rejected
// without cost; any other wrong candidate costs one attempt, even when repeated.
func (g *Game) GuessWord(candidate string) (Result, error) {
	if g.Outcome() != InProgress {
		return Repeat, ErrAlreadyFinished
	}
	if utf8.RuneCountInString(candidate) != len(g.secret) {
		return Repeat, ErrInvalidGuessLength
	}
	if upper(candidate) != string(g.secret) {
		g.attempts--
		return Miss, nil
	}
	for i, r := range g.secret {
		g.revealed[i] = Slot{Letter: r, Revealed: true}
	}
	return Hit, nil
}

// Outcome derives the round state from the revealed positions and attempts left.
func (g *Game) Outcome() Outcome {
	if g.solved() {
		return Won
	}
	if g.attempts <= 0 {
		return Lost
	}
	return InProgress
}

// WrongGuessCount is the number of attempts spent, suitable for the figure renderer.
func (g *Game) WrongGuessCount() int { return g.max - g.attempts }

// AttemptsRemaining reports how many wrong guesses are still allowed.
func (g *Game) AttemptsRemaining() int { return g.attempts }

// MaxAttempts reports the round's attempt budget.
func (g *Game) MaxAttempts() int { return g.max }

// Secret returns the uppercased secret word.
func (g *Game) Secret() string { return string(g.secret) }

// Revealed returns a copy of the per-position state.
func (g *Game) Revealed() []Slot {
	out := make([]Slot, len(g.revealed))
	copy(out, g.revealed)
	return out
}

// IncorrectLetters returns a copy of the wrong letters in the order they were guessed.
func (g *Game) IncorrectLetters() []rune {
	out := make([]rune, len(g.incorrect))
	copy(out, g.incorrect)
	return out
}

// Snapshot collects the display values of the current turn.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Revealed:          g.Revealed(),
		IncorrectLetters:  g.IncorrectLetters(),
		AttemptsRemaining: g.attempts,
		WrongGuesses:      g.WrongGuessCount(),
		Outcome:           g.Outcome(),
	}
}

func (g *Game) solved() bool {
	for _, s := range g.revealed {
		if !s.Revealed {
			return false
		}
	}
	return true
}

// upper uppercases s with Unicode-aware rules. A Caser is stateful, so one is made per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// upperRune uppercases a single letter, keeping it a single rune.
func upperRune(r rune) rune {
	if u := []rune(upper(string(r))); len(u) == 1 {
		return u[0]
	}
	return unicode.ToUpper(r)
}
