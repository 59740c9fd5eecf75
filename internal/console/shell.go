// internal/console/shell.go
//
// Console shell around the hangman engine.
// Responsibilities:
//   - Pick a secret per round and start a fresh game.
//   - Classify raw input: one rune is a letter guess, anything else a word guess.
//   - Render each turn through a Terminal and ask whether to play again.
//
// Notes:
//   - The shell is the only caller of the engine; it checks Outcome before every turn.
//   - Rejected guesses are shown as hints and never cost an attempt.

package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

const (
	guessLabel  = "Guess: "
	replayLabel = "Would you like to play again? (Y/N): "
	exitLabel   = "Press Enter to exit."

	wonMessage  = "Congratulations! You have won!"
	lostMessage = "Unlucky, you lost the game! ):"
)

// Picker chooses the secret for the next round.
type Picker func(list []string) (string, error)

// Options configures a Shell.
type Options struct {
	// Pick defaults to words.Random.
	Pick Picker
	// Debug shows the secret word on every frame.
	Debug bool
	// OneRound plays a single round and waits for Enter instead of asking to replay.
	OneRound bool
	Logger   zerolog.Logger
}

// Shell runs rounds against a Terminal.
type Shell struct {
	term  Terminal
	words []string
	opts  Options
	log   zerolog.Logger
}

// New returns a Shell playing words from list. An empty list yields words.ErrNoWords.
func New(term Terminal, list []string, opts Options) (*Shell, error) {
	if len(list) == 0 {
		return nil, words.ErrNoWords
	}
	if opts.Pick == nil {
		opts.Pick = words.Random
	}
	return &Shell{term: term, words: list, opts: opts, log: opts.Logger}, nil
}

// Run plays rounds until the player declines a replay or quits. Quitting is not an error.
func (s *Shell) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, ErrQuit) {
		s.log.Info().Msg("player quit")
		return nil
	}
	return err
}

func (s *Shell) run(ctx context.Context) error {
	for {
		secret, err := s.opts.Pick(s.words)
		if err != nil {
			return fmt.Errorf("pick secret: %w", err)
		}
		g, err := game.New(secret)
		if err != nil {
			return fmt.Errorf("start round with %q: %w", secret, err)
		}
		if _, err := s.Play(ctx, g); err != nil {
			return err
		}
		if s.opts.OneRound {
			// keep the final frame up until the player has seen it
			_, err := s.term.Prompt(ctx, exitLabel)
			return err
		}
		again, err := s.askReplay(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// Play drives g to a terminal outcome and shows the final frame.
func (s *Shell) Play(ctx context.Context, g *game.Game) (game.Outcome, error) {
	log := s.log.With().Str("round", g.ID).Logger()
	ev := log.Info().Int("length", len(g.Revealed()))
	if s.opts.Debug {
		ev = ev.Str("secret", g.Secret())
	}
	ev.Msg("round started")

	msg := ""
	for g.Outcome() == game.InProgress {
		if err := s.term.Show(s.frame(g, msg)); err != nil {
			return game.InProgress, fmt.Errorf("show frame: %w", err)
		}
		raw, err := s.term.Prompt(ctx, guessLabel)
		if err != nil {
			return game.InProgress, err
		}
		msg = s.apply(log, g, raw)
	}

	outcome := g.Outcome()
	f := s.frame(g, wonMessage)
	if outcome == game.Lost {
		f.Message = lostMessage + "\nThe secret word was: " + g.Secret()
	}
	if err := s.term.Show(f); err != nil {
		return outcome, fmt.Errorf("show frame: %w", err)
	}
	log.Info().
		Str("outcome", outcome.String()).
		Int("attempts", g.AttemptsRemaining()).
		Msg("round finished")
	return outcome, nil
}

// apply evaluates one raw input line and returns a hint for the next frame.
func (s *Shell) apply(log zerolog.Logger, g *game.Game, raw string) string {
	guess := strings.TrimSpace(raw)

	var (
		res game.Result
		err error
	)
	if utf8.RuneCountInString(guess) == 1 {
		r, _ := utf8.DecodeRuneInString(guess)
		res, err = g.GuessLetter(r)
	} else {
		res, err = g.GuessWord(guess)
	}

	if err != nil {
		log.Debug().Err(err).Msg("guess rejected")
		switch {
		case errors.Is(err, game.ErrInvalidGuessCharacter):
			return "Only letters can be guessed."
		case errors.Is(err, game.ErrInvalidGuessLength):
			return fmt.Sprintf("Guess one letter or the whole %d-letter word.", len(g.Revealed()))
		}
		return err.Error()
	}

	log.Debug().
		Str("result", res.String()).
		Int("attempts", g.AttemptsRemaining()).
		Msg("guess evaluated")
	if res == game.Repeat {
		return "You already tried " + cases.Upper(language.Und).String(guess) + "."
	}
	return ""
}

func (s *Shell) frame(g *game.Game, msg string) Frame {
	f := NewFrame(g.Snapshot())
	if s.opts.Debug {
		f.Secret = g.Secret()
	}
	f.Message = msg
	return f
}

// askReplay repeats the question until a single character is entered.
func (s *Shell) askReplay(ctx context.Context) (bool, error) {
	for {
		ans, err := s.term.Prompt(ctx, replayLabel)
		if err != nil {
			return false, err
		}
		ans = strings.TrimSpace(ans)
		if utf8.RuneCountInString(ans) != 1 {
			continue
		}
		return strings.EqualFold(ans, "y"), nil
	}
}
