package game

import (
	"errors"
	"reflect"
	"testing"
)

func mustNew(t *testing.T, secret string, opts ...Option) *Game {
	t.Helper()
	g, err := New(secret, opts...)
	if err != nil {
		t.Fatalf("New(%q): %v", secret, err)
	}
	return g
}

func pattern(g *Game) string {
	var out []rune
	for _, s := range g.Revealed() {
		if s.Revealed {
			out = append(out, s.Letter)
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		want    string
		wantErr error
	}{
		{name: "uppercases", secret: "cat", want: "CAT"},
		{name: "single letter", secret: "a", want: "A"},
		{name: "unicode letters", secret: "ñandú", want: "ÑANDÚ"},
		{name: "empty", secret: "", wantErr: ErrInvalidSecret},
		{name: "space", secret: "ice cream", wantErr: ErrInvalidSecret},
		{name: "digit", secret: "r2d2", wantErr: ErrInvalidSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%q) error = %v, want %v", tt.secret, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if g.Secret() != tt.want {
				t.Errorf("Secret() = %q, want %q", g.Secret(), tt.want)
			}
			if got := len(g.Revealed()); got != len([]rune(tt.want)) {
				t.Errorf("len(Revealed()) = %d, want %d", got, len([]rune(tt.want)))
			}
			if g.AttemptsRemaining() != MaxAttempts {
				t.Errorf("AttemptsRemaining() = %d, want %d", g.AttemptsRemaining(), MaxAttempts)
			}
			if g.Outcome() != InProgress {
				t.Errorf("Outcome() = %v, want in_progress", g.Outcome())
			}
			if g.ID == "" {
				t.Error("ID should be set")
			}
		})
	}
}

func TestGuessLetterRevealsAndWins(t *testing.T) {
	g := mustNew(t, "CAT")
	steps := []struct {
		letter  rune
		pattern string
	}{
		{'C', "C__"},
		{'a', "CA_"},
		{'T', "CAT"},
	}
	for _, s := range steps {
		res, err := g.GuessLetter(s.letter)
		if err != nil {
			t.Fatalf("GuessLetter(%q): %v", s.letter, err)
		}
		if res != Hit {
			t.Errorf("GuessLetter(%q) = %v, want hit", s.letter, res)
		}
		if got := pattern(g); got != s.pattern {
			t.Errorf("after %q pattern = %q, want %q", s.letter, got, s.pattern)
		}
		if g.AttemptsRemaining() != MaxAttempts {
			t.Errorf("after %q attempts = %d, want %d", s.letter, g.AttemptsRemaining(), MaxAttempts)
		}
	}
	if g.Outcome() != Won {
		t.Fatalf("Outcome() = %v, want won", g.Outcome())
	}
}

func TestGuessLetterRevealsEveryPosition(t *testing.T) {
	g := mustNew(t, "BANANA")
	if _, err := g.GuessLetter('a'); err != nil {
		t.Fatal(err)
	}
	if got := pattern(g); got != "_A_A_A" {
		t.Errorf("pattern = %q, want _A_A_A", got)
	}
}

func TestGuessLetterWrongIsDeduplicated(t *testing.T) {
	g := mustNew(t, "DOG")

	res, err := g.GuessLetter('X')
	if err != nil || res != Miss {
		t.Fatalf("first X = %v, %v; want miss", res, err)
	}
	if g.AttemptsRemaining() != 9 {
		t.Fatalf("attempts = %d, want 9", g.AttemptsRemaining())
	}

	res, err = g.GuessLetter('x')
	if err != nil || res != Repeat {
		t.Fatalf("second x = %v, %v; want repeat", res, err)
	}
	if g.AttemptsRemaining() != 9 {
		t.Fatalf("attempts after repeat = %d, want 9", g.AttemptsRemaining())
	}

	if _, err := g.GuessLetter('Y'); err != nil {
		t.Fatal(err)
	}
	if g.AttemptsRemaining() != 8 {
		t.Fatalf("attempts = %d, want 8", g.AttemptsRemaining())
	}
	if got := g.IncorrectLetters(); !reflect.DeepEqual(got, []rune{'X', 'Y'}) {
		t.Errorf("IncorrectLetters() = %q, want XY", string(got))
	}
	if g.WrongGuessCount() != 2 {
		t.Errorf("WrongGuessCount() = %d, want 2", g.WrongGuessCount())
	}
}

func TestGuessLetterCorrectRepeatIsFree(t *testing.T) {
	g := mustNew(t, "DOG")
	if _, err := g.GuessLetter('O'); err != nil {
		t.Fatal(err)
	}
	res, err := g.GuessLetter('O')
	if err != nil {
		t.Fatal(err)
	}
	if res != Repeat {
		t.Errorf("repeat correct letter = %v, want repeat", res)
	}
	if g.AttemptsRemaining() != MaxAttempts {
		t.Errorf("attempts = %d, want %d", g.AttemptsRemaining(), MaxAttempts)
	}
	if len(g.IncorrectLetters()) != 0 {
		t.Errorf("IncorrectLetters() = %q, want empty", string(g.IncorrectLetters()))
	}
}

func TestGuessLetterRejectsNonLetters(t *testing.T) {
	g := mustNew(t, "DOG")
	before := g.Snapshot()
	for _, r := range []rune{'1', ' ', '-', '?'} {
		if _, err := g.GuessLetter(r); !errors.Is(err, ErrInvalidGuessCharacter) {
			t.Errorf("GuessLetter(%q) error = %v, want ErrInvalidGuessCharacter", r, err)
		}
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("rejected guesses changed state")
	}
}

func TestGuessWord(t *testing.T) {
	t.Run("correct wins", func(t *testing.T) {
		g := mustNew(t, "OWL")
		res, err := g.GuessWord("owl")
		if err != nil || res != Hit {
			t.Fatalf("GuessWord = %v, %v; want hit", res, err)
		}
		if g.Outcome() != Won {
			t.Errorf("Outcome() = %v, want won", g.Outcome())
		}
		if pattern(g) != "OWL" {
			t.Errorf("pattern = %q, want OWL", pattern(g))
		}
		if g.AttemptsRemaining() != MaxAttempts {
			t.Errorf("attempts = %d, want %d", g.AttemptsRemaining(), MaxAttempts)
		}
	})

	t.Run("wrong word is charged every time", func(t *testing.T) {
		g := mustNew(t, "OWL")
		for i, want := range []int{9, 8} {
			res, err := g.GuessWord("CAT")
			if err != nil || res != Miss {
				t.Fatalf("guess %d = %v, %v; want miss", i, res, err)
			}
			if g.AttemptsRemaining() != want {
				t.Fatalf("guess %d attempts = %d, want %d", i, g.AttemptsRemaining(), want)
			}
		}
		if len(g.IncorrectLetters()) != 0 {
			t.Errorf("word guesses should not add incorrect letters, got %q", string(g.IncorrectLetters()))
		}
	})

	t.Run("wrong length is free", func(t *testing.T) {
		g := mustNew(t, "OWL")
		if _, err := g.GuessLetter('W'); err != nil {
			t.Fatal(err)
		}
		before := g.Snapshot()
		for _, c := range []string{"", "OW", "OWLS", "HORSE"} {
			if _, err := g.GuessWord(c); !errors.Is(err, ErrInvalidGuessLength) {
				t.Errorf("GuessWord(%q) error = %v, want ErrInvalidGuessLength", c, err)
			}
		}
		if !reflect.DeepEqual(before, g.Snapshot()) {
			t.Error("wrong-length guesses changed state")
		}
	})
}

func TestLoseAfterMaxDistinctMisses(t *testing.T) {
	g := mustNew(t, "QUIZ")
	misses := []rune("ABCDEFGHJK")
	for i, r := range misses {
		if g.Outcome() != InProgress {
			t.Fatalf("round ended early after %d misses", i)
		}
		if res, err := g.GuessLetter(r); err != nil || res != Miss {
			t.Fatalf("GuessLetter(%q) = %v, %v; want miss", r, res, err)
		}
	}
	if g.AttemptsRemaining() != 0 {
		t.Fatalf("attempts = %d, want 0", g.AttemptsRemaining())
	}
	if g.Outcome() != Lost {
		t.Fatalf("Outcome() = %v, want lost", g.Outcome())
	}
	if g.WrongGuessCount() != MaxAttempts {
		t.Errorf("WrongGuessCount() = %d, want %d", g.WrongGuessCount(), MaxAttempts)
	}
}

func TestSyntheticSingleAttempt(t *testing.T) {
	g := mustNew(t, "A", WithMaxAttempts(1))
	if _, err := g.GuessLetter('B'); err != nil {
		t.Fatal(err)
	}
	if g.AttemptsRemaining() != 0 || g.Outcome() != Lost {
		t.Fatalf("attempts = %d outcome = %v, want 0 lost", g.AttemptsRemaining(), g.Outcome())
	}
}

func TestWithMaxAttemptsIgnoresNonPositive(t *testing.T) {
	g := mustNew(t, "A", WithMaxAttempts(0))
	if g.MaxAttempts() != MaxAttempts {
		t.Errorf("MaxAttempts() = %d, want %d", g.MaxAttempts(), MaxAttempts)
	}
}

func TestFinishedRoundRejectsGuesses(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  Outcome
	}{
		{
			name:  "won",
			setup: func(g *Game) { _, _ = g.GuessWord("OX") },
			want:  Won,
		},
		{
			name: "lost",
			setup: func(g *Game) {
				for i := 0; i < MaxAttempts; i++ {
					_, _ = g.GuessWord("AB")
				}
			},
			want: Lost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, "OX")
			tt.setup(g)
			if g.Outcome() != tt.want {
				t.Fatalf("Outcome() = %v, want %v", g.Outcome(), tt.want)
			}
			before := g.Snapshot()
			if _, err := g.GuessLetter('Z'); !errors.Is(err, ErrAlreadyFinished) {
				t.Errorf("GuessLetter error = %v, want ErrAlreadyFinished", err)
			}
			if _, err := g.GuessWord("ZZ"); !errors.Is(err, ErrAlreadyFinished) {
				t.Errorf("GuessWord error = %v, want ErrAlreadyFinished", err)
			}
			if !reflect.DeepEqual(before, g.Snapshot()) {
				t.Error("finished round changed state")
			}
		})
	}
}

func TestCorrectLettersInAnyOrderNeverCost(t *testing.T) {
	orders := []string{"ELPHANT", "TNAHPLE", "PHANTEL"}
	for _, order := range orders {
		t.Run(order, func(t *testing.T) {
			g := mustNew(t, "ELEPHANT")
			for _, r := range order {
				if _, err := g.GuessLetter(r); err != nil {
					t.Fatal(err)
				}
			}
			if g.Outcome() != Won {
				t.Errorf("Outcome() = %v, want won", g.Outcome())
			}
			if g.AttemptsRemaining() != MaxAttempts {
				t.Errorf("attempts = %d, want %d", g.AttemptsRemaining(), MaxAttempts)
			}
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := mustNew(t, "DOG")
	_, _ = g.GuessLetter('X')
	snap := g.Snapshot()
	snap.Revealed[0] = Slot{Letter: 'Z', Revealed: true}
	snap.IncorrectLetters[0] = 'Q'
	if g.Revealed()[0].Revealed {
		t.Error("mutating snapshot revealed the engine's slot")
	}
	if g.IncorrectLetters()[0] != 'X' {
		t.Error("mutating snapshot changed the engine's incorrect letters")
	}
}

func TestStrings(t *testing.T) {
	if Won.String() != "won" || Lost.String() != "lost" || InProgress.String() != "in_progress" {
		t.Error("unexpected Outcome strings")
	}
	if Hit.String() != "hit" || Miss.String() != "miss" || Repeat.String() != "repeat" {
		t.Error("unexpected Result strings")
	}
}
