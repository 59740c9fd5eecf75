// internal/words/words.go
//
// Word list management for the hangman shell.
//
// Responsibilities:
//   - Provide candidate secret words from the embedded default list, a file or SQLite.
//   - Normalize raw entries (trim, uppercase, letters only, no duplicates).
//   - Pick a word at random or deterministically for a date (see daily.go).
//
// File format:
//   Words separated by commas and/or newlines, e.g. "apple,banana\ncherry".
//   Lines starting with '#' are comments.

package words

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/hangman/assets"
)

// ErrNoWords is returned when a source yields no usable word.
var ErrNoWords = errors.New("words: no usable words")

// Source supplies candidate secret words.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// Load reads src and fails with ErrNoWords if nothing usable remains after normalization.
func Load(ctx context.Context, src Source) ([]string, error) {
	raw, err := src.Words(ctx)
	if err != nil {
		return nil, err
	}
	list := Normalize(raw)
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	return list, nil
}

// embedded serves the list compiled into the assets package.
type embedded struct{}

// Embedded returns the built-in default word list.
func Embedded() Source { return embedded{} }

func (embedded) Words(context.Context) ([]string, error) {
	return Parse(assets.Words), nil
}

// file reads a word list from disk on every call.
type file struct{ path string }

// File returns a Source reading the comma/newline separated list at path.
func File(path string) Source { return file{path: path} }

func (f file) Words(context.Context) ([]string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read word file %s: %w", f.path, err)
	}
	return Parse(string(b)), nil
}

// Parse splits a comma and/or newline separated list. Entries are trimmed but not
// otherwise validated; see Normalize.
func Parse(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, w := range strings.Split(line, ",") {
			if w = strings.TrimSpace(w); w != "" {
				out = append(out, w)
			}
		}
	}
	return out
}

// Normalize uppercases entries and keeps only letter-only words, first occurrence wins.
func Normalize(raw []string) []string {
	caser := cases.Upper(language.Und)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = caser.String(strings.TrimSpace(w))
		if w == "" || !isLetters(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Random returns a cryptographically random word from list.
func Random(list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrNoWords
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", fmt.Errorf("pick word: %w", err)
	}
	return list[n.Int64()], nil
}

// isLetters reports whether s consists only of Unicode letters.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
