// main.go
//
// Entry point for terminal hangman.
//
// Usage:
//   hangman [flags]                 play (see -h for flags)
//   hangman -db words.db import F   add the words of file F to the SQLite word list
//
// Word source precedence: -db, then -words, then the embedded default list.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, args, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(args) > 0 && args[0] == "import" {
		err = runImport(ctx, cfg, args[1:])
	} else {
		err = run(ctx, cfg)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("hangman exited")
		if errors.Is(err, words.ErrNoWords) {
			fmt.Fprintln(os.Stderr, "Could not get any words, make sure the word list is not empty and that words are comma separated.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		closeLog()
		os.Exit(1)
	}
}

// setupLogging configures the global zerolog logger and returns a cleanup func.
func setupLogging(cfg config.Config) (func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer
	cleanup := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	case cfg.UI == config.UIScreen:
		// stderr shares the screen with tcell
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{Out: colorable.NewColorableStderr(), TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return cleanup, nil
}

// openSource picks the configured word source. The returned close func is never nil.
func openSource(ctx context.Context, cfg config.Config) (words.Source, func(), error) {
	switch {
	case cfg.WordsDB != "":
		db, err := words.OpenDB(cfg.WordsDB)
		if err != nil {
			return nil, nil, fmt.Errorf("open word db: %w", err)
		}
		if err := words.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate word db: %w", err)
		}
		return words.SQLite(db), func() { _ = db.Close() }, nil
	case cfg.WordsFile != "":
		return words.File(cfg.WordsFile), func() {}, nil
	}
	return words.Embedded(), func() {}, nil
}

func run(ctx context.Context, cfg config.Config) error {
	src, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	list, err := words.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	log.Info().Int("words", len(list)).Msg("word list loaded")

	opts := console.Options{
		Debug:  cfg.Debug,
		Logger: log.Logger,
	}
	if cfg.Daily {
		today := time.Now()
		opts.OneRound = true
		opts.Pick = func(list []string) (string, error) {
			return words.ForDate(list, today, cfg.DailySalt)
		}
		log.Info().Str("date", today.UTC().Format(time.DateOnly)).Msg("daily mode")
	}

	var term console.Terminal
	if cfg.UI == config.UIScreen {
		st, err := console.NewScreenTerminal()
		if err != nil {
			return err
		}
		term = st
	} else {
		term = console.NewLineTerminal(os.Stdin, os.Stdout)
	}
	defer term.Close()

	sh, err := console.New(term, list, opts)
	if err != nil {
		return err
	}
	return sh.Run(ctx)
}

func runImport(ctx context.Context, cfg config.Config, args []string) error {
	if cfg.WordsDB == "" {
		return errors.New("import needs -db or HANGMAN_WORDS_DB")
	}
	if len(args) != 1 {
		return errors.New("usage: hangman -db words.db import <file>")
	}

	raw, err := words.File(args[0]).Words(ctx)
	if err != nil {
		return err
	}
	db, err := words.OpenDB(cfg.WordsDB)
	if err != nil {
		return fmt.Errorf("open word db: %w", err)
	}
	defer db.Close()
	if err := words.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate word db: %w", err)
	}

	n, err := words.Import(ctx, db, raw)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	log.Info().Int("added", n).Str("db", cfg.WordsDB).Msg("words imported")
	fmt.Printf("Imported %d new words into %s\n", n, cfg.WordsDB)
	return nil
}
