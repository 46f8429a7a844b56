package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	anagram "github.com/sarthakjha889/go-anagram-trie"
	"github.com/sarthakjha889/go-anagram-trie/internal/config"
	"github.com/sarthakjha889/go-anagram-trie/internal/dictionary"
	"github.com/sarthakjha889/go-anagram-trie/internal/repl"
)

// logOutput receives structured logs.
var logOutput io.Writer = os.Stderr

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cfg.Dictionary == "" && fs.NArg() > 0 {
		cfg.Dictionary = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	setupLogging(cfg.Log)

	fmt.Println("Welcome to the Anagram Finder")
	fmt.Println("-----------------------------")
	if cfg.Dictionary == "" {
		fmt.Println("No dictionary file provided. Exiting.")
		return 1
	}

	start := time.Now()
	words, err := dictionary.Load(cfg.Dictionary)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Dictionary).Msg("Failed to load dictionary")
		return 1
	}
	trie := anagram.Build(words)
	elapsed := time.Since(start)
	log.Info().
		Str("path", cfg.Dictionary).
		Int("words", trie.Len()).
		Int("nodes", trie.Nodes()).
		Dur("elapsed", elapsed).
		Msg("Dictionary loaded")
	fmt.Printf("Dictionary loaded in %d ms\n\n", elapsed.Milliseconds())

	session := repl.New(trie, os.Stdin, os.Stdout, repl.WithTimeout(cfg.Search.Timeout))
	if err := session.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("Prompt failed")
		return 1
	}
	return 0
}

func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Format == "json" {
		log.Logger = zerolog.New(logOutput).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOutput, TimeFormat: time.Kitchen})
}
