// Package repl runs the interactive anagram prompt.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	firstPrompt = "Enter a word. > "
	nextPrompt  = "Enter another word. > "
	exitCommand = "exit"

	// maxLineSize bounds a single line of input.
	maxLineSize = 16 << 20
)

var wordPattern = regexp.MustCompile(`^\s*[a-zA-Z]+\s*$`)

// Finder is the search the prompt dispatches to. *anagram.Trie implements it.
type Finder interface {
	FindAnagrams(query string) []string
}

// Session reads words from its input and writes their anagrams to its output.
type Session struct {
	finder  Finder
	in      *bufio.Scanner
	out     io.Writer
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithTimeout abandons a search that runs longer than d. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// WithClock replaces the clock used to time searches.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session over finder.
func New(finder Finder, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		finder: finder,
		in:     bufio.NewScanner(in),
		out:    out,
		now:    time.Now,
	}
	s.in.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prompts until the user types exit, input ends or ctx is done. Reaching the
// end of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	prompt := firstPrompt
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, prompt)
		prompt = nextPrompt

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			break
		}
		input := s.in.Text()
		if input == exitCommand {
			break
		}
		if !wordPattern.MatchString(input) {
			fmt.Fprint(s.out, "Bad input.\n\n")
			continue
		}

		word := strings.TrimSpace(input)
		fmt.Fprintf(s.out, "Finding anagrams for: %s\n", word)
		if err := s.find(ctx, word); err != nil {
			return err
		}
	}
	fmt.Fprintln(s.out, "Exiting.")
	return nil
}

func (s *Session) find(ctx context.Context, word string) error {
	start := s.now()
	found, err := s.search(ctx, word)
	elapsed := s.now().Sub(start)
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Str("word", word).Dur("timeout", s.timeout).Msg("Search abandoned")
		fmt.Fprintf(s.out, "Search for %s timed out after %s\n\n", word, s.timeout)
		return nil
	}
	if err != nil {
		return err
	}
	log.Debug().Str("word", word).Int("found", len(found)).Dur("elapsed", elapsed).Msg("Search finished")
	fmt.Fprint(s.out, Format(word, found, elapsed))
	return nil
}

// search runs the query, on its own goroutine when a timeout is set. An abandoned
// search keeps running until it finishes and its result is dropped.
func (s *Session) search(ctx context.Context, word string) ([]string, error) {
	if s.timeout <= 0 {
		return s.finder.FindAnagrams(word), nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan []string, 1)
	go func() {
		done <- s.finder.FindAnagrams(word)
	}()
	select {
	case found := <-done:
		return found, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Format renders a search result the way the prompt prints it.
func Format(word string, found []string, elapsed time.Duration) string {
	ms := elapsed.Milliseconds()
	switch len(found) {
	case 0:
		return fmt.Sprintf("No anagrams found for %s in %d ms\n\n", word, ms)
	case 1:
		return fmt.Sprintf("1 anagram found for %s in %d ms\n%s\n\n", word, ms, found[0])
	default:
		return fmt.Sprintf("%d anagrams found for %s in %d ms\n%s\n\n", len(found), word, ms, strings.Join(found, ","))
	}
}
