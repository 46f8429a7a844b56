// Package dictionary reads word lists, one word per line, for indexing.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1 << 20

// ErrEmpty is returned when a dictionary holds no words.
var ErrEmpty = errors.New("dictionary has no words")

// Load reads the dictionary at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("Dictionary read")
	return words, nil
}

// Read returns the words of r in file order. The input is decoded as UTF-8, or
// UTF-16 when it starts with a UTF-16 byte order mark; any byte order mark is
// dropped. Trailing carriage returns are stripped and blank lines skipped.
func Read(r io.Reader) ([]string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	words := []string{}
	blank := 0
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(word) == "" {
			blank++
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if blank > 0 {
		log.Debug().Int("lines", blank).Msg("Skipped blank dictionary lines")
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
