// Package dictionary holds the immutable set of valid words, loaded once at
// process start and shared by all sessions.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Dictionary is a pure lookup over a fixed word set. It is safe for
// concurrent use without synchronization because it never changes after
// construction.
type Dictionary struct {
	words map[string]struct{}
}

// New builds a dictionary from a word slice. Words are matched
// case-insensitively.
func New(words []string) *Dictionary {
	set := make(map[string]struct{}, len(words))
	lo.ForEach(words, func(w string, _ int) {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	})
	return &Dictionary{words: set}
}

// Load reads a newline-separated word list file. Blank lines and lines
// starting with '#' are skipped.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	words = lo.Filter(words, func(w string, _ int) bool {
		trimmed := strings.TrimSpace(w)
		return trimmed != "" && !strings.HasPrefix(trimmed, "#")
	})

	return New(words), nil
}

// Contains reports whether the word is in the dictionary, ignoring case
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len reports the number of words loaded
func (d *Dictionary) Len() int {
	return len(d.words)
}
