package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoWords is returned when no non-empty words remain after collection.
var ErrNoWords = errors.New("no words provided: use --input or pass words as arguments")

// Set is the unique, order-stable sequence of seed words supplied by the
// caller. Invariant: no duplicates (case-sensitive), no empty strings.
// The set is owned by the orchestrator and borrowed read-only by the
// counter and the assembler.
type Set struct {
	words []string
}

// NewSet builds a Set from the given words, preserving first-occurrence
// order and dropping duplicates and empty strings.
func NewSet(words []string) *Set {
	s := &Set{}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		s.words = append(s.words, w)
	}
	return s
}

// Collect gathers words from direct arguments and an optional input file
// and returns the deduplicated set. The file format is one word per
// line; a line may also hold a comma-separated list. Blank lines are
// skipped. Returns ErrNoWords when nothing usable remains.
func Collect(args []string, inputFile string) (*Set, error) {
	collected := make([]string, 0, len(args))
	collected = append(collected, args...)

	if inputFile != "" {
		fromFile, err := readWordFile(inputFile)
		if err != nil {
			return nil, err
		}
		collected = append(collected, fromFile...)
	}

	s := NewSet(collected)
	if s.Len() == 0 {
		return nil, ErrNoWords
	}
	return s, nil
}

// readWordFile reads words from path, splitting comma-separated lines.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.Contains(line, ",") {
			for _, part := range strings.Split(line, ",") {
				out = append(out, strings.TrimSpace(part))
			}
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}
	return out, nil
}

// Len returns the number of unique words.
func (s *Set) Len() int { return len(s.words) }

// Words returns the words in first-occurrence order. The returned slice
// must not be modified.
func (s *Set) Words() []string { return s.words }

// Word returns the word at index i.
func (s *Set) Word(i int) string { return s.words[i] }

// AverageLength returns the mean byte length of the words, or zero for
// an empty set.
func (s *Set) AverageLength() float64 {
	if len(s.words) == 0 {
		return 0
	}
	var total int
	for _, w := range s.words {
		total += len(w)
	}
	return float64(total) / float64(len(s.words))
}
