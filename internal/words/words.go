// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load the full word list and the candidate list from files given on the command line.
//   - Check load-time integrity (every line a valid word, every candidate in the full list).
//   - Keep a lookup set so guesses are checked without touching the files again.
//
// Word Lists:
//   - "words":      every legal guess.
//   - "candidates": words that may be picked as the secret (subset of "words").
//
// Constraints:
//   • Words are 5 ASCII letters with no repeated letter.
//   • Lists are trimmed and normalized to lowercase once, at load.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// WordLength is the number of letters in every word of the game.
const WordLength = 5

// Dictionary is the read-only, normalized full word list.
type Dictionary struct {
	words []string            // in file order, lowercase
	set   map[string]struct{} // lookup for Contains
}

// NewDictionary builds a Dictionary from already-read words.
// Entries are trimmed and lowercased; no validity check is applied here.
func NewDictionary(list []string) *Dictionary {
	norm := make([]string, 0, len(list))
	for _, w := range list {
		norm = append(norm, normalize(w))
	}
	return &Dictionary{words: norm, set: toSet(norm)}
}

// Contains reports whether w (any case) is a dictionary word.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[normalize(w)]
	return ok
}

// Words returns the dictionary entries in load order.
func (d *Dictionary) Words() []string { return d.words }

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.words) }

// Lists is the result of a successful LoadLists.
type Lists struct {
	Dictionary *Dictionary
	Candidates []string // lowercase, every entry present in Dictionary
}

// MissingFileError reports a word list path that does not exist.
type MissingFileError struct {
	Path       string
	Candidates bool // true for the candidate list, false for the full list
}

func (e *MissingFileError) Error() string {
	if e.Candidates {
		return fmt.Sprintf("words: candidate words file %s does not exist", e.Path)
	}
	return fmt.Sprintf("words: words file %s does not exist", e.Path)
}

// InvalidWordsError reports how many lines of a file are not valid words.
type InvalidWordsError struct {
	Path  string
	Count int
}

func (e *InvalidWordsError) Error() string {
	return fmt.Sprintf("words: %d invalid words in %s", e.Count, e.Path)
}

// NotIncludedError reports how many candidates are missing from the full list.
type NotIncludedError struct {
	Path  string // the full word list
	Count int
}

func (e *NotIncludedError) Error() string {
	return fmt.Sprintf("words: %d candidate words are not included in %s", e.Count, e.Path)
}

// LoadLists reads and checks both word lists, in this order:
//  1. both files exist,
//  2. every line of the full list is a valid word,
//  3. every line of the candidate list is a valid word,
//  4. every candidate is in the full list.
//
// The first failing check is returned as a typed error.
func LoadLists(wordsPath, candidatesPath string) (*Lists, error) {
	if err := mustExist(wordsPath, false); err != nil {
		return nil, err
	}
	if err := mustExist(candidatesPath, true); err != nil {
		return nil, err
	}

	all, err := readWordFile(wordsPath)
	if err != nil {
		return nil, err
	}
	cands, err := readWordFile(candidatesPath)
	if err != nil {
		return nil, err
	}

	if n := CountInvalid(all); n != 0 {
		return nil, &InvalidWordsError{Path: wordsPath, Count: n}
	}
	if n := CountInvalid(cands); n != 0 {
		return nil, &InvalidWordsError{Path: candidatesPath, Count: n}
	}

	dict := NewDictionary(all)
	if n := CountNotIncluded(dict, cands); n != 0 {
		return nil, &NotIncludedError{Path: wordsPath, Count: n}
	}

	log.Debug().
		Str("words", wordsPath).
		Str("candidates", candidatesPath).
		Int("wordCount", dict.Len()).
		Int("candidateCount", len(cands)).
		Msg("word lists loaded")

	return &Lists{Dictionary: dict, Candidates: cands}, nil
}

// CountInvalid returns how many entries fail IsStructurallyValid.
func CountInvalid(list []string) int {
	n := 0
	for _, w := range list {
		if !IsStructurallyValid(w) {
			n++
		}
	}
	return n
}

// CountNotIncluded returns how many candidates are absent from dict.
func CountNotIncluded(dict *Dictionary, candidates []string) int {
	n := 0
	for _, w := range candidates {
		if !dict.Contains(w) {
			n++
		}
	}
	return n
}

func mustExist(path string, candidates bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingFileError{Path: path, Candidates: candidates}
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}

// readWordFile loads one word per line from a file, trimmed and lowercased.
// Blank lines are kept so that they count as invalid words, and lines of any
// length are read whole.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			out = append(out, normalize(line))
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
