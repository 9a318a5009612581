package words

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ExitSentinel is the literal input that ends a session.
const ExitSentinel = "exit"

// Player input verdicts. ValidatePlayerInput returns exactly one of these
// on failure, for the first check that fails.
var (
	ErrExit              = errors.New("exit requested")
	ErrWrongLength       = errors.New("input is not a 5-letter word")
	ErrInvalidCharacters = errors.New("input contains non-letter characters")
	ErrDuplicateLetters  = errors.New("input has duplicate letters")
	ErrNotInDictionary   = errors.New("input is not in the word list")
)

// IsStructurallyValid reports whether s is exactly 5 ASCII letters with no
// letter repeated. Case is ignored.
func IsStructurallyValid(s string) bool {
	return utf8.RuneCountInString(s) == WordLength && isAlpha(s) && !hasDuplicates(s)
}

// ValidatePlayerInput applies the per-turn checks in order:
// exit sentinel, length, letters only, duplicates, dictionary membership.
// It stops at the first failure. On success it returns the lowercase word.
func ValidatePlayerInput(s string, dict *Dictionary) (string, error) {
	switch {
	case s == ExitSentinel:
		return "", ErrExit
	case utf8.RuneCountInString(s) != WordLength:
		return "", ErrWrongLength
	case !isAlpha(s):
		return "", ErrInvalidCharacters
	case hasDuplicates(s):
		return "", ErrDuplicateLetters
	case !dict.Contains(s):
		return "", ErrNotInDictionary
	}
	return strings.ToLower(s), nil
}

// isAlpha reports whether s is all ASCII letters, either case.
func isAlpha(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// hasDuplicates reports whether any letter occurs twice, ignoring case.
// Assumes s holds ASCII letters only.
func hasDuplicates(s string) bool {
	var seen [26]bool
	for _, r := range strings.ToLower(s) {
		i := r - 'a'
		if i < 0 || i >= 26 {
			continue
		}
		if seen[i] {
			return true
		}
		seen[i] = true
	}
	return false
}
