// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Clue: one scored guess.
//   - LetterSet: letters known to be absent from the secret.
//   - State: where a session is in its lifecycle.

package game

import "sort"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret at this position.
//   - "present": letter is in the secret at a different position.
//   - "absent":  letter does not occur in the secret.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Letter is one classified position of a guess.
type Letter struct {
	Char byte // lowercase ASCII letter
	Mark Mark
}

// Clue is a fully scored guess, one Letter per position.
type Clue []Letter

// Word returns the guessed word in lowercase.
func (c Clue) Word() string {
	b := make([]byte, len(c))
	for i, l := range c {
		b[i] = l.Char
	}
	return string(b)
}

// Solved reports whether every position is MarkCorrect.
func (c Clue) Solved() bool {
	if len(c) == 0 {
		return false
	}
	for _, l := range c {
		if l.Mark != MarkCorrect {
			return false
		}
	}
	return true
}

// LetterSet is a duplicate-free set of uppercase letters.
type LetterSet map[byte]struct{}

// Add inserts letters; adding one already present is a no-op.
func (s LetterSet) Add(letters ...byte) {
	for _, c := range letters {
		s[c] = struct{}{}
	}
}

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the letters in ascending order as one string.
func (s LetterSet) Sorted() string {
	b := make([]byte, 0, len(s))
	for c := range s {
		b = append(b, c)
	}
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// State is the lifecycle state of a Session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateAborted State = "aborted"
)

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s == StateWon || s == StateAborted }

// upper maps a lowercase ASCII letter to uppercase; other bytes pass through.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
