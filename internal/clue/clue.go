// Package clue renders scored guesses as ANSI background-colored letters.
package clue

import (
	"strings"

	"github.com/robalobadob/wordsvirtuoso/internal/game"
)

// 256-color background escapes.
const (
	bgCorrect = "\x1b[48:5:10m" // green
	bgPresent = "\x1b[48:5:11m" // yellow
	bgAbsent  = "\x1b[48:5:7m"  // grey
	bgWrong   = "\x1b[48:5:14m" // cyan, wrong-letters summary
	reset     = "\x1b[0m"
)

// Painter turns clues into display lines. The zero value paints plain
// uppercase letters.
type Painter struct {
	Color bool
}

// Clue renders one scored guess, each letter uppercased and colored by mark.
func (p Painter) Clue(c game.Clue) string {
	var b strings.Builder
	for _, l := range c {
		b.WriteString(p.wrap(background(l.Mark), string(upper(l.Char))))
	}
	return b.String()
}

// History renders every clue of a session, one per line, oldest first.
func (p Painter) History(clues []game.Clue) []string {
	out := make([]string, 0, len(clues))
	for _, c := range clues {
		out = append(out, p.Clue(c))
	}
	return out
}

// Wrong renders the sorted wrong-letters summary as a single colored run.
func (p Painter) Wrong(s game.LetterSet) string {
	return p.wrap(bgWrong, s.Sorted())
}

func (p Painter) wrap(bg, text string) string {
	if !p.Color {
		return text
	}
	return bg + text + reset
}

func background(m game.Mark) string {
	switch m {
	case game.MarkCorrect:
		return bgCorrect
	case game.MarkPresent:
		return bgPresent
	default:
		return bgAbsent
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
