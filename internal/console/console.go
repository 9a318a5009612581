// internal/console/console.go
//
// Line-oriented terminal driver for one game session.
// Responsibilities:
//   - Prompt for a guess, read one line, hand it to the session.
//   - Print the rejection reason for invalid input.
//   - Print the full clue history and the wrong-letters line after each turn.
//   - Print the win or exit messages and report a summary to the caller.
//
// The session is passed in explicitly; nothing here is package state, so the
// loop runs the same against a terminal or a strings.Reader.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsvirtuoso/internal/clue"
	"github.com/robalobadob/wordsvirtuoso/internal/game"
	"github.com/robalobadob/wordsvirtuoso/internal/words"
)

const (
	title    = "Words Virtuoso"
	prompt   = "Input a 5-letter word:"
	gameOver = "The game is over."
)

// reasons maps validation verdicts to the line shown to the player.
var reasons = map[error]string{
	words.ErrWrongLength:       "The input isn't a 5-letter word.",
	words.ErrInvalidCharacters: "One or more letters of the input aren't valid.",
	words.ErrDuplicateLetters:  "The input has duplicate letters.",
	words.ErrNotInDictionary:   "The input word isn't included in my words list.",
}

// Summary is what a finished session reports back.
type Summary struct {
	State   game.State
	Turns   int
	Elapsed time.Duration
}

// Run plays s to completion, reading guesses from in and writing to out.
// It returns when the player wins, types the exit sentinel, or in is exhausted.
func Run(s *game.Session, in io.Reader, out io.Writer, p clue.Painter) Summary {
	r := bufio.NewReader(in)
	fmt.Fprintln(out, title)

	for !s.State.Finished() {
		fmt.Fprintln(out, prompt)
		line, ok := readLine(r)
		if !ok {
			s.Abort()
			fmt.Fprintln(out, gameOver)
			break
		}

		res := s.Submit(line)
		log.Debug().
			Int("turn", res.Turn).
			Str("state", string(res.State)).
			AnErr("verdict", res.Err).
			Msg("turn")

		switch res.State {
		case game.StateWon:
			printHistory(out, p, s)
			fmt.Fprintln(out, "Correct!")
			if res.Turn == 1 {
				fmt.Fprintln(out, "Amazing luck! The solution was found at once.")
			}
			fmt.Fprintf(out, "The solution was found after %d tries in %d seconds.\n",
				res.Turn, int(s.Elapsed()/time.Second))
			continue
		case game.StateAborted:
			fmt.Fprintln(out, gameOver)
			continue
		}

		if res.Err != nil {
			fmt.Fprintln(out, Reason(res.Err))
		}
		printHistory(out, p, s)
		if len(s.Clues) > 0 {
			fmt.Fprintln(out, p.Wrong(s.Wrong))
		}
	}

	sum := Summary{State: s.State, Turns: s.Turn, Elapsed: s.Elapsed()}
	log.Debug().
		Str("state", string(sum.State)).
		Int("turns", sum.Turns).
		Dur("elapsed", sum.Elapsed).
		Msg("session finished")
	return sum
}

// Reason returns the player-facing line for a validation verdict.
func Reason(err error) string {
	for target, msg := range reasons {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "The input isn't valid."
}

// readLine returns the next line without its terminator. Lines of any length
// are returned whole. It reports false once the reader is exhausted or fails.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Warn().Err(err).Msg("read guess")
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true
}

func printHistory(out io.Writer, p clue.Painter, s *game.Session) {
	for _, line := range p.History(s.Clues) {
		fmt.Fprintln(out, line)
	}
}
