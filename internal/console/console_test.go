package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsvirtuoso/internal/clue"
	"github.com/robalobadob/wordsvirtuoso/internal/game"
	"github.com/robalobadob/wordsvirtuoso/internal/words"
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

func newSession(t *testing.T, now func() time.Time) *game.Session {
	t.Helper()
	lists := &words.Lists{
		Dictionary: words.NewDictionary([]string{"crane", "shirt", "plots"}),
		Candidates: []string{"crane"},
	}
	s, err := game.NewSession(lists, firstPicker{}, now)
	require.NoError(t, err)
	return s
}

func play(t *testing.T, s *game.Session, input string) (Summary, []string) {
	t.Helper()
	var out bytes.Buffer
	sum := Run(s, strings.NewReader(input), &out, clue.Painter{})
	return sum, strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRun_WinOnFirstTurn(t *testing.T) {
	s := newSession(t, nil)
	sum, lines := play(t, s, "crane\n")

	assert.Equal(t, game.StateWon, sum.State)
	assert.Equal(t, 1, sum.Turns)
	assert.GreaterOrEqual(t, sum.Elapsed, time.Duration(0))
	assert.Equal(t, []string{
		"Words Virtuoso",
		"Input a 5-letter word:",
		"CRANE",
		"Correct!",
		"Amazing luck! The solution was found at once.",
		"The solution was found after 1 tries in 0 seconds.",
	}, lines)
}

func TestRun_GuessesThenWin(t *testing.T) {
	start := time.Unix(0, 0)
	calls := 0
	now := func() time.Time {
		calls++
		if calls == 1 {
			return start
		}
		return start.Add(42 * time.Second)
	}
	s := newSession(t, now)

	sum, lines := play(t, s, "shirt\nplots\nCrane\n")

	assert.Equal(t, game.StateWon, sum.State)
	assert.Equal(t, 3, sum.Turns)
	assert.Equal(t, 42*time.Second, sum.Elapsed)
	assert.Equal(t, []string{
		"Words Virtuoso",
		"Input a 5-letter word:",
		"SHIRT",
		"HIST",
		"Input a 5-letter word:",
		"SHIRT",
		"PLOTS",
		"HILOPST",
		"Input a 5-letter word:",
		"SHIRT",
		"PLOTS",
		"CRANE",
		"Correct!",
		"The solution was found after 3 tries in 42 seconds.",
	}, lines)
}

func TestRun_InvalidInputCostsTurnAndRedisplays(t *testing.T) {
	s := newSession(t, nil)
	sum, lines := play(t, s, "toolong\nshirt\n12345\napple\nslate\nexit\n")

	assert.Equal(t, game.StateAborted, sum.State)
	assert.Equal(t, 6, sum.Turns)
	assert.Equal(t, []string{
		"Words Virtuoso",
		"Input a 5-letter word:",
		"The input isn't a 5-letter word.",
		"Input a 5-letter word:",
		"SHIRT",
		"HIST",
		"Input a 5-letter word:",
		"One or more letters of the input aren't valid.",
		"SHIRT",
		"HIST",
		"Input a 5-letter word:",
		"The input has duplicate letters.",
		"SHIRT",
		"HIST",
		"Input a 5-letter word:",
		"The input word isn't included in my words list.",
		"SHIRT",
		"HIST",
		"Input a 5-letter word:",
		"The game is over.",
	}, lines)
}

func TestRun_EndOfInputAborts(t *testing.T) {
	s := newSession(t, nil)
	sum, lines := play(t, s, "shirt")

	assert.Equal(t, game.StateAborted, sum.State)
	assert.Equal(t, 2, sum.Turns)
	assert.Equal(t, "The game is over.", lines[len(lines)-1])
}

func TestRun_OversizedLineIsWrongLength(t *testing.T) {
	s := newSession(t, nil)
	sum, lines := play(t, s, strings.Repeat("a", 70000)+"\nshirt\ncrane\n")

	assert.Equal(t, game.StateWon, sum.State)
	assert.Equal(t, 3, sum.Turns)
	assert.Equal(t, []string{
		"Words Virtuoso",
		"Input a 5-letter word:",
		"The input isn't a 5-letter word.",
		"Input a 5-letter word:",
		"SHIRT",
		"HIST",
		"Input a 5-letter word:",
		"SHIRT",
		"CRANE",
		"Correct!",
		"The solution was found after 3 tries in 0 seconds.",
	}, lines)
}

func TestRun_CRLFInput(t *testing.T) {
	s := newSession(t, nil)
	sum, _ := play(t, s, "shirt\r\ncrane\r\n")

	assert.Equal(t, game.StateWon, sum.State)
	assert.Equal(t, 2, sum.Turns)
}

func TestRun_ColoredOutput(t *testing.T) {
	s := newSession(t, nil)
	var out bytes.Buffer
	Run(s, strings.NewReader("plots\nexit\n"), &out, clue.Painter{Color: true})

	assert.Contains(t, out.String(), "\x1b[48:5:7mP\x1b[0m")
	assert.Contains(t, out.String(), "\x1b[48:5:14mLOPST\x1b[0m")
}

// The scoring scenario from the word lists crane/shirt/plots, checked
// against the per-position rule rather than a literal.
func TestRun_ScoresAgainstSecret(t *testing.T) {
	s := newSession(t, nil)
	play(t, s, "plots\nshirt\nexit\n")

	require.Len(t, s.Clues, 2)
	for _, c := range s.Clues {
		for i, l := range c {
			switch {
			case !strings.ContainsRune(s.Secret, rune(l.Char)):
				assert.Equal(t, game.MarkAbsent, l.Mark)
				assert.True(t, s.Wrong.Has(l.Char-'a'+'A'))
			case s.Secret[i] == l.Char:
				assert.Equal(t, game.MarkCorrect, l.Mark)
			default:
				assert.Equal(t, game.MarkPresent, l.Mark)
			}
		}
	}
}

func TestReason(t *testing.T) {
	assert.Equal(t, "The input isn't a 5-letter word.", Reason(words.ErrWrongLength))
	assert.Equal(t, "The input has duplicate letters.", Reason(words.ErrDuplicateLetters))
	assert.Equal(t, "The input isn't valid.", Reason(errors.New("other")))
}
