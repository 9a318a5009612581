// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create a session with a secret drawn from the candidate list.
//   - Validate and apply guesses (exit sentinel, structure, word list).
//   - Score guesses letter by letter against the secret.
//   - Track state transitions: playing → won/aborted.
//
// Notes:
//   - Word lists and input validation come from the words package.
//   - Every accepted word is duplicate-free, so scoring only asks whether a
//     letter occurs anywhere in the secret. It does not count multiplicities.
package game

import (
	"errors"
	"strings"
	"time"

	"github.com/robalobadob/wordsvirtuoso/internal/words"
)

var (
	ErrNoCandidates = errors.New("game: candidate list is empty")
	ErrFinished     = errors.New("game: session finished")
)

// Picker chooses an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

// Session holds the state of one game from the first prompt to a win or exit.
type Session struct {
	Secret string    // lowercase, never shown to the player directly
	Turn   int       // number of the turn awaiting input; starts at 1
	Start  time.Time // when the session began
	End    time.Time // set when the session finishes
	Clues  []Clue    // scored guesses in order
	Wrong  LetterSet // uppercase letters known to be absent
	State  State

	dict *words.Dictionary
	now  func() time.Time
}

// TurnResult describes what one input did to the session.
type TurnResult struct {
	Turn  int   // turn number the input was submitted on
	State State // session state after the input
	Clue  Clue  // set when the input was scored
	Err   error // validation verdict when the input was rejected
}

// NewSession starts a session over lists, drawing the secret with rng and
// timing it with now. A nil now means time.Now.
func NewSession(lists *words.Lists, rng Picker, now func() time.Time) (*Session, error) {
	if len(lists.Candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if now == nil {
		now = time.Now
	}
	secret := lists.Candidates[rng.IntN(len(lists.Candidates))]
	return &Session{
		Secret: strings.ToLower(secret),
		Turn:   1,
		Start:  now(),
		Wrong:  LetterSet{},
		State:  StatePlaying,
		dict:   lists.Dictionary,
		now:    now,
	}, nil
}

// Submit applies one line of player input.
//
// Order of checks:
//   - A word equal to the secret (any case) wins.
//   - The exit sentinel aborts.
//   - Any other validation failure is returned in TurnResult.Err and still
//     consumes a turn.
//   - A valid guess is scored, its clue recorded and its absent letters added
//     to Wrong.
func (s *Session) Submit(input string) TurnResult {
	if s.State.Finished() {
		return TurnResult{Turn: s.Turn, State: s.State, Err: ErrFinished}
	}
	input = strings.TrimSpace(input)

	if strings.EqualFold(input, s.Secret) {
		clue, _ := Score(s.Secret, s.Secret)
		s.Clues = append(s.Clues, clue)
		s.finish(StateWon)
		return TurnResult{Turn: s.Turn, State: s.State, Clue: clue}
	}

	word, err := words.ValidatePlayerInput(input, s.dict)
	if errors.Is(err, words.ErrExit) {
		s.finish(StateAborted)
		return TurnResult{Turn: s.Turn, State: s.State, Err: err}
	}

	turn := s.Turn
	s.Turn++
	if err != nil {
		return TurnResult{Turn: turn, State: s.State, Err: err}
	}

	clue, wrong := Score(s.Secret, word)
	s.Clues = append(s.Clues, clue)
	s.Wrong.Add(wrong...)
	return TurnResult{Turn: turn, State: s.State, Clue: clue}
}

// Abort ends a session that is still playing, e.g. when input runs out.
func (s *Session) Abort() {
	if !s.State.Finished() {
		s.finish(StateAborted)
	}
}

// Elapsed returns the session's wall-clock duration so far, or its total
// duration once finished.
func (s *Session) Elapsed() time.Duration {
	end := s.End
	if end.IsZero() {
		end = s.now()
	}
	if d := end.Sub(s.Start); d > 0 {
		return d
	}
	return 0
}

func (s *Session) finish(st State) {
	s.State = st
	s.End = s.now()
}

// Score classifies each letter of guess against secret and returns the
// uppercase letters that do not occur in secret, in guess order.
//
// Per position i:
//   - guess[i] not anywhere in secret → MarkAbsent.
//   - guess[i] == secret[i]           → MarkCorrect.
//   - otherwise                       → MarkPresent.
//
// Both words must be lowercase, equal length and free of repeated letters.
func Score(secret, guess string) (Clue, []byte) {
	clue := make(Clue, len(guess))
	var wrong []byte
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		switch {
		case strings.IndexByte(secret, c) < 0:
			clue[i] = Letter{Char: c, Mark: MarkAbsent}
			wrong = append(wrong, upper(c))
		case i < len(secret) && secret[i] == c:
			clue[i] = Letter{Char: c, Mark: MarkCorrect}
		default:
			clue[i] = Letter{Char: c, Mark: MarkPresent}
		}
	}
	return clue, wrong
}
