// main.go
//
// Entry point for Words Virtuoso.
//
// Usage:
//   wordsvirtuoso <words file> <candidate words file>
//
// Every exit path returns status 1 except a win, whose status comes from
// WV_WIN_EXIT_CODE (default 1).

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/wordsvirtuoso/internal/clue"
	"github.com/robalobadob/wordsvirtuoso/internal/config"
	"github.com/robalobadob/wordsvirtuoso/internal/console"
	"github.com/robalobadob/wordsvirtuoso/internal/daily"
	"github.com/robalobadob/wordsvirtuoso/internal/game"
	"github.com/robalobadob/wordsvirtuoso/internal/words"
)

const exitFailure = 1

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run is main without the process exit, returning the exit status.
func run(args []string, in io.Reader, out io.Writer) int {
	// Argument count is checked before any file is touched, .env included.
	if len(args) != 2 {
		fmt.Fprintln(out, "Error: Wrong number of arguments.")
		return exitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return exitFailure
	}
	setupLogging(cfg.Log, os.Stderr)

	lists, err := words.LoadLists(args[0], args[1])
	if err != nil {
		log.Debug().Err(err).Msg("load word lists")
		fmt.Fprintln(out, startupMessage(err))
		return exitFailure
	}

	sess, err := game.NewSession(lists, newPicker(cfg.Game, time.Now()), time.Now)
	if err != nil {
		log.Error().Err(err).Msg("start session")
		fmt.Fprintf(out, "Error: %v\n", err)
		return exitFailure
	}
	log.Debug().
		Int("candidates", len(lists.Candidates)).
		Str("mode", cfg.Game.Mode).
		Msg("session started")

	painter := clue.Painter{Color: useColor(cfg.Game.Color, out)}
	if sum := console.Run(sess, in, out, painter); sum.State == game.StateWon {
		return cfg.Game.WinExitCode
	}
	return exitFailure
}

// startupMessage renders a word list loading error for the player.
func startupMessage(err error) string {
	var (
		missing     *words.MissingFileError
		invalid     *words.InvalidWordsError
		notIncluded *words.NotIncludedError
	)
	switch {
	case errors.As(err, &missing) && missing.Candidates:
		return fmt.Sprintf("Error: The candidate words file %s doesn't exist.", missing.Path)
	case errors.As(err, &missing):
		return fmt.Sprintf("Error: The words file %s doesn't exist.", missing.Path)
	case errors.As(err, &invalid):
		return fmt.Sprintf("Error: %d invalid words were found in the %s file.", invalid.Count, invalid.Path)
	case errors.As(err, &notIncluded):
		return fmt.Sprintf("Error: %d candidate words are not included in the %s file.", notIncluded.Count, notIncluded.Path)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// newPicker returns the secret-word source for the configured mode.
func newPicker(cfg config.GameConfig, now time.Time) game.Picker {
	if cfg.Mode == config.ModeDaily {
		return daily.Picker{Date: now, Salt: cfg.DailySalt}
	}
	return newRand(cfg.Seed)
}

// newRand returns the secret-word source; a zero seed means unseeded.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// useColor resolves the configured color mode against out.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorNever:
		return false
	case config.ColorAuto:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}
