package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/homemade"
	"github.com/eloworld/strategies/internal/strategy"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
)

const maxPlies = 400

type results struct {
	wins   int
	losses int
	draws  int
}

// playGame runs one game to completion, first playing white. Returns
// +1 / -1 / 0 from first's point of view.
func playGame(first strategy.Strategy, second strategy.Strategy) (int, Error) {
	b := board.NewChessBoard()

	mover := first
	waiter := second

	for plies := 0; plies < maxPlies; plies++ {
		if b.Status() != board.Ongoing {
			break
		}

		move, err := mover.ChooseMove(b, strategy.FixedTimeControl(strategy.DefaultSearchTime), false)
		if !IsNil(err) {
			return 0, err
		}

		err = b.Push(move)
		if !IsNil(err) {
			return 0, err
		}

		mover, waiter = waiter, mover
	}

	if b.Status() == board.Checkmate {
		// the side that cannot move lost, and it's the mover's turn
		if mover == first {
			return -1, NilError
		}
		return 1, NilError
	}

	return 0, NilError
}

func run(nameA string, nameB string, games int) Error {
	options := []homemade.Option{}
	if path := os.Getenv("STOCKFISH_PATH"); path != "" {
		options = append(options, homemade.WithOraclePath(path))
	}

	a, err := homemade.New(nameA, options...)
	if !IsNil(err) {
		return err
	}
	defer func() { _ = a.Shutdown() }()

	b, err := homemade.New(nameB, options...)
	if !IsNil(err) {
		return err
	}
	defer func() { _ = b.Shutdown() }()

	bar := progressbar.Default(int64(games), fmt.Sprintf("%v vs %v", a.Name(), b.Name()))

	tally := results{}
	for i := 0; i < games; i++ {
		var outcome int

		// alternate colors between games
		if i%2 == 0 {
			outcome, err = playGame(a, b)
		} else {
			outcome, err = playGame(b, a)
			outcome = -outcome
		}
		if !IsNil(err) {
			return err
		}

		switch outcome {
		case 1:
			tally.wins++
		case -1:
			tally.losses++
		default:
			tally.draws++
		}
		_ = bar.Add(1)
	}
	_ = bar.Close()

	fmt.Printf("%v vs %v over %v games: +%v -%v =%v\n",
		a.Name(), b.Name(), games, tally.wins, tally.losses, tally.draws)
	return NilError
}

func main() {
	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("data/CmdCompareMain"))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: compare <strategy> <strategy> [games] — strategies are", homemade.Names())
		os.Exit(1)
	}

	games := 10
	if len(args) > 2 {
		parsed, err := strconv.Atoi(args[2])
		if err != nil || parsed < 1 {
			fmt.Fprintln(os.Stderr, "bad game count:", args[2])
			os.Exit(1)
		}
		games = parsed
	}

	err := run(args[0], args[1], games)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
