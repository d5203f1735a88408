package uci

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/strategy"
)

const startingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// UciRunner lets any strategy play as a UCI engine: it keeps the current
// board in sync with "position" commands and answers "go" with the
// strategy's chosen move.
type UciRunner struct {
	strategy strategy.Strategy
	logger   Logger

	board *board.ChessBoard
}

type UciRunnerOption func(*UciRunner)

func WithLogger(logger Logger) UciRunnerOption {
	return func(u *UciRunner) {
		u.logger = logger
	}
}

func NewUciRunner(s strategy.Strategy, options ...UciRunnerOption) *UciRunner {
	u := &UciRunner{strategy: s}
	for _, option := range options {
		option(u)
	}
	if u.logger == nil {
		u.logger = &SilentLogger
	}
	return u
}

func parseFen(input string) string {
	s := strings.TrimPrefix(input, "position ")

	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.Split(s, " moves ")[0]
	} else if strings.HasPrefix(s, "startpos") {
		return startingFen
	}

	panic(fmt.Errorf("couldn't parse '%v'", s))
}

func parseMoves(input string) []string {
	result := []string{}
	if strings.Contains(input, " moves ") {
		fields := strings.Fields(strings.SplitN(input, " moves ", 2)[1])
		result = append(result, fields...)
	}
	return result
}

// goParams is everything we care about from a "go" command. Durations
// arrive in milliseconds on the wire.
type goParams struct {
	wtime Optional[time.Duration]
	btime Optional[time.Duration]
	winc  time.Duration
	binc  time.Duration

	moveTime Optional[time.Duration]
}

func parseGoParams(input string) goParams {
	params := goParams{}
	fields := strings.Fields(input)
	for i := 0; i+1 < len(fields); i++ {
		ms, err := strconv.Atoi(fields[i+1])
		if err != nil {
			continue
		}
		value := time.Duration(ms) * time.Millisecond
		switch fields[i] {
		case "wtime":
			params.wtime = Some(value)
		case "btime":
			params.btime = Some(value)
		case "winc":
			params.winc = value
		case "binc":
			params.binc = value
		case "movetime":
			params.moveTime = Some(value)
		}
	}
	return params
}

func (u *UciRunner) setupPosition(input string) Error {
	b, err := board.ChessBoardFromFen(parseFen(input))
	if !IsNil(err) {
		return err
	}
	for _, move := range parseMoves(input) {
		err = b.Push(board.Move{Uci: move})
		if !IsNil(err) {
			return err
		}
	}
	u.board = b
	return NilError
}

func (u *UciRunner) handleGo(input string) (board.Move, Error) {
	if u.board == nil {
		return board.Move{}, Errorf("go before position")
	}

	params := parseGoParams(input)

	if params.moveTime.HasValue() {
		return u.strategy.ChooseMove(u.board, strategy.FixedTimeControl(params.moveTime.Value()), false)
	}

	if params.wtime.HasValue() && params.btime.HasValue() {
		return strategy.ChooseMoveWithPonder(u.strategy, u.board,
			params.wtime.Value(), params.btime.Value(),
			params.winc, params.binc, false)
	}

	return u.strategy.ChooseMove(u.board, strategy.FixedTimeControl(time.Second), false)
}

func (u *UciRunner) HandleInput(input string) ([]string, Error) {
	result := []string{}

	switch {
	case input == "uci":
		result = append(result, fmt.Sprintf("id name %v", u.strategy.Name()))
		result = append(result, "id author eloworld")
		result = append(result, "uciok")
	case input == "isready":
		result = append(result, "readyok")
	case input == "ucinewgame":
		u.board = nil
		u.strategy.Notify("newgame")
	case strings.HasPrefix(input, "position "):
		err := u.setupPosition(input)
		if !IsNil(err) {
			return result, err
		}
	case strings.HasPrefix(input, "go"):
		move, err := u.handleGo(input)
		if !IsNil(err) {
			return result, err
		}
		result = append(result, fmt.Sprintf("bestmove %v", move.Uci))
	case strings.HasPrefix(input, "setoption "):
		fields := strings.Fields(input)
		name, value := "", ""
		for i := 0; i+1 < len(fields); i++ {
			if fields[i] == "name" {
				name = fields[i+1]
			}
			if fields[i] == "value" {
				value = fields[i+1]
			}
		}
		u.strategy.Notify("setoption", name, value)
	case input == "ponderhit":
		u.strategy.Notify("ponderhit")
	case input == "stop":
		u.strategy.Notify("stop")
	default:
		u.logger.Println("ignoring:", input)
	}

	return result, NilError
}
