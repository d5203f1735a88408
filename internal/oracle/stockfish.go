package oracle

import (
	"fmt"
	"strings"
	"time"

	"github.com/eloworld/strategies/internal/binary"
	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
)

// Oracle scores a position within a time limit. The score is relative to
// the side to move in the position handed over, so after pushing a
// candidate move it is the opponent's view of the result.
type Oracle interface {
	Evaluate(pos board.Position, limit time.Duration) (Eval, Error)
	Close() Error
}

// StockfishOracle runs a UCI engine as a child process and asks it for a
// single evaluation per query. The process starts on the first query;
// Close may be called any number of times, including before any query.
type StockfishOracle struct {
	logger Logger
	path   string

	binary *binary.BinaryRunner
}

var _ Oracle = (*StockfishOracle)(nil)

type StockfishOracleOption func(*StockfishOracle)

func WithPath(path string) StockfishOracleOption {
	return func(o *StockfishOracle) {
		o.path = path
	}
}

func WithLogger(logger Logger) StockfishOracleOption {
	return func(o *StockfishOracle) {
		o.logger = logger
	}
}

func NewStockfishOracle(options ...StockfishOracleOption) *StockfishOracle {
	o := &StockfishOracle{}
	for _, option := range options {
		option(o)
	}
	if o.path == "" {
		o.path = "stockfish"
	}
	if o.logger == nil {
		o.logger = &SilentLogger
	}
	return o
}

func (o *StockfishOracle) start() Error {
	var err Error
	o.binary, err = binary.SetupBinaryRunner(
		o.path, "stockfish", []string{},
		binary.WithLogger(o.logger))
	if !IsNil(err) {
		return err
	}

	output, err := o.binary.Run("uci", Some("uciok"))
	if !IsNil(err) {
		return err
	}
	if !Contains(output, "uciok") {
		return Errorf("%v didn't say uciok", o.path)
	}

	output, err = o.binary.Run("isready", Some("readyok"))
	if !IsNil(err) {
		return err
	}
	if !Contains(output, "readyok") {
		return Errorf("%v didn't say readyok", o.path)
	}

	return o.binary.RunAsync("ucinewgame")
}

func positionInput(pos board.Position) string {
	input := "position fen " + pos.Fen
	if len(pos.Moves) > 0 {
		input += " moves " + strings.Join(pos.Moves, " ")
	}
	return input
}

func (o *StockfishOracle) Evaluate(pos board.Position, limit time.Duration) (Eval, Error) {
	if limit <= 0 {
		return 0, Errorf("non-positive time limit %v", limit)
	}

	if o.binary == nil {
		err := o.start()
		if !IsNil(err) {
			return 0, err
		}
	}

	err := o.binary.RunAsync(positionInput(pos))
	if !IsNil(err) {
		return 0, err
	}

	score := Empty[Eval]()

	ms := limit.Milliseconds()
	if ms < 1 {
		ms = 1
	}

	err = o.binary.RunSync(
		fmt.Sprintf("go movetime %v", ms),
		func(line string) (LoopResult, Error) {
			if strings.HasPrefix(line, "info ") && strings.Contains(line, " score ") {
				_, lineScore, parseErr := MoveAndScoreFromInfoLine(line)
				if !IsNil(parseErr) {
					return LoopBreak, parseErr
				}
				if lineScore.HasValue() {
					score = lineScore
				}
			}
			if strings.HasPrefix(line, "bestmove") {
				return LoopBreak, NilError
			}
			return LoopContinue, NilError
		},
		Some(limit+2*time.Second))
	if !IsNil(err) {
		return 0, err
	}

	if score.IsEmpty() {
		return 0, Errorf("no score for %v from %v", positionInput(pos), o.path)
	}

	return score.Value(), NilError
}

func (o *StockfishOracle) Close() Error {
	if o.binary != nil {
		_ = o.binary.RunAsync("quit")
		o.binary.Close()
		o.binary = nil
	}
	return NilError
}
