package strategy

import (
	"time"

	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
)

// Strategy decides which single legal move to play. Instances are
// long-lived across a game and own whatever oracle process they use;
// Shutdown releases it and is safe to call repeatedly, or without the
// oracle ever having started.
//
// ChooseMove may push candidate moves onto the board while deciding but
// must pop every one of them before returning. It must not be called on a
// position with no legal moves.
type Strategy interface {
	Name() string
	ChooseMove(b board.Board, tc TimeControl, ponder bool) (board.Move, Error)
	Initialize() Error
	Shutdown() Error

	// Notify receives lifecycle hooks the wrapping layer fires at a real
	// engine (see ShimEngine). Most strategies ignore them.
	Notify(method string, args ...any)
}

// ChooseMoveWithPonder picks the clock belonging to the side to move and
// delegates to the strategy's ChooseMove.
func ChooseMoveWithPonder(s Strategy, b board.Board, wtime time.Duration, btime time.Duration, winc time.Duration, binc time.Duration, ponder bool) (board.Move, Error) {
	var tc TimeControl
	if b.Turn() == board.White {
		tc = ClockTimeControl(wtime, winc)
	} else {
		tc = ClockTimeControl(btime, binc)
	}
	return s.ChooseMove(b, tc, ponder)
}

// MinimalStrategy is the base a concrete strategy embeds. It satisfies
// everything except a useful ChooseMove; a strategy that forgets to
// provide one fails with a NotImplemented error rather than playing a
// move.
type MinimalStrategy struct {
	name string
}

func NewMinimalStrategy(name string) MinimalStrategy {
	return MinimalStrategy{name: name}
}

func (s *MinimalStrategy) Name() string {
	return s.name
}

func (s *MinimalStrategy) ChooseMove(b board.Board, tc TimeControl, ponder bool) (board.Move, Error) {
	return board.Move{}, NotImplementedError(s.name + ".ChooseMove")
}

func (s *MinimalStrategy) Initialize() Error {
	return NilError
}

func (s *MinimalStrategy) Shutdown() Error {
	return NilError
}

func (s *MinimalStrategy) Notify(method string, args ...any) {
}
