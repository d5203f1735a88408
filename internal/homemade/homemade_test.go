package homemade

import (
	"testing"
	"time"

	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/oracle"
	"github.com/davecgh/go-spew/spew"
	"github.com/eloworld/strategies/internal/strategy"
	"github.com/stretchr/testify/assert"
)

func dump(v any) string {
	return spew.Sdump(v)
}

// stubOracle scripts the evaluation of each probed position by the last
// move leading to it, and refuses non-positive deadlines.
type stubOracle struct {
	calls  int
	closes int
	evals  map[string]oracle.Eval
	fixed  oracle.Eval
}

var _ oracle.Oracle = (*stubOracle)(nil)

func (o *stubOracle) Evaluate(pos board.Position, limit time.Duration) (oracle.Eval, Error) {
	o.calls++
	if limit <= 0 {
		return 0, Errorf("non-positive limit %v", limit)
	}
	if len(pos.Moves) == 0 {
		return 0, Errorf("expected a probed position, got the root")
	}
	if eval, ok := o.evals[pos.Moves[len(pos.Moves)-1]]; ok {
		return eval, NilError
	}
	return o.fixed, NilError
}

func (o *stubOracle) Close() Error {
	o.closes++
	return NilError
}

// fixedRand makes tie-breaks deterministic: first element, no shuffling.
type fixedRand struct{}

func (r *fixedRand) Intn(n int) int {
	return 0
}

func (r *fixedRand) Shuffle(n int, swap func(i int, j int)) {
}

func legalUcis(b board.Board) []string {
	return MapSlice(b.LegalMoves(), func(m board.Move) string {
		return m.Uci
	})
}

func allStrategies(t *testing.T, stub *stubOracle) []strategy.Strategy {
	t.Helper()
	built := []strategy.Strategy{}
	for _, name := range Names() {
		s, err := New(name, WithOracle(stub))
		assert.True(t, IsNil(err), err)
		built = append(built, s)
	}
	return built
}

func TestEveryStrategyReturnsLegalMove(t *testing.T) {
	for _, s := range allStrategies(t, &stubOracle{fixed: 33}) {
		b := board.NewChessBoard()
		fenBefore := b.FenString()

		move, err := s.ChooseMove(b, strategy.ClockTimeControl(time.Minute, time.Second), false)
		assert.True(t, IsNil(err), s.Name(), err)
		assert.Contains(t, legalUcis(b), move.Uci, s.Name(), dump(move))
		assert.Equal(t, fenBefore, b.FenString(), s.Name())
	}
}

func TestEveryStrategyPlaysTheOnlyMove(t *testing.T) {
	// white's only legal move is Kb1
	for _, s := range allStrategies(t, &stubOracle{fixed: -200}) {
		b, err := board.ChessBoardFromFen("k7/8/8/8/8/8/6q1/K7 w - - 0 1")
		assert.True(t, IsNil(err))
		assert.Equal(t, 1, len(b.LegalMoves()))

		move, err := s.ChooseMove(b, strategy.FixedTimeControl(time.Second), false)
		assert.True(t, IsNil(err), s.Name(), err)
		assert.Equal(t, "a1b1", move.Uci, s.Name())
	}
}

// twoMoveBoard is in check with exactly two king moves, a8b7 and a8b8.
func twoMoveBoard(t *testing.T) *board.ChessBoard {
	t.Helper()
	b, err := board.ChessBoardFromFen("k7/8/8/8/8/8/R7/K6R b - - 0 1")
	assert.True(t, IsNil(err))
	assert.ElementsMatch(t, []string{"a8b7", "a8b8"}, legalUcis(b))
	return b
}

func TestWorstFishPlaysOpponentsFavorite(t *testing.T) {
	stub := &stubOracle{evals: map[string]oracle.Eval{
		"a8b7": 500,
		"a8b8": -500,
	}}
	s := NewWorstFish(WithOracle(stub))

	move, err := s.ChooseMove(twoMoveBoard(t), strategy.FixedTimeControl(time.Second), false)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "a8b7", move.Uci)
	assert.Equal(t, 2, stub.calls)
}

func TestWorstFishRestoresBoard(t *testing.T) {
	stub := &stubOracle{fixed: 10}
	s := NewWorstFish(WithOracle(stub))

	b := board.NewChessBoard()
	fenBefore := b.FenString()
	movesBefore := legalUcis(b)

	_, err := s.ChooseMove(b, strategy.ClockTimeControl(time.Minute, 0), false)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, fenBefore, b.FenString())
	assert.Equal(t, movesBefore, legalUcis(b))
	assert.Equal(t, 20, stub.calls)
}

func TestWorstFishAvoidsCapturesAndChecksOnTies(t *testing.T) {
	// white has quiet rook and king moves, the capture Rxd5, and the
	// check Rh3; every candidate evaluates equal
	for trial := 0; trial < 20; trial++ {
		stub := &stubOracle{fixed: 77}
		s := NewWorstFish(WithOracle(stub))

		b, err := board.ChessBoardFromFen("7k/8/8/3p4/8/3R4/8/K7 w - - 0 1")
		assert.True(t, IsNil(err))

		move, err := s.ChooseMove(b, strategy.FixedTimeControl(time.Second), false)
		assert.True(t, IsNil(err), err)
		assert.NotEqual(t, "d3d5", move.Uci)
		assert.NotEqual(t, "d3h3", move.Uci)
	}
}

func TestPickWorstCategoryOrder(t *testing.T) {
	r := &fixedRand{}

	quiet := candidate{move: board.Move{Uci: "a1a2"}}
	check := candidate{move: board.Move{Uci: "b1b2"}, isCheck: true}
	capture := candidate{move: board.Move{Uci: "c1c2"}, isCapture: true}

	assert.Equal(t, "a1a2", pickWorst(r, []candidate{capture, check, quiet}).Uci)
	assert.Equal(t, "b1b2", pickWorst(r, []candidate{capture, check}).Uci)
	assert.Equal(t, "c1c2", pickWorst(r, []candidate{capture}).Uci)

	// a checking capture counts as a capture
	both := candidate{move: board.Move{Uci: "d1d2"}, isCapture: true, isCheck: true}
	assert.Equal(t, "b1b2", pickWorst(r, []candidate{both, check}).Uci)
}

func TestILoveDrawsEarlyExit(t *testing.T) {
	stub := &stubOracle{fixed: 5}
	s := NewILoveDraws(WithOracle(stub), WithRand(&fixedRand{}))

	b := board.NewChessBoard()
	fenBefore := b.FenString()

	move, err := s.ChooseMove(b, strategy.ClockTimeControl(time.Minute, 0), false)
	assert.True(t, IsNil(err), err)
	assert.Contains(t, legalUcis(b), move.Uci)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, fenBefore, b.FenString())
}

func TestILoveDrawsNoEarlyExitAboveThreshold(t *testing.T) {
	stub := &stubOracle{fixed: 11}
	s := NewILoveDraws(WithOracle(stub), WithRand(&fixedRand{}))

	b := board.NewChessBoard()
	_, err := s.ChooseMove(b, strategy.ClockTimeControl(time.Minute, 0), false)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, 20, stub.calls)
}

func TestILoveDrawsPrefersBalanced(t *testing.T) {
	stub := &stubOracle{evals: map[string]oracle.Eval{
		"a8b7": 300,
		"a8b8": -50,
	}}
	s := NewILoveDraws(WithOracle(stub))

	move, err := s.ChooseMove(twoMoveBoard(t), strategy.FixedTimeControl(time.Second), false)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "a8b8", move.Uci)
}

func TestILoveDrawsEqualMagnitudes(t *testing.T) {
	stub := &stubOracle{evals: map[string]oracle.Eval{
		"a8b7": 500,
		"a8b8": -500,
	}}
	s := NewILoveDraws(WithOracle(stub))

	move, err := s.ChooseMove(twoMoveBoard(t), strategy.FixedTimeControl(time.Second), false)
	assert.True(t, IsNil(err), err)
	assert.Contains(t, []string{"a8b7", "a8b8"}, move.Uci)
}

func TestShutdownIsIdempotent(t *testing.T) {
	stub := &stubOracle{}
	s := NewWorstFish(WithOracle(stub))
	assert.True(t, IsNil(s.Shutdown()))
	assert.True(t, IsNil(s.Shutdown()))
	assert.Equal(t, 2, stub.closes)

	// the default oracle never started a process; shutdown still works
	fish := NewWorstFish(WithOraclePath("/does/not/exist/stockfish"))
	assert.True(t, IsNil(fish.Shutdown()))
	assert.True(t, IsNil(fish.Shutdown()))

	draws := NewILoveDraws(WithOracle(&stubOracle{}))
	assert.True(t, IsNil(draws.Shutdown()))
	assert.True(t, IsNil(draws.Shutdown()))
}

func TestAlphabeticalAndFirstMoveDisagree(t *testing.T) {
	// the same move set sorts differently as SAN vs coordinate text:
	// "Na3" leads the SAN ordering, "a2a3" the coordinate one
	alphabetical := NewAlphabetical()
	firstMove := NewFirstMove()

	tc := strategy.FixedTimeControl(time.Second)

	move, err := alphabetical.ChooseMove(board.NewChessBoard(), tc, false)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "b1a3", move.Uci)

	move, err = firstMove.ChooseMove(board.NewChessBoard(), tc, false)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "a2a3", move.Uci)
}

func TestUnknownStrategyName(t *testing.T) {
	_, err := New("grandmaster")
	assert.False(t, IsNil(err))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"alphabetical", "firstmove", "ilovedraws", "random", "worstfish"}, Names())
}
