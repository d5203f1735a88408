package homemade

import (
	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/oracle"
	"github.com/eloworld/strategies/internal/strategy"
)

// ILoveDraws steers toward the most balanced position it can find. Any
// candidate whose absolute evaluation is inside the drawishness threshold
// is good enough and gets played immediately; candidate order is shuffled
// first so the early exit doesn't always favor the same squares.
type ILoveDraws struct {
	strategy.MinimalStrategy

	oracle    oracle.Oracle
	rand      Rand
	logger    Logger
	threshold oracle.Eval
}

var _ strategy.Strategy = (*ILoveDraws)(nil)

func NewILoveDraws(options ...Option) *ILoveDraws {
	c := buildConfig(options)
	return &ILoveDraws{
		MinimalStrategy: strategy.NewMinimalStrategy("ILoveDraws"),
		oracle:          c.buildOracle(),
		rand:            c.rand,
		logger:          c.logger,
		threshold:       c.drawThreshold,
	}
}

func (s *ILoveDraws) ChooseMove(b board.Board, tc strategy.TimeControl, ponder bool) (board.Move, Error) {
	moves := b.LegalMoves()
	s.rand.Shuffle(len(moves), func(i int, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	searchTime := strategy.PerCandidateTime(tc, len(moves))

	bestAbs := Empty[oracle.Eval]()
	drawish := []board.Move{}

	for _, move := range moves {
		err := b.Push(move)
		if !IsNil(err) {
			return board.Move{}, err
		}

		eval, evalErr := s.oracle.Evaluate(b.Position(), strategy.OracleDeadline(searchTime))

		err = Join(evalErr, b.Pop())
		if !IsNil(err) {
			return board.Move{}, err
		}

		abs := eval.Abs()

		if abs <= s.threshold {
			s.logger.Printf("%v: %v is balanced enough at %v\n", s.Name(), move.Uci, eval)
			return move, NilError
		}

		if bestAbs.IsEmpty() || abs < bestAbs.Value() {
			bestAbs = Some(abs)
			drawish = []board.Move{move}
		} else if abs == bestAbs.Value() {
			drawish = append(drawish, move)
		}
	}

	chosen := Choose(s.rand, drawish)
	s.logger.Printf("%v: settling for %v at |%v| over %v ties\n", s.Name(), chosen.Uci, bestAbs.Value(), len(drawish))
	return chosen, NilError
}

func (s *ILoveDraws) Shutdown() Error {
	return s.oracle.Close()
}
