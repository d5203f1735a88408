package homemade

import (
	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/oracle"
	"github.com/eloworld/strategies/internal/strategy"
)

// WorstFish plays the move that is worst for the side to move, i.e. best
// for the opponent. The oracle scores the position after each candidate
// from the side then to move — the opponent — so the candidate with the
// highest score is the biggest gift.
type WorstFish struct {
	strategy.MinimalStrategy

	oracle oracle.Oracle
	rand   Rand
	logger Logger
}

var _ strategy.Strategy = (*WorstFish)(nil)

func NewWorstFish(options ...Option) *WorstFish {
	c := buildConfig(options)
	return &WorstFish{
		MinimalStrategy: strategy.NewMinimalStrategy("WorstFish"),
		oracle:          c.buildOracle(),
		rand:            c.rand,
		logger:          c.logger,
	}
}

type candidate struct {
	move      board.Move
	isCapture bool
	isCheck   bool
}

func (s *WorstFish) ChooseMove(b board.Board, tc strategy.TimeControl, ponder bool) (board.Move, Error) {
	moves := b.LegalMoves()
	searchTime := strategy.PerCandidateTime(tc, len(moves))

	worstEval := Empty[oracle.Eval]()
	worst := []candidate{}

	for _, move := range moves {
		isCapture := b.IsCapture(move)

		err := b.Push(move)
		if !IsNil(err) {
			return board.Move{}, err
		}

		isCheck := b.IsCheck()

		eval, evalErr := s.oracle.Evaluate(b.Position(), strategy.OracleDeadline(searchTime))

		err = Join(evalErr, b.Pop())
		if !IsNil(err) {
			return board.Move{}, err
		}

		if worstEval.IsEmpty() || eval > worstEval.Value() {
			worstEval = Some(eval)
			worst = []candidate{{move, isCapture, isCheck}}
		} else if eval == worstEval.Value() {
			worst = append(worst, candidate{move, isCapture, isCheck})
		}
	}

	chosen := pickWorst(s.rand, worst)
	s.logger.Printf("%v: %v scores %v over %v ties\n", s.Name(), chosen.Uci, worstEval.Value(), len(worst))
	return chosen, NilError
}

// pickWorst resolves an exact tie. A quiet move is the preferred way to
// be bad; giving check at least annoys the opponent, and only when every
// tied move grabs material do we fall back to a capture. Uniformly random
// within the chosen category.
func pickWorst(r Rand, tied []candidate) board.Move {
	captures := []candidate{}
	checks := []candidate{}
	other := []candidate{}

	for _, c := range tied {
		if c.isCapture {
			captures = append(captures, c)
		} else if c.isCheck {
			checks = append(checks, c)
		} else {
			other = append(other, c)
		}
	}

	if len(other) != 0 {
		return Choose(r, other).move
	} else if len(checks) != 0 {
		return Choose(r, checks).move
	}
	return Choose(r, captures).move
}

func (s *WorstFish) Shutdown() Error {
	return s.oracle.Close()
}
