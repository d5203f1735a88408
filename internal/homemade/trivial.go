package homemade

// Strategy names and ideas from tom7's excellent eloWorld video.

import (
	"sort"

	"github.com/eloworld/strategies/internal/board"
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/strategy"
)

// RandomMove plays a uniformly random legal move.
type RandomMove struct {
	strategy.MinimalStrategy
	rand Rand
}

var _ strategy.Strategy = (*RandomMove)(nil)

func NewRandomMove(options ...Option) *RandomMove {
	c := buildConfig(options)
	return &RandomMove{
		MinimalStrategy: strategy.NewMinimalStrategy("RandomMove"),
		rand:            c.rand,
	}
}

func (s *RandomMove) ChooseMove(b board.Board, tc strategy.TimeControl, ponder bool) (board.Move, Error) {
	return Choose(s.rand, b.LegalMoves()), NilError
}

// Alphabetical plays the first legal move when sorted by its
// human-readable (SAN) text.
type Alphabetical struct {
	strategy.MinimalStrategy
}

var _ strategy.Strategy = (*Alphabetical)(nil)

func NewAlphabetical(options ...Option) *Alphabetical {
	return &Alphabetical{
		MinimalStrategy: strategy.NewMinimalStrategy("Alphabetical"),
	}
}

func (s *Alphabetical) ChooseMove(b board.Board, tc strategy.TimeControl, ponder bool) (board.Move, Error) {
	moves := b.LegalMoves()
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].San < moves[j].San
	})
	return moves[0], NilError
}

// FirstMove plays the first legal move when sorted by its coordinate
// (UCI) text. The ordering differs from Alphabetical's because the two
// texts render the same move differently.
type FirstMove struct {
	strategy.MinimalStrategy
}

var _ strategy.Strategy = (*FirstMove)(nil)

func NewFirstMove(options ...Option) *FirstMove {
	return &FirstMove{
		MinimalStrategy: strategy.NewMinimalStrategy("FirstMove"),
	}
}

func (s *FirstMove) ChooseMove(b board.Board, tc strategy.TimeControl, ponder bool) (board.Move, Error) {
	moves := b.LegalMoves()
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].Uci < moves[j].Uci
	})
	return moves[0], NilError
}
