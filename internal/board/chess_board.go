package board

import (
	"github.com/notnil/chess"

	. "github.com/eloworld/strategies/internal/helpers"
)

// ChessBoard adapts github.com/notnil/chess to the Board contract.
// notnil positions are immutable, so Push/Pop is a stack of positions and
// restoration after a probe is structural rather than mutate-and-undo.
type ChessBoard struct {
	startFen string
	frames   []frame
}

type frame struct {
	pos   *chess.Position
	uci   string
	check bool
}

var _ Board = (*ChessBoard)(nil)

func NewChessBoard() *ChessBoard {
	pos := chess.StartingPosition()
	return &ChessBoard{
		startFen: pos.String(),
		frames:   []frame{{pos: pos}},
	}
}

func ChessBoardFromFen(fen string) (*ChessBoard, Error) {
	update, err := chess.FEN(fen)
	if !IsNil(err) {
		return nil, Errorf("invalid fen '%v': %w", fen, err)
	}
	game := chess.NewGame(update)
	pos := game.Position()
	return &ChessBoard{
		startFen: pos.String(),
		frames:   []frame{{pos: pos}},
	}, NilError
}

func (b *ChessBoard) top() *chess.Position {
	return b.frames[len(b.frames)-1].pos
}

func (b *ChessBoard) LegalMoves() []Move {
	pos := b.top()
	return MapSlice(pos.ValidMoves(), func(m *chess.Move) Move {
		return Move{
			Uci: chess.UCINotation{}.Encode(pos, m),
			San: chess.AlgebraicNotation{}.Encode(pos, m),
		}
	})
}

func (b *ChessBoard) findValidMove(m Move) Optional[*chess.Move] {
	pos := b.top()
	return FindInSlice(pos.ValidMoves(), func(valid *chess.Move) bool {
		return chess.UCINotation{}.Encode(pos, valid) == m.Uci
	})
}

func (b *ChessBoard) Push(m Move) Error {
	valid := b.findValidMove(m)
	if valid.IsEmpty() {
		return Errorf("move %v is not legal in %v", m.Uci, b.FenString())
	}
	b.frames = append(b.frames, frame{
		pos:   b.top().Update(valid.Value()),
		uci:   m.Uci,
		check: valid.Value().HasTag(chess.Check),
	})
	return NilError
}

func (b *ChessBoard) Pop() Error {
	if len(b.frames) == 1 {
		return Errorf("pop without matching push")
	}
	b.frames = b.frames[:len(b.frames)-1]
	return NilError
}

func (b *ChessBoard) Turn() Player {
	if b.top().Turn() == chess.White {
		return White
	}
	return Black
}

func (b *ChessBoard) IsCapture(m Move) bool {
	valid := b.findValidMove(m)
	if valid.IsEmpty() {
		return false
	}
	return valid.Value().HasTag(chess.Capture) || valid.Value().HasTag(chess.EnPassant)
}

func (b *ChessBoard) IsCheck() bool {
	return b.frames[len(b.frames)-1].check
}

func (b *ChessBoard) Position() Position {
	moves := make([]string, 0, len(b.frames)-1)
	for _, f := range b.frames[1:] {
		moves = append(moves, f.uci)
	}
	return Position{Fen: b.startFen, Moves: moves}
}

func (b *ChessBoard) FenString() string {
	return b.top().String()
}

func (b *ChessBoard) Status() GameStatus {
	switch b.top().Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}
