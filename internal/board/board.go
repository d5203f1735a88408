package board

import (
	. "github.com/eloworld/strategies/internal/helpers"
)

type Player int

const (
	White Player = iota
	Black
)

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

func (p Player) Other() Player {
	if p == White {
		return Black
	}
	return White
}

// Move is a legal transition out of the current position. Uci is the
// coordinate text ("e2e4"), San the human-readable text ("Nf3"). Both are
// fixed for the position the move was generated from.
type Move struct {
	Uci string
	San string
}

func (m Move) String() string {
	return m.Uci
}

// Position identifies a board state for the evaluation oracle: a starting
// FEN plus the coordinate moves applied since.
type Position struct {
	Fen   string
	Moves []string
}

type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	Draw
)

// Board is the rules-engine collaborator the strategies run against.
//
// Push and Pop must be paired last-in-first-out; a strategy probing
// candidate moves pops every push before returning so the caller sees the
// board unchanged. IsCheck reports whether the most recently pushed move
// gave check.
type Board interface {
	LegalMoves() []Move
	Push(m Move) Error
	Pop() Error
	Turn() Player
	IsCapture(m Move) bool
	IsCheck() bool
	Position() Position
	FenString() string
	Status() GameStatus
}
