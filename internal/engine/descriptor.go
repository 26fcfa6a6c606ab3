// Package engine binds the chess position model in internal/chess to
// the generic search in internal/search by implementing
// search.Descriptor[*chess.Position, chess.Move]. Neither side knows
// about the other: internal/chess has no notion of minimax, and
// internal/search has no notion of a chessboard.
package engine

import (
	"github.com/hailam/chessplay/internal/chess"
	"github.com/hailam/chessplay/internal/search"
)

// ChessDescriptor implements search.Descriptor over chess positions.
// It holds no state of its own; every method is a thin adapter onto the
// corresponding internal/chess function.
type ChessDescriptor struct{}

var _ search.Descriptor[*chess.Position, chess.Move] = ChessDescriptor{}

func (ChessDescriptor) Clone(s *chess.Position) *chess.Position {
	return s.Clone()
}

func (ChessDescriptor) Moves(s *chess.Position) []chess.Move {
	ml := s.GeneratePseudoLegalMoves()
	moves := make([]chess.Move, ml.Len())
	for i := range moves {
		moves[i] = ml.Get(i)
	}
	return moves
}

func (ChessDescriptor) Apply(s *chess.Position, m chess.Move) (*chess.Position, bool) {
	return s.Apply(m)
}

func (ChessDescriptor) IsTerminal(s *chess.Position) bool {
	return chess.IsTerminal(s)
}

func (ChessDescriptor) Evaluate(s *chess.Position) int {
	return chess.Evaluate(s)
}

// PlayerToMove maps chess.White to search.Maximizer and chess.Black to
// search.Minimizer: Evaluate scores positions from White's perspective,
// so White is always the side trying to raise the score.
func (ChessDescriptor) PlayerToMove(s *chess.Position) search.Player {
	if chess.PlayerToMove(s) == chess.White {
		return search.Maximizer
	}
	return search.Minimizer
}

func (ChessDescriptor) HashState(s *chess.Position) uint64 {
	return s.Hash
}

func (ChessDescriptor) EqualsState(a, b *chess.Position) bool {
	return chess.Equals(a, b)
}

// NewTable constructs a transposition table keyed on chess positions via
// the descriptor's own hash and equality, ready to pass to search.Search
// or search.BestMove.
func NewTable() *search.Table[*chess.Position] {
	d := ChessDescriptor{}
	return search.NewTable[*chess.Position](d.HashState, d.EqualsState)
}
