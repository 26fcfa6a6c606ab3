package engine

import (
	"github.com/hailam/chessplay/internal/chess"
	"github.com/hailam/chessplay/internal/search"
)

// Search scores pos to the given depth using alpha-beta minimax, with
// an optional transposition table (nil disables caching).
func Search(pos *chess.Position, depth, alpha, beta int, table *search.Table[*chess.Position]) int {
	return search.Search[*chess.Position, chess.Move](ChessDescriptor{}, pos, depth, alpha, beta, table)
}

// BestMove searches every legal move from pos to the given depth and
// returns the side to move's preferred reply, or false if pos is
// terminal.
func BestMove(pos *chess.Position, depth int, table *search.Table[*chess.Position]) (chess.Move, bool) {
	return search.BestMove[*chess.Position, chess.Move](ChessDescriptor{}, pos, depth, table)
}
