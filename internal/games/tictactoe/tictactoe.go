// Package tictactoe is an illustrative search.Descriptor implementation:
// a second, much smaller game than chess that plugs into the same
// generic minimax search, proving the descriptor boundary actually
// decouples the two.
package tictactoe

import "github.com/hailam/chessplay/internal/search"

// Mark is a cell's occupant: Empty, X (the maximizer), or O (the
// minimizer).
type Mark int8

const (
	Empty Mark = 0
	X     Mark = 1
	O     Mark = -1
)

// State is a 3x3 board in row-major order plus the side to move, mirroring
// the flat int[9] board the tic-tac-toe reference implementation uses.
type State struct {
	Board      [9]Mark
	NextPlayer Mark // X or O
}

// Move is the cell index (0-8) a mark is placed on.
type Move int

// NewGame returns the empty board with X to move first.
func NewGame() State {
	return State{NextPlayer: X}
}

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// winner returns X or O if that mark has three in a row, else Empty.
func winner(s State) Mark {
	for _, line := range winLines {
		a, b, c := s.Board[line[0]], s.Board[line[1]], s.Board[line[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}
	return Empty
}

func full(s State) bool {
	for _, m := range s.Board {
		if m == Empty {
			return false
		}
	}
	return true
}

// Descriptor implements search.Descriptor[State, Move] for tic-tac-toe.
type Descriptor struct{}

var _ search.Descriptor[State, Move] = Descriptor{}

func (Descriptor) Clone(s State) State {
	return s
}

func (Descriptor) Moves(s State) []Move {
	if winner(s) != Empty {
		return nil
	}
	moves := make([]Move, 0, 9)
	for i, m := range s.Board {
		if m == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

func (Descriptor) Apply(s State, m Move) (State, bool) {
	if m < 0 || int(m) >= len(s.Board) || s.Board[m] != Empty {
		return State{}, false
	}
	next := s
	next.Board[m] = s.NextPlayer
	next.NextPlayer = -s.NextPlayer
	return next, true
}

func (Descriptor) IsTerminal(s State) bool {
	return winner(s) != Empty || full(s)
}

func (Descriptor) Evaluate(s State) int {
	switch winner(s) {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

func (Descriptor) PlayerToMove(s State) search.Player {
	if s.NextPlayer == X {
		return search.Maximizer
	}
	return search.Minimizer
}

// HashState mirrors the reference implementation's own scheme for this
// game (tictactoe.c, not forza4.c's FNV-1a): shift the running hash left
// three bits and XOR in each cell, offset away from zero so an empty
// cell still perturbs it, then fold in the side to move the same way.
func (Descriptor) HashState(s State) uint64 {
	var h uint64
	for _, m := range s.Board {
		h = (h << 3) ^ uint64(int64(m)+2)
	}
	h = (h << 3) ^ uint64(int64(s.NextPlayer)+2)
	return h
}

func (Descriptor) EqualsState(a, b State) bool {
	return a == b
}
