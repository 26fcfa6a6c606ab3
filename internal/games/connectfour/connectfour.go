// Package connectfour is the second illustrative search.Descriptor
// implementation named in the generic search's design: a 6x7 Connect
// Four board, grounded on the same flat-board/FNV-1a-hash shape as the
// reference implementation's forza4.c.
package connectfour

import "github.com/hailam/chessplay/internal/search"

const (
	Rows = 6
	Cols = 7
	size = Rows * Cols
)

// Mark is a cell's occupant.
type Mark int8

const (
	Empty Mark = 0
	Red   Mark = 1  // maximizer
	Yellow Mark = -1 // minimizer
)

// State is the board in row-major order (row 0 is the top) plus the
// side to move.
type State struct {
	Board      [size]Mark
	NextPlayer Mark
}

// Move is the column (0..Cols-1) a disc is dropped into.
type Move int

func at(s *State, r, c int) Mark { return s.Board[r*Cols+c] }

// NewGame returns an empty board with Red to move first.
func NewGame() State {
	return State{NextPlayer: Red}
}

// lowestEmptyRow returns the row a disc dropped in col would land on, or
// -1 if the column is full.
func lowestEmptyRow(s State, col int) int {
	for r := Rows - 1; r >= 0; r-- {
		if at(&s, r, col) == Empty {
			return r
		}
	}
	return -1
}

var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// winner reports whether either mark has four in a row through any of
// the four canonical directions, scanning from every occupied cell.
func winner(s State) Mark {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			mark := at(&s, r, c)
			if mark == Empty {
				continue
			}
			for _, d := range directions {
				count := 1
				for k := 1; k < 4; k++ {
					rr, cc := r+d[0]*k, c+d[1]*k
					if rr < 0 || rr >= Rows || cc < 0 || cc >= Cols || at(&s, rr, cc) != mark {
						break
					}
					count++
				}
				if count >= 4 {
					return mark
				}
			}
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

// Descriptor implements search.Descriptor[State, Move] for Connect Four.
type Descriptor struct{}

var _ search.Descriptor[State, Move] = Descriptor{}

func (Descriptor) Clone(s State) State {
	return s
}

func (Descriptor) Moves(s State) []Move {
	if winner(s) != Empty {
		return nil
	}
	moves := make([]Move, 0, Cols)
	for c := 0; c < Cols; c++ {
		if lowestEmptyRow(s, c) >= 0 {
			moves = append(moves, Move(c))
		}
	}
	return moves
}

func (Descriptor) Apply(s State, m Move) (State, bool) {
	col := int(m)
	if col < 0 || col >= Cols {
		return State{}, false
	}
	row := lowestEmptyRow(s, col)
	if row < 0 {
		return State{}, false
	}
	next := s
	next.Board[row*Cols+col] = s.NextPlayer
	next.NextPlayer = -s.NextPlayer
	return next, true
}

func (Descriptor) IsTerminal(s State) bool {
	return winner(s) != Empty || full(s)
}

// evaluateWindow scores a four-cell window the way the reference
// implementation does: a window one side owns outright (with the
// other side absent) is worth more the closer it is to four in a row;
// a contested window scores zero.
func evaluateWindow(a, b, c, d Mark) int {
	var red, yellow int
	for _, m := range [4]Mark{a, b, c, d} {
		switch m {
		case Red:
			red++
		case Yellow:
			yellow++
		}
	}

	score := 0
	switch {
	case red == 4:
		score += 100
	case red == 3 && yellow == 0:
		score += 5
	case red == 2 && yellow == 0:
		score += 2
	}
	switch {
	case yellow == 4:
		score -= 100
	case yellow == 3 && red == 0:
		score -= 5
	case yellow == 2 && red == 0:
		score -= 2
	}
	return score
}

// Evaluate scores s from Red's perspective: an outright win or loss
// dominates, otherwise every four-cell window (horizontal, vertical,
// both diagonals) contributes via evaluateWindow, plus a small bonus
// for central-column occupancy, mirroring the reference heuristic.
func (Descriptor) Evaluate(s State) int {
	switch winner(s) {
	case Red:
		return 100
	case Yellow:
		return -100
	}

	score := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-4; c++ {
			score += evaluateWindow(at(&s, r, c), at(&s, r, c+1), at(&s, r, c+2), at(&s, r, c+3))
		}
	}
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-4; r++ {
			score += evaluateWindow(at(&s, r, c), at(&s, r+1, c), at(&s, r+2, c), at(&s, r+3, c))
		}
	}
	for r := 0; r <= Rows-4; r++ {
		for c := 0; c <= Cols-4; c++ {
			score += evaluateWindow(at(&s, r, c), at(&s, r+1, c+1), at(&s, r+2, c+2), at(&s, r+3, c+3))
		}
	}
	for r := 3; r < Rows; r++ {
		for c := 0; c <= Cols-4; c++ {
			score += evaluateWindow(at(&s, r, c), at(&s, r-1, c+1), at(&s, r-2, c+2), at(&s, r-3, c+3))
		}
	}

	center := Cols / 2
	for r := 0; r < Rows; r++ {
		switch at(&s, r, center) {
		case Red:
			score += 3
		case Yellow:
			score -= 3
		}
	}

	return score
}

func (Descriptor) PlayerToMove(s State) search.Player {
	if s.NextPlayer == Red {
		return search.Maximizer
	}
	return search.Minimizer
}

// HashState follows the reference implementation's FNV-1a scheme: fold
// every cell in, offset so Empty still perturbs the hash, then fold in
// the side to move.
func (Descriptor) HashState(s State) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211

	h := uint64(offset64)
	for _, m := range s.Board {
		h ^= uint64(int64(m) + 2)
		h *= prime64
	}
	h ^= uint64(int64(s.NextPlayer) & 0x0F)
	h *= prime64
	return h
}

func (Descriptor) EqualsState(a, b State) bool {
	return a == b
}
