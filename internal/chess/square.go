package chess

import "fmt"

// Square identifies one of the 64 board squares, numbered file-major
// within each rank (a1=0, b1=1, ..., h1=7, a2=8, ..., h8=63) so that
// NewSquare's rank*8+file arithmetic and the bitboard shift-by-square
// operations in internal/bitutil agree on the same index space.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// NoSquare sits one past H8 so every real square compares less than
	// it; callers use that ordering instead of a separate validity flag.
	NoSquare Square = 64
)

const fileLetters = "abcdefgh"
const rankDigits = "12345678"

// NewSquare builds the square at the given zero-indexed file (0=a..7=h)
// and rank (0=rank 1..7=rank 8).
func NewSquare(file, rank int) Square {
	return Square(rank<<3 + file)
}

// File reports sq's column, 0 (a-file) through 7 (h-file).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank reports sq's row, 0 (rank 1) through 7 (rank 8).
func (sq Square) Rank() int {
	return int(sq) / 8
}

// String renders sq in algebraic notation ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string(fileLetters[sq.File()]) + string(rankDigits[sq.Rank()])
}

// ParseSquare is String's inverse: it reads a two-character algebraic
// square name and reports an error for anything else.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("chess: malformed square %q", s)
	}

	file := int(s[0]) - int('a')
	rank := int(s[1]) - int('1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("chess: malformed square %q", s)
	}

	return NewSquare(file, rank), nil
}
