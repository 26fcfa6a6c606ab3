package chess

import "github.com/hailam/chessplay/internal/bitutil"

// Precomputed attack tables for the non-sliding pieces. Sliding attacks
// (bishop/rook/queen) are never tabulated; they are answered on demand
// by walking bitutil.Ray, per the design note that a single ray
// primitive substitutes for separate "can reach" and "is attacking"
// tables.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

func init() {
	for sq := 0; sq < 64; sq++ {
		bb := bitutil.SquareBB(sq)

		var n Bitboard
		n |= (bb << 17) & bitutil.NotFileA
		n |= (bb << 15) & bitutil.NotFileH
		n |= (bb >> 17) & bitutil.NotFileH
		n |= (bb >> 15) & bitutil.NotFileA
		n |= (bb << 10) & bitutil.NotFileAB
		n |= (bb << 6) & bitutil.NotFileGH
		n |= (bb >> 10) & bitutil.NotFileGH
		n |= (bb >> 6) & bitutil.NotFileAB
		knightAttacks[sq] = n

		k := bb.North() | bb.South() | bb.East() | bb.West()
		k |= bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()
		kingAttacks[sq] = k

		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// diagonalRays and orthogonalRays name the bit-index deltas Ray expects
// for the four bishop and four rook directions respectively.
var diagonalRays = [4]int{9, -9, 7, -7}
var orthogonalRays = [4]int{8, -8, 1, -1}

// bishopAttacks returns the bishop attack set from sq against occupied,
// computed by firing the four diagonal rays.
func bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	origin := bitutil.SquareBB(int(sq))
	var attacks Bitboard
	for _, d := range diagonalRays {
		attacks |= bitutil.Ray(origin, d, occupied)
	}
	return attacks
}

// rookAttacks returns the rook attack set from sq against occupied,
// computed by firing the four orthogonal rays.
func rookAttacks(sq Square, occupied Bitboard) Bitboard {
	origin := bitutil.SquareBB(int(sq))
	var attacks Bitboard
	for _, d := range orthogonalRays {
		attacks |= bitutil.Ray(origin, d, occupied)
	}
	return attacks
}

// queenAttacks is the union of bishopAttacks and rookAttacks.
func queenAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopAttacks(sq, occupied) | rookAttacks(sq, occupied)
}

// isPawnAttacked reports whether a pawn of color c attacks sq.
func isPawnAttacked(p *Position, sq Square, c Color) bool {
	return pawnAttacks[c.Other()][sq]&p.Pieces[c][Pawn] != 0
}

// isKnightAttacked reports whether a knight of color c attacks sq.
func isKnightAttacked(p *Position, sq Square, c Color) bool {
	return knightAttacks[sq]&p.Pieces[c][Knight] != 0
}

// isDiagonalAttacked reports whether a bishop or queen of color c
// attacks sq along a diagonal.
func isDiagonalAttacked(p *Position, sq Square, c Color) bool {
	return bishopAttacks(sq, p.AllOccupied)&(p.Pieces[c][Bishop]|p.Pieces[c][Queen]) != 0
}

// isOrthogonalAttacked reports whether a rook or queen of color c
// attacks sq along a rank or file.
func isOrthogonalAttacked(p *Position, sq Square, c Color) bool {
	return rookAttacks(sq, p.AllOccupied)&(p.Pieces[c][Rook]|p.Pieces[c][Queen]) != 0
}

// isKingAttacked reports whether c's king is within Chebyshev distance 1
// of sq.
func isKingAttacked(p *Position, sq Square, c Color) bool {
	return kingAttacks[sq]&p.Pieces[c][King] != 0
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// attacker in position p.
func IsSquareAttacked(p *Position, sq Square, attacker Color) bool {
	return isPawnAttacked(p, sq, attacker) ||
		isKnightAttacked(p, sq, attacker) ||
		isDiagonalAttacked(p, sq, attacker) ||
		isOrthogonalAttacked(p, sq, attacker) ||
		isKingAttacked(p, sq, attacker)
}

// IsKingInCheck reports whether color's king is currently attacked.
func IsKingInCheck(p *Position, color Color) bool {
	ksq := p.KingSquare(color)
	if ksq == NoSquare {
		return false
	}
	return IsSquareAttacked(p, ksq, color.Other())
}
