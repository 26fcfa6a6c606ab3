package chess

import (
	"sync"
	"time"
)

// Zobrist key tables, generated once per process from a time-derived
// seed: the wall-clock time in nanoseconds XORed with a fixed constant.
// The time makes the keys differ from run to run without depending on
// any external entropy source.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [64]uint64       // one per target square
	zobristCastling   [16]uint64       // all 16 castling-mask combinations
	zobristSideToMove uint64

	zobristInit sync.Once
)

const zobristSeedConstant = 0x98F107A2BEEF1234

// xorshiftPRNG is the xorshift64* generator the key tables are drawn
// from.
type xorshiftPRNG struct {
	state uint64
}

func newXorshiftPRNG(seed uint64) *xorshiftPRNG {
	if seed == 0 {
		seed = 1
	}
	return &xorshiftPRNG{state: seed}
}

func (r *xorshiftPRNG) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 0x2545F4914F6CDD1D
}

// initZobrist seeds and fills every key table. Safe to call any number
// of times; only the first call has any effect.
func initZobrist() {
	zobristInit.Do(func() {
		seed := zobristSeedConstant ^ uint64(time.Now().UnixNano())
		rng := newXorshiftPRNG(seed)

		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				for sq := 0; sq < 64; sq++ {
					zobristPiece[c][pt][sq] = rng.next()
				}
			}
		}
		for sq := 0; sq < 64; sq++ {
			zobristEnPassant[sq] = rng.next()
		}
		for i := 0; i < 16; i++ {
			zobristCastling[i] = rng.next()
		}
		zobristSideToMove = rng.next()
	})
}

// HashPosition computes the Zobrist hash of p from scratch: one key per
// set bit across the twelve piece bitboards, the castling-mask key, the
// en-passant key (only when a target square is set), and the
// side-to-move key when it is Black's turn.
func HashPosition(p *Position) uint64 {
	initZobrist()

	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= zobristPiece[c][pt][sq]
			}
		}
	}

	h ^= zobristCastling[p.CastlingRights]

	if p.EnPassant < NoSquare {
		h ^= zobristEnPassant[p.EnPassant]
	}

	if p.SideToMove == Black {
		h ^= zobristSideToMove
	}

	return h
}

// Equals reports whether p and q are the same chess position: all
// twelve bitboards and every scalar field match. It does not consult
// Hash — two positions with an equal hash are compared structurally
// here precisely because hash collisions, though rare, are possible.
func Equals(p, q *Position) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt] != q.Pieces[c][pt] {
				return false
			}
		}
	}
	return p.SideToMove == q.SideToMove &&
		p.CastlingRights == q.CastlingRights &&
		p.EnPassant == q.EnPassant &&
		p.HalfMoveClock == q.HalfMoveClock &&
		p.FullMoveNumber == q.FullMoveNumber
}
