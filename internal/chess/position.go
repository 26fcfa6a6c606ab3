// Package chess implements the bitboard chess position model: the
// twelve-bitboard state record, pseudo-legal move generation, the
// legality-filtering move applicator, and the Zobrist hashing scheme
// the transposition table keys on. It has no knowledge of the generic
// search in internal/search; internal/engine binds the two together
// through a game descriptor.
package chess

import (
	"fmt"

	"github.com/hailam/chessplay/internal/bitutil"
)

// Bitboard is the chess package's bit-level currency; bitutil.Board
// does the actual bit work.
type Bitboard = bitutil.Board

const (
	Empty    = bitutil.Empty
	Universe = bitutil.Universe
)

// CastlingRights packs the four independent castling flags into one byte.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String renders the castling rights the way FEN does, purely for
// debugging output; the core never parses this string back.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle reports whether side c still holds the named castling right.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position is a complete, self-contained chess position: twelve piece
// bitboards, castling rights, the en-passant target, both clocks, and
// the side to move. Positions are value types from the search's point
// of view — every move produces a fresh one via Clone + apply; nothing
// in this package mutates a Position another frame still holds live.
type Position struct {
	// Pieces holds one bitboard per (color, piece kind) pair.
	Pieces [2][6]Bitboard

	Occupied    [2]Bitboard
	AllOccupied Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // NoSquare if there is no en-passant target
	HalfMoveClock  int
	FullMoveNumber int

	// Hash is the Zobrist hash of the position. InitialPosition,
	// FromBitboards and the applicator recompute it with HashPosition
	// whenever they produce a position, so the transposition table reads
	// it instead of hashing the position itself.
	Hash uint64
}

// InitialPosition returns the standard chess starting position: all
// castling rights, no en-passant target, halfmove 0, fullmove 1, White
// to move.
func InitialPosition() *Position {
	p := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
		CastlingRights: AllCastling,
	}

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p.setPiece(NewPiece(backRank[file], White), NewSquare(file, 0))
		p.setPiece(NewPiece(Pawn, White), NewSquare(file, 1))
		p.setPiece(NewPiece(Pawn, Black), NewSquare(file, 6))
		p.setPiece(NewPiece(backRank[file], Black), NewSquare(file, 7))
	}

	p.Hash = HashPosition(p)
	return p
}

// FromBitboards reconstructs a Position directly from its twelve piece
// bitboards and scalar fields, recomputing occupancy and the Zobrist
// hash. It never goes through any textual notation; config snapshots
// use it to resume a session from stored bitboards verbatim.
func FromBitboards(pieces [2][6]uint64, sideToMove Color, castling CastlingRights, enPassant Square, halfMoveClock, fullMoveNumber int) *Position {
	p := &Position{
		SideToMove:     sideToMove,
		CastlingRights: castling,
		EnPassant:      enPassant,
		HalfMoveClock:  halfMoveClock,
		FullMoveNumber: fullMoveNumber,
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			bb := Bitboard(pieces[c][pt])
			p.Pieces[c][pt] = bb
			p.Occupied[c] |= bb
			p.AllOccupied |= bb
		}
	}
	p.Hash = HashPosition(p)
	return p
}

// Clone returns an independent copy of p; mutating the result never
// affects p.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// OccupancyWhite, OccupancyBlack and OccupancyAll return the union of
// the respective piece bitboards.
func (p *Position) OccupancyWhite() Bitboard { return p.Occupied[White] }
func (p *Position) OccupancyBlack() Bitboard { return p.Occupied[Black] }
func (p *Position) OccupancyAll() Bitboard   { return p.AllOccupied }

// KingSquare returns the square of c's king, or NoSquare if c has none
// (only possible transiently, mid pin-detection scratch work).
func (p *Position) KingSquare(c Color) Square {
	lsb := p.Pieces[c][King].LSB()
	if lsb < 0 {
		return NoSquare
	}
	return Square(lsb)
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	bb := bitutil.SquareBB(int(sq))
	if p.AllOccupied&bb == 0 {
		return NoPiece
	}
	c := White
	if p.Occupied[Black]&bb != 0 {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}
	return NoPiece
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied&bitutil.SquareBB(int(sq)) == 0
}

// setPiece places piece on sq and updates occupancy. It does not touch
// the Zobrist hash; callers that need an incrementally-correct hash
// must XOR the piece-square key themselves.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c, pt := piece.Color(), piece.Type()
	bb := bitutil.SquareBB(int(sq))
	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
	p.AllOccupied |= bb
}

// removePiece clears whatever piece sits on sq and returns it (NoPiece
// if the square was empty already). Does not touch the hash.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	c, pt := piece.Color(), piece.Type()
	bb := bitutil.SquareBB(int(sq))
	p.Pieces[c][pt] &^= bb
	p.Occupied[c] &^= bb
	p.AllOccupied &^= bb
	return piece
}

// String renders the board for debugging.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", p.Hash)
	return s
}
