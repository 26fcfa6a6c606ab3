// Package wire is the boundary between the chess core and everything
// that only needs to look at a position or a move, not play one: the
// renderer and the CLI driver. It never lets a *chess.Position leak
// past it — its consumers see Piece/BoardView/MoveRecord values instead.
// (The preference store does not go through this package; it snapshots
// chess positions directly.)
package wire

import "github.com/hailam/chessplay/internal/chess"

// Piece is the wire piece identifier set: EMPTY plus one tag per
// (kind, color) pair, contiguous so a renderer can use it as a sprite
// table index.
type Piece int

const (
	EmptyPiece Piece = iota
	PawnWhite
	KnightWhite
	BishopWhite
	RookWhite
	QueenWhite
	KingWhite
	PawnBlack
	KnightBlack
	BishopBlack
	RookBlack
	QueenBlack
	KingBlack
)

// EncodePiece maps a chess piece kind and color to its wire tag.
func EncodePiece(kind chess.PieceType, color chess.Color) Piece {
	if kind == chess.NoPieceType || color == chess.NoColor {
		return EmptyPiece
	}
	base := Piece(kind) + PawnWhite
	if color == chess.Black {
		base += Piece(PawnBlack - PawnWhite)
	}
	return base
}

// DecodePiece is EncodePiece's inverse. It returns chess.NoPieceType and
// chess.NoColor for EmptyPiece.
func DecodePiece(p Piece) (chess.PieceType, chess.Color) {
	if p == EmptyPiece {
		return chess.NoPieceType, chess.NoColor
	}
	if p >= PawnBlack {
		return chess.PieceType(p - PawnBlack), chess.Black
	}
	return chess.PieceType(p - PawnWhite), chess.White
}

// BoardView is a square-indexed snapshot of a position's pieces, the
// shape the renderer consumes so it never has to know about bitboards.
type BoardView struct {
	Squares    [64]Piece
	SideToMove chess.Color
}

// ViewPosition builds a BoardView from a live position.
func ViewPosition(p *chess.Position) *BoardView {
	v := &BoardView{SideToMove: p.SideToMove}
	for sq := 0; sq < 64; sq++ {
		piece := p.PieceAt(chess.Square(sq))
		v.Squares[sq] = EncodePiece(piece.Type(), piece.Color())
	}
	return v
}

// MoveRecord is the move-record shape for history consumers: enough
// information to render or replay a move without touching the core's
// own compact Move encoding.
type MoveRecord struct {
	Index int // 1-based move number; Translate leaves it zero and the caller sets it

	FromFile, FromRank int
	ToFile, ToRank     int

	MovedPiece    Piece
	Player        chess.Color
	CapturedPiece Piece // EmptyPiece if no capture

	CastlingLeft  bool
	CastlingRight bool
	EnPassant     bool

	OpponentInCheck bool
	Checkmate       bool
	Draw            bool

	Evaluation int
}

// Translate fills a MoveRecord from a single applied transition: before
// is the position the move was played from, after is Apply's result,
// and evalScore is the caller's evaluation of after (typically
// chess.Evaluate(after)). The moved and captured pieces are identified
// from before so promotions and en-passant captures are attributed
// correctly.
func Translate(before, after *chess.Position, m chess.Move, evalScore int) MoveRecord {
	mover := before.PieceAt(m.From())

	captured := EmptyPiece
	if m.IsEnPassant() {
		var capturedSq chess.Square
		if before.SideToMove == chess.White {
			capturedSq = m.To() - 8
		} else {
			capturedSq = m.To() + 8
		}
		capturedPiece := before.PieceAt(capturedSq)
		captured = EncodePiece(capturedPiece.Type(), capturedPiece.Color())
	} else if capturedPiece := before.PieceAt(m.To()); capturedPiece != chess.NoPiece {
		captured = EncodePiece(capturedPiece.Type(), capturedPiece.Color())
	}

	rec := MoveRecord{
		FromFile: m.From().File(), FromRank: m.From().Rank(),
		ToFile: m.To().File(), ToRank: m.To().Rank(),
		MovedPiece:    EncodePiece(mover.Type(), mover.Color()),
		Player:        before.SideToMove,
		CapturedPiece: captured,
		EnPassant:     m.IsEnPassant(),
		Evaluation:    evalScore,
	}

	if m.IsCastling() {
		if m.To() > m.From() {
			rec.CastlingRight = true
		} else {
			rec.CastlingLeft = true
		}
	}

	opponent := before.SideToMove.Other()
	rec.OpponentInCheck = chess.IsKingInCheck(after, opponent)
	if chess.IsTerminal(after) {
		if rec.OpponentInCheck {
			rec.Checkmate = true
		} else {
			rec.Draw = true
		}
	}

	return rec
}
