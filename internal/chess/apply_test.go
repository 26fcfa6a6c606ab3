package chess

import "testing"

func TestApplyRejectsMovingAbsolutelyPinnedPiece(t *testing.T) {
	// White king on e1, white bishop on e2, black rook on e8: the
	// bishop is pinned along the e-file and may not step off it.
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1}
	p.setPiece(WhiteKing, E1)
	p.setPiece(WhiteBishop, E2)
	p.setPiece(BlackRook, E8)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	if _, ok := p.Apply(NewMove(E2, D3)); ok {
		t.Fatalf("moving the pinned bishop off the e-file should be rejected")
	}
	if _, ok := p.Apply(NewMove(E2, F3)); ok {
		t.Fatalf("the bishop has no diagonal move that stays on the e-file, so every move must be rejected")
	}
}

func TestApplyRejectsKingMovingIntoCheck(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1}
	p.setPiece(WhiteKing, E1)
	p.setPiece(BlackRook, F8)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	if _, ok := p.Apply(NewMove(E1, F1)); ok {
		t.Fatalf("king stepping onto a file guarded by the enemy rook should be rejected")
	}
	if _, ok := p.Apply(NewMove(E1, D1)); !ok {
		t.Fatalf("king stepping off the guarded file should be legal")
	}
}

func TestApplyRejectsCapturingOpposingKing(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1}
	p.setPiece(WhiteKing, A1)
	p.setPiece(WhiteQueen, G7)
	p.setPiece(BlackKing, G8)
	p.Hash = HashPosition(p)

	if _, ok := p.Apply(NewMove(G7, G8)); ok {
		t.Fatalf("capturing the opposing king outright must be rejected")
	}
}

func TestApplyCastlingKingsideMovesRookToF1(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1, CastlingRights: AllCastling}
	p.setPiece(WhiteKing, E1)
	p.setPiece(WhiteRook, H1)
	p.setPiece(WhiteRook, A1)
	p.setPiece(BlackKing, E8)
	p.Hash = HashPosition(p)

	next, ok := p.Apply(NewCastling(E1, G1))
	if !ok {
		t.Fatalf("kingside castle should be legal with a clear path and no checks")
	}
	if next.PieceAt(G1) != WhiteKing {
		t.Fatalf("king should land on g1")
	}
	if next.PieceAt(F1) != WhiteRook {
		t.Fatalf("rook should land on f1")
	}
	if next.CastlingRights&(WhiteKingSideCastle|WhiteQueenSideCastle) != 0 {
		t.Fatalf("both white castling rights should be cleared after castling")
	}
}

func TestApplyCastlingRejectedWhenKingPassesThroughCheck(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1, CastlingRights: AllCastling}
	p.setPiece(WhiteKing, E1)
	p.setPiece(WhiteRook, H1)
	p.setPiece(BlackRook, F8)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	if _, ok := p.Apply(NewCastling(E1, G1)); ok {
		t.Fatalf("castling through an attacked square (f1) must be rejected")
	}
}

func TestApplyCastlingRejectedWhenKingInCheck(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1, CastlingRights: AllCastling}
	p.setPiece(WhiteKing, E1)
	p.setPiece(WhiteRook, H1)
	p.setPiece(BlackRook, E8)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	if _, ok := p.Apply(NewCastling(E1, G1)); ok {
		t.Fatalf("castling while in check must be rejected")
	}
}

func TestApplyPromotionReplacesThePawnWithTheRequestedPiece(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1}
	p.setPiece(WhiteKing, A1)
	p.setPiece(WhitePawn, A7)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	next, ok := p.Apply(NewPromotion(A7, A8, Queen))
	if !ok {
		t.Fatalf("pawn push to a8 with promotion should be legal")
	}
	if next.PieceAt(A8) != WhiteQueen {
		t.Fatalf("expected the pawn to promote to a queen, got %v", next.PieceAt(A8))
	}
	if next.PieceAt(A7) != NoPiece {
		t.Fatalf("the origin square should be empty after the push")
	}
}

func TestApplyHalfMoveClockIncrementsOnQuietNonPawnMove(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1, HalfMoveClock: 5}
	p.setPiece(WhiteKing, A1)
	p.setPiece(WhiteKnight, B1)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	next, ok := p.Apply(NewMove(B1, C3))
	if !ok {
		t.Fatalf("knight move should be legal")
	}
	if next.HalfMoveClock != 6 {
		t.Fatalf("a quiet non-pawn move should increment the half-move clock, got %d", next.HalfMoveClock)
	}
}

func TestApplyHalfMoveClockResetsOnPawnMove(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1, HalfMoveClock: 5}
	p.setPiece(WhiteKing, A1)
	p.setPiece(WhitePawn, B2)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	next, ok := p.Apply(NewMove(B2, B3))
	if !ok {
		t.Fatalf("pawn push should be legal")
	}
	if next.HalfMoveClock != 0 {
		t.Fatalf("a pawn move must reset the half-move clock, got %d", next.HalfMoveClock)
	}
}

func TestApplyHalfMoveClockResetsOnCapture(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1, HalfMoveClock: 5}
	p.setPiece(WhiteKing, A1)
	p.setPiece(WhiteKnight, B1)
	p.setPiece(BlackKnight, C3)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	next, ok := p.Apply(NewMove(B1, C3))
	if !ok {
		t.Fatalf("capturing the knight on c3 should be legal")
	}
	if next.HalfMoveClock != 0 {
		t.Fatalf("a capture must reset the half-move clock, got %d", next.HalfMoveClock)
	}
}
