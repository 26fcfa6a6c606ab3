package chess

import "testing"

func TestEvaluateInitialPositionIsBalanced(t *testing.T) {
	pos := InitialPosition()
	if got := Evaluate(pos); got != 0 {
		t.Fatalf("starting position should evaluate to 0, got %d", got)
	}
}

func TestEvaluateMaterialDifference(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1}
	p.setPiece(WhiteKing, A1)
	p.setPiece(WhiteQueen, D1)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	if got := Evaluate(p); got != 900 {
		t.Fatalf("a lone extra white queen should score +900, got %d", got)
	}
}

func TestEvaluateBishopPairBonus(t *testing.T) {
	p := &Position{SideToMove: White, EnPassant: NoSquare, FullMoveNumber: 1}
	p.setPiece(WhiteKing, A1)
	p.setPiece(WhiteBishop, C1)
	p.setPiece(WhiteBishop, F1)
	p.setPiece(BlackKing, H8)
	p.Hash = HashPosition(p)

	want := 2*330 + bishopPairBonus
	if got := Evaluate(p); got != want {
		t.Fatalf("two bishops should score material plus the bishop-pair bonus: want %d, got %d", want, got)
	}
}

func TestIsTerminalFoolsMate(t *testing.T) {
	// 1. f3 e5 2. g4 Qh4# -- the canonical two-move checkmate.
	pos := InitialPosition()

	var ok bool
	pos, ok = pos.Apply(NewMove(F2, F3))
	mustApply(t, ok)
	pos, ok = pos.Apply(NewMove(E7, E5))
	mustApply(t, ok)
	pos, ok = pos.Apply(NewMove(G2, G4))
	mustApply(t, ok)
	pos, ok = pos.Apply(NewMove(D8, H4))
	mustApply(t, ok)

	if !IsTerminal(pos) {
		t.Fatalf("fool's mate position should be terminal")
	}
	if !IsKingInCheck(pos, White) {
		t.Fatalf("white king should be in check after Qh4#")
	}
	if got := Evaluate(pos); got != -mateScore {
		t.Fatalf("white being checkmated should evaluate to %d, got %d", -mateScore, got)
	}
}

func mustApply(t *testing.T, ok bool) {
	t.Helper()
	if !ok {
		t.Fatalf("expected move to be legal")
	}
}
