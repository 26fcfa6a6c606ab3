package chess

import "testing"

func TestHashPositionDeterministicWithinAProcess(t *testing.T) {
	a := InitialPosition()
	b := InitialPosition()
	if HashPosition(a) != HashPosition(b) {
		t.Fatalf("two freshly built initial positions must hash identically within the same process")
	}
}

func TestHashPositionChangesAfterAMove(t *testing.T) {
	pos := InitialPosition()
	before := pos.Hash

	next, ok := pos.Apply(NewMove(E2, E4))
	if !ok {
		t.Fatalf("e2e4 should be legal")
	}
	if next.Hash == before {
		t.Fatalf("hash should change after a move")
	}
	if next.Hash != HashPosition(next) {
		t.Fatalf("Apply's incrementally-unnecessary recompute must match a from-scratch hash")
	}
}

func TestHashPositionDiffersOnCastlingRightsAndEnPassant(t *testing.T) {
	base := InitialPosition()
	withoutRights := base.Clone()
	withoutRights.CastlingRights = NoCastling

	if HashPosition(base) == HashPosition(withoutRights) {
		t.Fatalf("castling rights must affect the hash")
	}

	withEP := base.Clone()
	withEP.EnPassant = E3
	if HashPosition(base) == HashPosition(withEP) {
		t.Fatalf("en-passant target must affect the hash")
	}
}

func TestEqualsReflectsFieldByFieldComparison(t *testing.T) {
	a := InitialPosition()
	b := InitialPosition()
	if !Equals(a, b) {
		t.Fatalf("two freshly built initial positions should compare equal")
	}

	c, ok := a.Apply(NewMove(E2, E4))
	if !ok {
		t.Fatalf("e2e4 should be legal")
	}
	if Equals(a, c) {
		t.Fatalf("a position and its successor must not compare equal")
	}
}
