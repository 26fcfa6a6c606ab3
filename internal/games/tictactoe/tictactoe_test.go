package tictactoe

import (
	"testing"

	"github.com/hailam/chessplay/internal/search"
)

func TestDescriptorNeverLosesFromTheEmptyBoard(t *testing.T) {
	d := Descriptor{}
	state := NewGame()
	table := search.NewTable[State](d.HashState, d.EqualsState)

	for !d.IsTerminal(state) {
		m, ok := search.BestMove[State, Move](d, state, 9, table)
		if !ok {
			t.Fatalf("expected a move in a non-terminal position")
		}
		next, applied := d.Apply(state, m)
		if !applied {
			t.Fatalf("BestMove returned an illegal move")
		}
		state = next
	}

	if got := d.Evaluate(state); got != 0 {
		t.Fatalf("perfect play from both sides should draw, got evaluation %d", got)
	}
}

func TestDescriptorTakesTheImmediateWin(t *testing.T) {
	d := Descriptor{}
	state := State{
		Board: [9]Mark{
			X, X, Empty,
			O, O, Empty,
			Empty, Empty, Empty,
		},
		NextPlayer: X,
	}
	table := search.NewTable[State](d.HashState, d.EqualsState)

	m, ok := search.BestMove[State, Move](d, state, 9, table)
	if !ok {
		t.Fatalf("expected a move")
	}
	if m != 2 {
		t.Fatalf("X should complete the top row at cell 2, got %d", m)
	}
}

func TestHashStateAgreesWithEqualsState(t *testing.T) {
	d := Descriptor{}
	a := State{Board: [9]Mark{X, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty}, NextPlayer: O}
	b := a

	if !d.EqualsState(a, b) {
		t.Fatalf("identical boards should compare equal")
	}
	if d.HashState(a) != d.HashState(b) {
		t.Fatalf("identical boards must hash identically")
	}

	c := a
	c.Board[1] = O
	c.NextPlayer = X
	if d.EqualsState(a, c) {
		t.Fatalf("a board with an extra mark should not compare equal")
	}
	if d.HashState(a) == d.HashState(c) {
		t.Fatalf("distinguishable boards should not collide on so small a change")
	}
}
