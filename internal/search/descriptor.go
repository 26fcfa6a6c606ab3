package search

// Player names the side to move for the purpose of minimax's max/min
// switch: Maximizer seeks the highest Evaluate score, Minimizer the
// lowest.
type Player int

const (
	Maximizer Player = 1
	Minimizer Player = -1
)

// Descriptor is the capability bundle Search and BestMove consume. It
// is the entire surface a game must implement to be searchable — the
// search code never references chess, Connect Four, or any other
// concrete game directly. State and Move are the game's own types;
// Clone, Apply, and friends operate on them exactly as the game defines.
type Descriptor[State any, Move any] interface {
	// Clone returns an independent copy of s.
	Clone(s State) State

	// Moves returns every pseudo-legal move available to the side to
	// move in s. The returned slice is owned by the caller; Descriptor
	// implementations must not retain it.
	Moves(s State) []Move

	// Apply plays m against s and returns the resulting state and true,
	// or a zero State and false if m is illegal in s.
	Apply(s State, m Move) (State, bool)

	// IsTerminal reports whether s has no legal continuation.
	IsTerminal(s State) bool

	// Evaluate scores s from the Maximizer's perspective.
	Evaluate(s State) int

	// PlayerToMove reports whether the Maximizer or Minimizer is to act
	// in s.
	PlayerToMove(s State) Player

	// HashState returns a hash of s suitable for transposition-table
	// keying.
	HashState(s State) uint64

	// EqualsState reports whether a and b are the same game state.
	EqualsState(a, b State) bool
}
