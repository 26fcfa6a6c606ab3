package search

// Inf bounds the initial alpha-beta window. It is far outside any
// Evaluate range a well-behaved Descriptor would return, including
// chess's +-99999 mate score.
const Inf = 1 << 30

// Search runs alpha-beta minimax from state to the given depth and
// returns its value from the Maximizer's perspective. table may be nil,
// in which case the search proceeds without caching.
//
// A cache hit with entry.Depth >= depth narrows the window before any
// recursion: an Exact entry is returned outright, a LowerBound raises
// alpha, an UpperBound lowers beta, and if the narrowed window is
// already empty the stored value is returned without visiting a single
// child. This mirrors the reference algorithm's cache-probe-before-
// move-enumeration structure exactly.
func Search[State any, Move any](d Descriptor[State, Move], state State, depth, alpha, beta int, table *Table[State]) int {
	alpha0, beta0 := alpha, beta

	if table != nil {
		if entry, ok := table.Lookup(state); ok && entry.Depth >= depth {
			switch entry.Type {
			case Exact:
				return entry.Value
			case LowerBound:
				if entry.Value > alpha {
					alpha = entry.Value
				}
			case UpperBound:
				if entry.Value < beta {
					beta = entry.Value
				}
			}
			if alpha >= beta {
				return entry.Value
			}
		}
	}

	if d.IsTerminal(state) || depth == 0 {
		value := d.Evaluate(state)
		storeExact(table, state, value, depth)
		return value
	}

	moves := d.Moves(state)
	if len(moves) == 0 {
		value := d.Evaluate(state)
		storeExact(table, state, value, depth)
		return value
	}

	player := d.PlayerToMove(state)
	best := Inf
	if player == Maximizer {
		best = -Inf
	}

	for _, m := range moves {
		next, ok := d.Apply(state, m)
		if !ok {
			continue
		}
		value := Search(d, next, depth-1, alpha, beta, table)

		if player == Maximizer {
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if value < best {
				best = value
			}
			if value < beta {
				beta = value
			}
		}

		if alpha >= beta {
			break
		}
	}

	if table != nil {
		nodeType := Exact
		switch {
		case best <= alpha0:
			nodeType = UpperBound
		case best >= beta0:
			nodeType = LowerBound
		}
		table.Store(state, Entry{Value: best, Depth: depth, Type: nodeType})
	}

	return best
}

func storeExact[State any](table *Table[State], state State, value, depth int) {
	if table != nil {
		table.Store(state, Entry{Value: value, Depth: depth, Type: Exact})
	}
}

// BestMove searches every legal move from state to the given depth and
// returns the one the side to move prefers, or false if state is
// terminal or every pseudo-legal move turns out to be illegal.
func BestMove[State any, Move any](d Descriptor[State, Move], state State, depth int, table *Table[State]) (Move, bool) {
	var zero Move

	if d.IsTerminal(state) {
		return zero, false
	}

	moves := d.Moves(state)
	player := d.PlayerToMove(state)

	best := zero
	bestVal := Inf
	if player == Maximizer {
		bestVal = -Inf
	}
	found := false

	for _, m := range moves {
		next, ok := d.Apply(state, m)
		if !ok {
			continue
		}
		value := Search(d, next, depth-1, -Inf, Inf, table)

		switch {
		case !found:
			best, bestVal, found = m, value, true
		case player == Maximizer && value > bestVal:
			best, bestVal = m, value
		case player == Minimizer && value < bestVal:
			best, bestVal = m, value
		}
	}

	if !found {
		return zero, false
	}
	return best, true
}
