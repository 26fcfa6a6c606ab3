// Package search implements a generic alpha-beta minimax over any
// two-player zero-sum game reachable through a Descriptor: a chained-
// bucket transposition table and the search/best-move entry points
// themselves never reference chess, Connect Four, or any other concrete
// game — internal/engine is what binds a Descriptor to internal/chess.
package search

// NodeType classifies how a stored Entry's Value bounds the true
// minimax value of the position it was computed for.
type NodeType uint8

const (
	Exact NodeType = iota
	LowerBound
	UpperBound
)

func (t NodeType) String() string {
	switch t {
	case Exact:
		return "Exact"
	case LowerBound:
		return "LowerBound"
	case UpperBound:
		return "UpperBound"
	default:
		return "?"
	}
}

// Entry is the value half of a transposition-table record.
type Entry struct {
	Value int
	Depth int
	Type  NodeType
}

// tableBuckets is the table's fixed bucket count. The table never
// rehashes; a pathological number of distinct keys degrades to long
// chains rather than growing the table, matching the reference cache's
// fixed-capacity discipline.
const tableBuckets = 1 << 16

type node[K any] struct {
	hash  uint64
	key   K
	value Entry
	next  *node[K]
}

// Table is a chained hash map keyed by a 64-bit hash with a caller-
// supplied equality predicate for collision resolution, matching the
// generic cache the search consumes: a fixed bucket count, no
// rehashing, and borrowed (not owned) keys and values — the table never
// clones or frees what callers hand it.
type Table[K any] struct {
	buckets [tableBuckets]*node[K]
	equals  func(a, b K) bool
	hash    func(k K) uint64
	count   int
}

// NewTable builds an empty table. hash and equals must agree: any two
// keys equals reports equal must also hash equal.
func NewTable[K any](hash func(K) uint64, equals func(a, b K) bool) *Table[K] {
	return &Table[K]{hash: hash, equals: equals}
}

func (t *Table[K]) bucketIndex(h uint64) uint64 {
	return h & (tableBuckets - 1)
}

// Lookup returns the stored entry for key and true, or a zero Entry and
// false if key is absent.
func (t *Table[K]) Lookup(key K) (Entry, bool) {
	h := t.hash(key)
	for n := t.buckets[t.bucketIndex(h)]; n != nil; n = n.next {
		if n.hash == h && t.equals(n.key, key) {
			return n.value, true
		}
	}
	return Entry{}, false
}

// Store replaces the entry for key in place if key is already present
// (by the table's equality, not pointer identity), else prepends a new
// node to key's bucket.
func (t *Table[K]) Store(key K, value Entry) {
	h := t.hash(key)
	idx := t.bucketIndex(h)
	for n := t.buckets[idx]; n != nil; n = n.next {
		if n.hash == h && t.equals(n.key, key) {
			n.value = value
			return
		}
	}
	t.buckets[idx] = &node[K]{hash: h, key: key, value: value, next: t.buckets[idx]}
	t.count++
}

// Len returns the number of distinct keys currently stored.
func (t *Table[K]) Len() int {
	return t.count
}

// ForEach invokes fn once per stored (key, value) pair. Enumeration
// order is bucket order then chain order, neither of which is a
// meaningful ordering to a caller — it exists for diagnostics, not
// iteration semantics callers should depend on.
func (t *Table[K]) ForEach(fn func(key K, value Entry)) {
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			fn(n.key, n.value)
		}
	}
}

// Iterator walks a Table one entry at a time. Like the table itself, it
// is invalidated by concurrent mutation of the table it was created
// from.
type Iterator[K any] struct {
	t         *Table[K]
	bucketIdx int
	cur       *node[K]
}

// NewIterator returns an iterator positioned before the first entry.
func NewIterator[K any](t *Table[K]) *Iterator[K] {
	return &Iterator[K]{t: t, bucketIdx: -1}
}

// Next advances the iterator and returns the next (key, value) pair, or
// false once every entry has been visited.
func (it *Iterator[K]) Next() (K, Entry, bool) {
	for {
		if it.cur != nil {
			k, v := it.cur.key, it.cur.value
			it.cur = it.cur.next
			return k, v, true
		}
		it.bucketIdx++
		if it.bucketIdx >= len(it.t.buckets) {
			var zero K
			return zero, Entry{}, false
		}
		it.cur = it.t.buckets[it.bucketIdx]
	}
}
