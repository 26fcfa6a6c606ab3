package search

import "testing"

type intKey int

func identityHash(k intKey) uint64 { return uint64(k) }
func intEquals(a, b intKey) bool   { return a == b }

func TestTableStoreThenLookup(t *testing.T) {
	tbl := NewTable[intKey](identityHash, intEquals)

	if _, ok := tbl.Lookup(7); ok {
		t.Fatalf("expected a miss on an empty table")
	}

	tbl.Store(7, Entry{Value: 42, Depth: 3, Type: Exact})
	got, ok := tbl.Lookup(7)
	if !ok {
		t.Fatalf("expected a hit after Store")
	}
	if got.Value != 42 || got.Depth != 3 || got.Type != Exact {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestTableStoreReplacesExistingKeyInPlace(t *testing.T) {
	tbl := NewTable[intKey](identityHash, intEquals)
	tbl.Store(1, Entry{Value: 1, Depth: 1, Type: Exact})
	tbl.Store(1, Entry{Value: 2, Depth: 2, Type: LowerBound})

	if tbl.Len() != 1 {
		t.Fatalf("replacing an existing key must not grow the table, got %d entries", tbl.Len())
	}
	got, _ := tbl.Lookup(1)
	if got.Value != 2 || got.Depth != 2 || got.Type != LowerBound {
		t.Fatalf("expected the replacement value, got %+v", got)
	}
}

func TestTableHandlesBucketCollisionsViaChaining(t *testing.T) {
	tbl := NewTable[intKey](identityHash, intEquals)
	// These two keys collide in the same bucket because hash wraps modulo tableBuckets.
	a := intKey(5)
	b := intKey(5 + tableBuckets)

	tbl.Store(a, Entry{Value: 1, Depth: 1, Type: Exact})
	tbl.Store(b, Entry{Value: 2, Depth: 1, Type: Exact})

	gotA, ok := tbl.Lookup(a)
	if !ok || gotA.Value != 1 {
		t.Fatalf("expected key a to survive chaining, got %+v ok=%v", gotA, ok)
	}
	gotB, ok := tbl.Lookup(b)
	if !ok || gotB.Value != 2 {
		t.Fatalf("expected key b to survive chaining, got %+v ok=%v", gotB, ok)
	}
}

func TestForEachVisitsEveryStoredEntry(t *testing.T) {
	tbl := NewTable[intKey](identityHash, intEquals)
	want := map[intKey]int{1: 10, 2: 20, 3: 30}
	for k, v := range want {
		tbl.Store(k, Entry{Value: v, Depth: 1, Type: Exact})
	}

	seen := map[intKey]int{}
	tbl.ForEach(func(k intKey, e Entry) {
		seen[k] = e.Value
	})

	if len(seen) != len(want) {
		t.Fatalf("expected %d entries, saw %d", len(want), len(seen))
	}
	for k, v := range want {
		if seen[k] != v {
			t.Fatalf("entry %d: want %d, got %d", k, v, seen[k])
		}
	}
}

func TestIteratorVisitsEveryStoredEntryExactlyOnce(t *testing.T) {
	tbl := NewTable[intKey](identityHash, intEquals)
	for i := intKey(0); i < 20; i++ {
		tbl.Store(i, Entry{Value: int(i), Depth: 1, Type: Exact})
	}

	it := NewIterator(tbl)
	count := 0
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	if count != 20 {
		t.Fatalf("expected to visit 20 entries, visited %d", count)
	}
}
