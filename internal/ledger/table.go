package ledger

import "sync"

// table is a concurrent map whose entries are inserted at most once and never removed.
type table[V any] struct {
	m sync.Map
}

func (t *table[V]) get(key string) (V, bool) {
	v, ok := t.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}

	return v.(V), true
}

// getOrInsert stores v under key unless the key is taken. It returns the stored value
// and whether it was already there. Exactly one of concurrent inserters of a key wins.
func (t *table[V]) getOrInsert(key string, v V) (V, bool) {
	actual, loaded := t.m.LoadOrStore(key, v)
	return actual.(V), loaded
}

func (t *table[V]) len() int {
	n := 0
	t.m.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}
