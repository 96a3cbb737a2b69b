// Package stats holds occurrence counters and the bounded top-K selection
// over them.
package stats

// Source is a read-only view over key counts.
type Source interface {
	// Len returns the number of distinct keys.
	Len() int
	// Range calls fn for every key until fn returns false. Order is unspecified.
	Range(fn func(key string, count uint64) bool)
}

// Table maps a key to the number of times it was seen. Keys are never
// removed and counts never decrease. A Table is not safe for concurrent use.
type Table struct {
	counts map[string]uint64
	total  uint64
}

var _ Source = (*Table)(nil)

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]uint64)}
}

// Increment records one occurrence of key and returns its new count.
func (t *Table) Increment(key string) uint64 {
	t.counts[key]++
	t.total++

	return t.counts[key]
}

// Count returns the number of occurrences of key, zero if absent.
func (t *Table) Count(key string) uint64 {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *Table) Total() uint64 {
	return t.total
}

// Range calls fn for every entry until fn returns false.
func (t *Table) Range(fn func(key string, count uint64) bool) {
	for key, count := range t.counts {
		if !fn(key, count) {
			return
		}
	}
}
