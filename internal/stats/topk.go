package stats

import (
	"container/heap"
	"sort"
	"urlstats/pkg/domain"
)

// SelectTop returns the min(k, src.Len()) highest-count entries of src,
// ordered by descending count and then ascending key under mode.
//
// The whole table is never sorted: a working set of at most k records is kept
// in a min-heap whose root is the lowest-ranked record held. A candidate
// replaces the root only if it ranks strictly before it, so the kept set does
// not depend on the iteration order of src.
func SelectTop(src Source, k int, mode domain.CompareMode) []domain.Record {
	if k <= 0 || src.Len() == 0 {
		return []domain.Record{}
	}

	capacity := k
	if n := src.Len(); n < capacity {
		capacity = n
	}
	h := &recordHeap{
		records: make([]domain.Record, 0, capacity),
		mode:    mode,
	}

	src.Range(func(key string, count uint64) bool {
		r := domain.Record{Key: key, Count: count}
		if h.Len() < k {
			heap.Push(h, r)

			return true
		}
		if r.Ranks(h.records[0], mode) {
			h.records[0] = r
			heap.Fix(h, 0)
		}

		return true
	})

	top := h.records
	sort.Slice(top, func(i, j int) bool {
		return top[i].Ranks(top[j], mode)
	})

	return top
}

// recordHeap is a min heap over rank: the root is the record that would be
// listed last.
type recordHeap struct {
	records []domain.Record
	mode    domain.CompareMode
}

func (h *recordHeap) Len() int { return len(h.records) }

func (h *recordHeap) Less(i, j int) bool {
	return h.records[j].Ranks(h.records[i], h.mode)
}

func (h *recordHeap) Swap(i, j int) {
	h.records[i], h.records[j] = h.records[j], h.records[i]
}

func (h *recordHeap) Push(x any) {
	h.records = append(h.records, x.(domain.Record)) //nolint: forcetypeassert
}

func (h *recordHeap) Pop() any {
	n := len(h.records)
	r := h.records[n-1]
	h.records = h.records[:n-1]

	return r
}
