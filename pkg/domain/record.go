package domain

import "strings"

// Record is a single (key, count) entry selected into a top list.
type Record struct {
	Key   string `json:"key"`
	Count uint64 `json:"count"`
}

// CompareMode selects how keys with equal counts are ordered.
type CompareMode int

const (
	// CompareBytes orders keys by direct byte comparison.
	CompareBytes CompareMode = iota
	// CompareFoldCase orders keys by their lower-cased form.
	CompareFoldCase
)

// String implements fmt.Stringer.
func (m CompareMode) String() string {
	switch m {
	case CompareBytes:
		return "bytes"
	case CompareFoldCase:
		return "fold-case"
	default:
		return "unknown"
	}
}

// Less reports whether key a sorts before key b under the mode.
func (m CompareMode) Less(a, b string) bool {
	if m == CompareFoldCase {
		// keys equal up to case still need a fixed order
		if la, lb := strings.ToLower(a), strings.ToLower(b); la != lb {
			return la < lb
		}
	}

	return a < b
}

// Ranks reports whether r sorts before other in a top list: higher count
// first, then ascending key under mode.
func (r Record) Ranks(other Record, mode CompareMode) bool {
	if r.Count != other.Count {
		return r.Count > other.Count
	}

	return mode.Less(r.Key, other.Key)
}
