package extract

// NotFound is returned by Matcher.FindNext when no occurrence exists.
const NotFound = -1

// Matcher finds occurrences of a fixed pattern using a precomputed
// prefix function (Knuth-Morris-Pratt). A Matcher is immutable after
// construction and may be reused across any number of lines.
type Matcher struct {
	pattern  string
	failure  []int
	foldCase bool
}

// NewMatcher precomputes the failure table for pattern. When foldCase is set,
// ASCII letters match regardless of case. An empty pattern matches at every
// position.
func NewMatcher(pattern string, foldCase bool) *Matcher {
	if foldCase {
		pattern = lowerASCII(pattern)
	}
	m := &Matcher{
		pattern:  pattern,
		failure:  make([]int, len(pattern)),
		foldCase: foldCase,
	}

	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = m.failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		m.failure[i] = k
	}

	return m
}

// Pattern returns the pattern the matcher searches for.
func (m *Matcher) Pattern() string { return m.pattern }

// Len returns the pattern length in bytes.
func (m *Matcher) Len() int { return len(m.pattern) }

// FindNext returns the start index of the first occurrence of the pattern in
// line at or after from, or NotFound. Each call runs in O(len(line)-from).
func (m *Matcher) FindNext(line string, from int) int {
	if from < 0 {
		from = 0
	}
	if len(m.pattern) == 0 {
		if from > len(line) {
			return NotFound
		}

		return from
	}

	k := 0
	for i := from; i < len(line); i++ {
		c := line[i]
		if m.foldCase {
			c = lowerByte(c)
		}
		for k > 0 && m.pattern[k] != c {
			k = m.failure[k-1]
		}
		if m.pattern[k] == c {
			k++
		}
		if k == len(m.pattern) {
			return i - k + 1
		}
	}

	return NotFound
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = lowerByte(b[i])
	}

	return string(b)
}
