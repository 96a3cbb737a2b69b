package extract

// Kind names a character class of a URL component.
type Kind int

const (
	// Domain characters: ASCII letters, digits, '.' and '-'.
	Domain Kind = iota
	// Path characters: ASCII letters, digits, '.', ',', '/', '+' and '_'.
	Path
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Domain:
		return "domain"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// symbolTables holds one lookup table per Kind, indexed by byte value.
var symbolTables = [...][256]bool{ //nolint: gochecknoglobals
	Domain: buildTable(".-"),
	Path:   buildTable(".,/+_"),
}

func buildTable(extra string) [256]bool {
	var table [256]bool
	for c := '0'; c <= '9'; c++ {
		table[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		table[c] = true
		table[c-'a'+'A'] = true
	}
	for i := 0; i < len(extra); i++ {
		table[extra[i]] = true
	}

	return table
}

// IsValid reports whether c may appear inside a token of the given kind.
// It is total over all byte values and unknown kinds.
func IsValid(kind Kind, c byte) bool {
	if kind < 0 || int(kind) >= len(symbolTables) {
		return false
	}

	return symbolTables[kind][c]
}

// span returns the end of the maximal run of kind-valid bytes in line
// starting at from.
func span(kind Kind, line string, from int) int {
	i := from
	for i < len(line) && IsValid(kind, line[i]) {
		i++
	}

	return i
}
