// Package extract finds http and https URLs embedded in free text and splits
// them into a lower-cased domain and a case-sensitive path.
//
// Tokens are consumed by maximal munch: the domain is the longest run of
// domain characters after the scheme, the path the longest run of path
// characters after the domain. Candidates that fail the scheme or domain
// checks are skipped without error.
package extract

import "strings"

const (
	schemePrefix = "http"
	// DefaultPath is recorded for URLs without a path.
	DefaultPath = "/"
)

// URL is an accepted (domain, path) pair.
type URL struct {
	Domain string
	Path   string
}

// Outcome describes what Parse did with a candidate.
type Outcome int

const (
	// Accepted means a URL was extracted.
	Accepted Outcome = iota
	// BadScheme means the candidate was not followed by "://" or "s://".
	BadScheme
	// EmptyDomain means the scheme was not followed by any domain character.
	EmptyDomain
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case BadScheme:
		return "bad_scheme"
	case EmptyDomain:
		return "empty_domain"
	default:
		return "unknown"
	}
}

// LineStats summarizes the candidates seen on one line.
type LineStats struct {
	Candidates  int
	Accepted    int
	BadScheme   int
	EmptyDomain int
}

// Add accumulates other into s.
func (s *LineStats) Add(other LineStats) {
	s.Candidates += other.Candidates
	s.Accepted += other.Accepted
	s.BadScheme += other.BadScheme
	s.EmptyDomain += other.EmptyDomain
}

// Extractor locates "http" candidates with a Matcher and validates them.
// The zero value is not usable; construct with New.
type Extractor struct {
	matcher *Matcher
}

// New returns an Extractor. The scheme is matched without regard to case.
func New() *Extractor {
	return &Extractor{matcher: NewMatcher(schemePrefix, true)}
}

// Parse validates the candidate whose "http" starts at match. It returns the
// extracted URL, the position at which scanning should resume and the
// outcome. The resume position is always greater than match.
//
// Rejected candidates resume right after the "http" so that a later
// occurrence overlapping the rejected text can still be found.
func (e *Extractor) Parse(line string, match int) (URL, int, Outcome) {
	if match < 0 {
		match = 0
	}
	skip := match + len(schemePrefix)

	afterScheme := schemeEnd(line, skip)
	if afterScheme < 0 {
		return URL{}, skip, BadScheme
	}

	afterDomain := span(Domain, line, afterScheme)
	if afterDomain == afterScheme {
		return URL{}, skip, EmptyDomain
	}

	afterPath := span(Path, line, afterDomain)
	path := line[afterDomain:afterPath]
	if path == "" {
		path = DefaultPath
	}

	// both keys are copied so the tables never retain whole lines
	return URL{
		Domain: lowerASCII(line[afterScheme:afterDomain]),
		Path:   strings.Clone(path),
	}, afterPath, Accepted
}

// ScanLine reports every URL found in line to visit, in order of appearance.
func (e *Extractor) ScanLine(line string, visit func(URL)) LineStats {
	var stats LineStats

	for pos := 0; pos < len(line); {
		match := e.matcher.FindNext(line, pos)
		if match == NotFound {
			break
		}

		url, next, outcome := e.Parse(line, match)
		stats.Candidates++
		switch outcome {
		case Accepted:
			stats.Accepted++
			visit(url)
		case BadScheme:
			stats.BadScheme++
		case EmptyDomain:
			stats.EmptyDomain++
		}
		pos = next
	}

	return stats
}

// schemeEnd returns the position after "://" or "s://" starting at pos, or
// -1 when neither follows.
func schemeEnd(line string, pos int) int {
	if pos > len(line) {
		return -1
	}
	rest := line[pos:]
	if strings.HasPrefix(rest, "://") {
		return pos + len("://")
	}
	if len(rest) >= len("s://") && lowerByte(rest[0]) == 's' && strings.HasPrefix(rest[1:], "://") {
		return pos + len("s://")
	}

	return -1
}
