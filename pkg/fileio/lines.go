package fileio

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"urlstats/pkg/serrors"
)

const readBufferSize = 64 << 10

// LineReader yields the lines of a reader one at a time. Lines may be of any
// length; "\n" and "\r\n" terminators are stripped. A final line without a
// terminator is still returned. A LineReader cannot be rewound.
type LineReader struct {
	reader *bufio.Reader
	line   string
	lines  int
	err    error
	done   bool
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReaderSize(r, readBufferSize)}
}

// Next advances to the next line. It returns false at the end of input or on
// a read error, see Err.
func (l *LineReader) Next() bool {
	if l.done {
		return false
	}

	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.done = true
		if !errors.Is(err, io.EOF) {
			l.err = serrors.Wrap(serrors.ErrIO, err, "could not read line %d", l.lines+1)

			return false
		}
		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	l.line = strings.TrimSuffix(line, "\r")
	l.lines++

	return true
}

// Line returns the current line.
func (l *LineReader) Line() string { return l.line }

// Lines returns how many lines were read so far.
func (l *LineReader) Lines() int { return l.lines }

// Err returns the first non-EOF error encountered.
func (l *LineReader) Err() error { return l.err }
