package fileio_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"urlstats/pkg/fileio"
	"urlstats/pkg/serrors"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestOpenInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "Input.txt", []byte("http://a.com\n"), 0o644))
	require.NoError(t, fs.MkdirAll("dir", 0o755))

	f, err := fileio.OpenInput(fs, "Input.txt")
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "http://a.com\n", string(content))
	require.NoError(t, f.Close())

	_, err = fileio.OpenInput(fs, "")
	require.ErrorIs(t, err, serrors.ErrEmptyPath)

	_, err = fileio.OpenInput(fs, "missing.txt")
	require.ErrorIs(t, err, serrors.ErrCannotOpenInput)

	_, err = fileio.OpenInput(fs, "dir")
	require.ErrorIs(t, err, serrors.ErrCannotOpenInput)
}

func TestCreateOutput(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "Output.txt", []byte("stale content"), 0o644))
	require.NoError(t, fs.MkdirAll("dir", 0o755))

	f, err := fileio.CreateOutput(fs, "Output.txt")
	require.NoError(t, err)
	_, err = f.WriteString("fresh")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	content, err := afero.ReadFile(fs, "Output.txt")
	require.NoError(t, err)
	require.Equal(t, "fresh", string(content))

	_, err = fileio.CreateOutput(fs, "")
	require.ErrorIs(t, err, serrors.ErrEmptyPath)

	_, err = fileio.CreateOutput(fs, "dir")
	require.ErrorIs(t, err, serrors.ErrCannotOpenOutput)

	_, err = fileio.CreateOutput(afero.NewReadOnlyFs(afero.NewMemMapFs()), "Output.txt")
	require.ErrorIs(t, err, serrors.ErrCannotOpenOutput)
}

func readAll(t *testing.T, r io.Reader) []string {
	t.Helper()

	lines := []string{}
	lr := fileio.NewLineReader(r)
	for lr.Next() {
		lines = append(lines, lr.Line())
	}
	require.NoError(t, lr.Err())
	require.Equal(t, len(lines), lr.Lines())
	require.False(t, lr.Next(), "reader must stay exhausted")

	return lines
}

func TestLineReader(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "single newline", input: "\n", want: []string{""}},
		{name: "no trailing newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", input: "a\n\n\nb", want: []string{"a", "", "", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, readAll(t, strings.NewReader(tc.input)))
		})
	}
}

func TestLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	lines := readAll(t, strings.NewReader("short\n"+long+"\nend"))
	require.Len(t, lines, 3)
	require.Len(t, lines[1], 1<<20)
}

type failingReader struct{ data string }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, errors.New("device unplugged")
	}
	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

func TestLineReader_Error(t *testing.T) {
	lr := fileio.NewLineReader(&failingReader{data: "first\nsecond"})

	require.True(t, lr.Next())
	require.Equal(t, "first", lr.Line())
	require.False(t, lr.Next())
	require.ErrorIs(t, lr.Err(), serrors.ErrIO)
	require.Contains(t, lr.Err().Error(), "device unplugged")
}
