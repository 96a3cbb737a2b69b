package serrors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"urlstats/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrEmptyPath,
		serrors.ErrCannotOpenInput,
		serrors.ErrCannotOpenOutput,
		serrors.ErrBadArgument,
		serrors.ErrIO,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("permission denied")

	e1 := serrors.With(serrors.ErrEmptyPath, "%s file path is empty", "input")
	require.Equal(t, "input file path is empty", e1.Error())

	e2 := serrors.Wrap(serrors.ErrCannotOpenInput, base, "can not open input file")
	require.Equal(t, "can not open input file: permission denied", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrCannotOpenOutput)
	require.Equal(t, "CANNOT_OPEN_OUTPUT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	e := serrors.Wrap(serrors.ErrCannotOpenInput, os.ErrNotExist, "opening Input.txt")

	require.ErrorIs(t, e, serrors.ErrCannotOpenInput)
	require.ErrorIs(t, e, os.ErrNotExist)
	require.NotErrorIs(t, e, serrors.ErrCannotOpenOutput)

	// kind survives further wrapping
	wrapped := fmt.Errorf("could not collect statistics: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrCannotOpenInput)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"disk gone"}
	e := serrors.Wrap(serrors.ErrIO, base, "reading line")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrIO, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestIsArgument(t *testing.T) {
	require.True(t, serrors.IsArgument(serrors.KindOnly(serrors.ErrEmptyPath)))
	require.True(t, serrors.IsArgument(serrors.With(serrors.ErrBadArgument, "bad -n")))
	require.True(t, serrors.IsArgument(fmt.Errorf("x: %w", serrors.KindOnly(serrors.ErrCannotOpenOutput))))
	require.False(t, serrors.IsArgument(serrors.KindOnly(serrors.ErrIO)))
	require.False(t, serrors.IsArgument(errors.New("plain")))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrCannotOpenOutput, base, "can not open output file")
	require.Equal(t, serrors.ErrCannotOpenOutput, e.Kind())
	require.Equal(t, "can not open output file", e.Message())
	require.Equal(t, base, e.Cause())
}
