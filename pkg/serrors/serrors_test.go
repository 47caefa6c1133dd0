package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"ytsum/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection reset")

	e1 := serrors.With(serrors.ErrNotFound, "video %s not found", "dQw4w9WgXcQ")
	require.Equal(t, "video dQw4w9WgXcQ not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "no subtitles found for this video")
	require.Equal(t, "no subtitles found for this video: connection reset", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrRateLimited, base, "fetching watch page")

	require.ErrorIs(t, e, serrors.ErrRateLimited)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))

	inner := serrors.With(serrors.ErrRateLimited, "slow down")
	wrapped := fmt.Errorf("could not fetch: %w", inner)
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(wrapped))

	// outermost kind wins
	outer := serrors.Wrap(serrors.ErrNotFound, inner, "no subtitles")
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(outer))
}

func TestMessageOf(t *testing.T) {
	require.Empty(t, serrors.MessageOf(errors.New("plain")))

	err := fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrNotFound, errors.New("x"), "no subtitles"))
	require.Equal(t, "no subtitles", serrors.MessageOf(err))
}
