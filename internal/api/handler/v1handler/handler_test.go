package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ytsum/internal/api/handler/v1handler"
	"ytsum/pkg/serrors"
	"ytsum/pkg/youtube"

	"github.com/stretchr/testify/require"
)

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "not found sentinel",
			err:     serrors.ErrNotFound,
			status:  404,
			code:    "NOT_FOUND",
			message: "resource not found",
		},
		{
			name:    "bad request with message",
			err:     serrors.With(serrors.ErrBadRequest, "invalid payload: missing url"),
			status:  400,
			code:    "BAD_REQUEST",
			message: "invalid payload: missing url",
		},
		{
			name:    "wrapped not found keeps message, not cause",
			err:     fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrNotFound, errors.New("x"), "no subtitles found for this video")),
			status:  404,
			code:    "NOT_FOUND",
			message: "no subtitles found for this video",
		},
		{
			name:    "rate limited",
			err:     serrors.With(serrors.ErrRateLimited, "slow down"),
			status:  429,
			code:    "RATE_LIMITED",
			message: "slow down",
		},
		{
			name:    "upstream unauthorized",
			err:     serrors.KindOnly(serrors.ErrUnauthorized),
			status:  502,
			code:    "UNAUTHORIZED",
			message: "upstream service unavailable",
		},
		{
			name:    "deadline",
			err:     fmt.Errorf("could not send request: %w", context.DeadlineExceeded),
			status:  504,
			code:    "TIMEOUT",
			message: "request timed out",
		},
		{
			name:    "internal kind hides message",
			err:     serrors.With(serrors.ErrInternal, "secret detail"),
			status:  500,
			code:    "INTERNAL",
			message: "internal error",
		},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.Equal(t, tt.message, res.Response.Message)
			require.Nil(t, res.Response.Position)
		})
	}
}

func TestNewError_ParseError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	_, err := youtube.ParseVideoID("https://vimeo.com/123")
	require.Error(t, err)

	res := h.NewError(context.Background(), fmt.Errorf("wrapped: %w", err))
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "BAD_REQUEST", res.Response.Code)
	require.NotNil(t, res.Response.Position)
	require.Equal(t, youtube.StageHostPath, res.Response.Position.Stage)
	require.Equal(t, 8, res.Response.Position.Offset)
}
