// Package v1handler implements the v1 HTTP API on top of the transcript and
// summarizer services.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"ytsum/internal/summarizer"
	"ytsum/internal/transcripts"
	"ytsum/pkg/logger"
	"ytsum/pkg/metrics"
	"ytsum/pkg/serrors"
	"ytsum/pkg/youtube"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Deps are the services the handlers call.
type Deps struct {
	Transcripts transcripts.Service
	Summarizer  summarizer.Service
}

type Handler struct {
	deps   Deps
	parses metric.Int64Counter
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:   deps,
		parses: metrics.Counter("ytsum.videoid.parse", "YouTube URLs parsed, by result."),
	}
}

// Register adds the v1 routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/videos/id", h.VideoID)
	mux.HandleFunc("GET /v1/videos/{id}/transcript", h.Transcript)
	mux.HandleFunc("POST /v1/summaries", h.CreateSummary)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string
	Message string
	// Position is set for URL parse failures.
	Position *youtube.ParseError
}

// ErrorStatus pairs an ErrorResponse with its HTTP status.
type ErrorStatus struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError converts err into the status and body sent to the client.
// Messages of internal errors are not exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatus {
	var pe *youtube.ParseError
	if errors.As(err, &pe) {
		return &ErrorStatus{
			StatusCode: http.StatusBadRequest,
			Response: ErrorResponse{
				Code:     serrors.ErrBadRequest.Error(),
				Message:  pe.Error(),
				Position: pe,
			},
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newErrorStatus(http.StatusGatewayTimeout, serrors.ErrTimeout, "request timed out")
	}

	kind := serrors.KindOf(err)
	msg := serrors.MessageOf(err)
	switch kind {
	case serrors.ErrBadRequest:
		return newErrorStatus(http.StatusBadRequest, kind, or(msg, "bad request"))
	case serrors.ErrNotFound:
		return newErrorStatus(http.StatusNotFound, kind, or(msg, "resource not found"))
	case serrors.ErrRateLimited:
		return newErrorStatus(http.StatusTooManyRequests, kind, or(msg, "rate limited"))
	case serrors.ErrTimeout:
		return newErrorStatus(http.StatusGatewayTimeout, kind, or(msg, "request timed out"))
	case serrors.ErrUnauthorized, serrors.ErrUnavailable:
		// upstream credentials and outages are not the caller's fault
		logger.Warn(ctx, "upstream error", zap.Error(err))

		return newErrorStatus(http.StatusBadGateway, kind, or(msg, "upstream service unavailable"))
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return newErrorStatus(http.StatusInternalServerError, serrors.ErrInternal, "internal error")
}

func newErrorStatus(status int, kind serrors.Kind, msg string) *ErrorStatus {
	return &ErrorStatus{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := h.NewError(r.Context(), err)

	writeJSON(w, status.StatusCode, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(status.Response.Code)
		e.FieldStart("message")
		e.Str(status.Response.Message)
		if p := status.Response.Position; p != nil {
			e.FieldStart("stage")
			e.Str(p.Stage.String())
			e.FieldStart("offset")
			e.Int(p.Offset)
		}
		e.ObjEnd()
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
