package v1handler

import (
	"net/http"
	"time"

	"ytsum/pkg/metrics"
	"ytsum/pkg/serrors"
	"ytsum/pkg/youtube"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// VideoID extracts the identifier from the url query parameter.
func (h *Handler) VideoID(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "url query parameter is required"))

		return
	}

	id, err := youtube.ParseVideoID(raw)
	if err != nil {
		h.parses.Add(r.Context(), 1, metric.WithAttributes(attribute.String("result", metrics.ResultError)))
		h.writeError(w, r, err)

		return
	}
	h.parses.Add(r.Context(), 1, metric.WithAttributes(attribute.String("result", metrics.ResultOK)))

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(id.String())
		e.ObjEnd()
	})
}

// pathVideoID validates a bare identifier taken from the request path.
func pathVideoID(raw string) (youtube.VideoID, error) {
	id, err := youtube.ParseVideoID("https://youtu.be/" + raw)
	if err != nil || id.String() != raw {
		return youtube.VideoID{}, serrors.With(serrors.ErrBadRequest, "invalid video ID %q", raw)
	}

	return id, nil
}

// Transcript returns the cleaned transcript of the video in the path.
func (h *Handler) Transcript(w http.ResponseWriter, r *http.Request) {
	id, err := pathVideoID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	tr, err := h.deps.Transcripts.FetchByID(r.Context(), id, r.URL.Query().Get("lang"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("videoId")
		e.Str(tr.VideoID)
		e.FieldStart("language")
		e.Str(tr.Language)
		e.FieldStart("text")
		e.Str(tr.Text)
		if !tr.FetchedAt.IsZero() {
			e.FieldStart("fetchedAt")
			e.Str(tr.FetchedAt.UTC().Format(time.RFC3339))
		}
		e.ObjEnd()
	})
}
