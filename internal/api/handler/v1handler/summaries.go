package v1handler

import (
	"errors"
	"fmt"
	"net/http"

	"ytsum/pkg/domain"
	"ytsum/pkg/serrors"

	"github.com/go-faster/jx"
)

const maxSummaryRequestBytes = 1 << 20

// SummaryRequest is the body of POST /v1/summaries. Exactly one of Text and
// URL is set.
type SummaryRequest struct {
	Text    string
	URL     string
	Lang    string
	Command string
}

// DecodeSummaryRequest reads a SummaryRequest object from d. Unknown fields
// are ignored and null values are treated as absent.
func DecodeSummaryRequest(d *jx.Decoder) (SummaryRequest, error) {
	var req SummaryRequest
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var target *string
		switch string(key) {
		case "text":
			target = &req.Text
		case "url":
			target = &req.URL
		case "lang":
			target = &req.Lang
		case "command":
			target = &req.Command
		default:
			return d.Skip()
		}

		if d.Next() == jx.Null {
			return d.Null()
		}
		v, err := d.Str()
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		*target = v

		return nil
	})
	if err != nil {
		return SummaryRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if req.Text != "" && req.URL != "" {
		return SummaryRequest{}, serrors.With(serrors.ErrBadRequest, "only one of text and url may be set")
	}

	return req, nil
}

// CreateSummary summarizes either the text or the video in the request body.
func (h *Handler) CreateSummary(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxSummaryRequestBytes)
	req, err := DecodeSummaryRequest(jx.Decode(body, 4096))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
		}
		h.writeError(w, r, err)

		return
	}

	var sum *domain.Summary
	if req.URL != "" {
		sum, err = h.deps.Summarizer.SummarizeVideo(r.Context(), req.URL, req.Lang, req.Command)
	} else {
		sum, err = h.deps.Summarizer.Summarize(r.Context(), req.Text, req.Command)
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("model")
		e.Str(sum.Model)
		e.FieldStart("summary")
		e.Str(sum.Text)
		e.FieldStart("source")
		e.Str(sum.Source)
		e.ObjEnd()
	})
}
