// Package transcript defines the abstraction used to download video captions
// and the cleanup applied to them before they are stored or summarized.
package transcript

import (
	"context"
	"errors"

	"ytsum/pkg/domain"
	"ytsum/pkg/youtube"
)

// DefaultLanguage is the caption language requested when none is given.
const DefaultLanguage = "en"

// ErrNoTranscript is wrapped by fetchers when a video has no caption track
// matching the requested languages.
var ErrNoTranscript = errors.New("no transcript available")

// Fetcher downloads the transcript of a video.
//
//go:generate mockgen -package mocktranscript -source=interface.go -destination=mock/mocktranscript.go *
type Fetcher interface {
	// Fetch returns the transcript of videoID in the first available language
	// of langs. An empty langs accepts any language.
	Fetch(ctx context.Context, videoID youtube.VideoID, langs []string) (*domain.Transcript, error)
}
