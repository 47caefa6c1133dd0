package transcripts

import (
	"context"

	"ytsum/pkg/domain"
	"ytsum/pkg/youtube"
)

//go:generate mockgen -package mocktranscripts -source=interface.go -destination=mock/mocktranscripts.go *
type Service interface {
	// Fetch parses rawURL and returns the cleaned transcript of the video.
	Fetch(ctx context.Context, rawURL, lang string) (*domain.Transcript, error)
	// FetchByID returns the cleaned transcript of an already parsed video.
	FetchByID(ctx context.Context, videoID youtube.VideoID, lang string) (*domain.Transcript, error)
}
