package summarizer

import (
	"context"

	"ytsum/pkg/domain"
)

//go:generate mockgen -package mocksummarizer -source=interface.go -destination=mock/mocksummarizer.go *
type Service interface {
	// Summarize asks the model for a concise summary of text. A non-empty
	// command is appended to the prompt as an extra instruction.
	Summarize(ctx context.Context, text, command string) (*domain.Summary, error)
	// SummarizeVideo summarizes the transcript of the video at rawURL.
	SummarizeVideo(ctx context.Context, rawURL, lang, command string) (*domain.Summary, error)
}
