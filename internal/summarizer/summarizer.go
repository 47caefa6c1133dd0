// Package summarizer turns text and video transcripts into model-written
// summaries.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"ytsum/internal/config"
	"ytsum/internal/transcripts"
	"ytsum/pkg/domain"
	"ytsum/pkg/llm"
	"ytsum/pkg/logger"
	"ytsum/pkg/serrors"

	"go.uber.org/zap"
)

// BasePrompt precedes every text sent for summarization.
const BasePrompt = "Please provide a concise summary of the following text."

// Prompt returns BasePrompt followed by command, if any.
func Prompt(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return BasePrompt
	}

	return BasePrompt + " " + command
}

// Options configure the summarizer.
type Options struct {
	// Model is the model name sent with every request.
	Model string
	// MaxTokens limits the summary length; zero uses llm.DefaultMaxTokens.
	MaxTokens int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Model:     cfg.Anthropic.Model,
		MaxTokens: cfg.Anthropic.MaxTokens,
	}
}

type summarizer struct {
	options     Options
	client      llm.Client
	transcripts transcripts.Service
}

func (s *summarizer) Summarize(ctx context.Context, text, command string) (*domain.Summary, error) {
	return s.summarize(ctx, text, command, domain.SourceText)
}

func (s *summarizer) SummarizeVideo(ctx context.Context, rawURL, lang, command string) (*domain.Summary, error) {
	if s.transcripts == nil {
		return nil, serrors.With(serrors.ErrInternal, "transcripts are not available")
	}

	tr, err := s.transcripts.Fetch(ctx, rawURL, lang)
	if err != nil {
		return nil, fmt.Errorf("could not fetch transcript: %w", err)
	}

	return s.summarize(ctx, tr.Text, command, tr.VideoID)
}

func (s *summarizer) summarize(ctx context.Context, text, command, source string) (*domain.Summary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "no text provided to process")
	}

	req := llm.NewMessageRequest(s.options.Model).
		AddUser(Prompt(command)).
		AddUser(text)
	if s.options.MaxTokens > 0 {
		req = req.WithMaxTokens(s.options.MaxTokens)
	}

	logger.Debug(ctx, "requesting summary", zap.String("source", source), zap.Int("chars", len(text)))

	resp, err := s.client.SendMessage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not send message: %w", err)
	}

	summary, ok := resp.FirstText()
	if !ok {
		return nil, serrors.With(serrors.ErrInternal, "no summary returned from the API")
	}

	model := resp.Model
	if model == "" {
		model = req.Model
	}

	return &domain.Summary{Model: model, Text: summary, Source: source}, nil
}

// New creates a summarizer. trs may be nil when only plain text is
// summarized.
func New(client llm.Client, trs transcripts.Service, options Options) Service {
	return &summarizer{
		options:     options,
		client:      client,
		transcripts: trs,
	}
}
