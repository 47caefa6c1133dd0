// Package transcripts implements transcript retrieval: URL parsing, the
// optional cache, the caption download with a language fallback and cleanup.
package transcripts

import (
	"context"
	"errors"
	"fmt"

	"ytsum/internal/config"
	"ytsum/pkg/domain"
	"ytsum/pkg/logger"
	"ytsum/pkg/metrics"
	"ytsum/pkg/serrors"
	"ytsum/pkg/storage"
	"ytsum/pkg/transcript"
	"ytsum/pkg/youtube"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	sourceCache   = "cache"
	sourceYouTube = "youtube"
)

// Options configure the transcript service.
type Options struct {
	// DefaultLanguage is requested when the caller does not name a language.
	DefaultLanguage string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultLanguage: cfg.Transcript.Language,
	}
}

type service struct {
	options Options
	fetcher transcript.Fetcher
	// cache is nil when caching is disabled.
	cache storage.Storage

	parses  metric.Int64Counter
	fetches metric.Int64Counter
}

// Fetch parses rawURL and returns the cleaned transcript of the video.
func (s *service) Fetch(ctx context.Context, rawURL, lang string) (*domain.Transcript, error) {
	id, err := youtube.ParseVideoID(rawURL)
	if err != nil {
		s.parses.Add(ctx, 1, metric.WithAttributes(attribute.String("result", metrics.ResultError)))

		return nil, err //nolint: wrapcheck
	}
	s.parses.Add(ctx, 1, metric.WithAttributes(attribute.String("result", metrics.ResultOK)))

	return s.FetchByID(ctx, id, lang)
}

// FetchByID looks the transcript up in the cache, then downloads it in lang,
// then in any language.
func (s *service) FetchByID(ctx context.Context, videoID youtube.VideoID, lang string) (*domain.Transcript, error) {
	if videoID.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "video ID is required")
	}
	if lang == "" {
		lang = s.options.DefaultLanguage
	}
	ctx = logger.WithFields(ctx, zap.String("videoID", videoID.String()), zap.String("lang", lang))

	if cached := s.lookup(ctx, videoID, lang); cached != nil {
		s.countFetch(ctx, sourceCache, metrics.ResultCache)

		return cached, nil
	}

	tr, err := s.fetcher.Fetch(ctx, videoID, []string{lang})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.countFetch(ctx, sourceYouTube, metrics.ResultError)

			return nil, fmt.Errorf("could not fetch transcript: %w", err)
		}

		logger.Debug(ctx, "no transcript in requested language, trying any language", zap.Error(err))
		tr, err = s.fetcher.Fetch(ctx, videoID, nil)
	}
	if err != nil {
		s.countFetch(ctx, sourceYouTube, metrics.ResultError)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("could not fetch transcript: %w", err)
		}

		return nil, serrors.Wrap(serrors.ErrNotFound, err, "no subtitles found for this video")
	}
	s.countFetch(ctx, sourceYouTube, metrics.ResultOK)

	tr.Text = transcript.Clean(tr.Text)
	if tr.Text == "" {
		return nil, serrors.Wrap(serrors.ErrNotFound, transcript.ErrNoTranscript, "no subtitles found for this video")
	}

	s.save(ctx, lang, *tr)

	return tr, nil
}

func (s *service) lookup(ctx context.Context, videoID youtube.VideoID, lang string) *domain.Transcript {
	if s.cache == nil {
		return nil
	}

	tr, err := s.cache.TranscriptByVideoID(ctx, videoID.String(), lang)
	if err != nil {
		logger.Warn(ctx, "could not read transcript cache", zap.Error(err))

		return nil
	}

	return tr
}

// save caches tr under lang. A fallback track is also cached under its own
// language, so requests for either language hit.
func (s *service) save(ctx context.Context, lang string, tr domain.Transcript) {
	if s.cache == nil {
		return
	}

	var err error
	if tr.Language == "" || tr.Language == lang {
		err = s.cache.StoreTranscript(ctx, lang, tr)
	} else {
		err = s.cache.WithTx(ctx, func(strg storage.AllStorage) error {
			if err := strg.StoreTranscript(ctx, tr.Language, tr); err != nil {
				return err //nolint: wrapcheck
			}

			return strg.StoreTranscript(ctx, lang, tr) //nolint: wrapcheck
		})
	}
	if err != nil {
		logger.Warn(ctx, "could not store transcript", zap.Error(err))
	}
}

func (s *service) countFetch(ctx context.Context, source, result string) {
	s.fetches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("result", result),
	))
}

// New creates a transcript Service. store may be nil to disable caching.
func New(fetcher transcript.Fetcher, store storage.Storage, options Options) Service {
	if options.DefaultLanguage == "" {
		options.DefaultLanguage = transcript.DefaultLanguage
	}

	return &service{
		options: options,
		fetcher: fetcher,
		cache:   store,
		parses:  metrics.Counter("ytsum.videoid.parse", "YouTube URLs parsed, by result."),
		fetches: metrics.Counter("ytsum.transcript.fetch", "Transcript lookups, by source and result."),
	}
}
