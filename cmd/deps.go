package main

import (
	"context"
	"fmt"
	"net/http"

	"ytsum/internal/config"
	"ytsum/internal/summarizer"
	"ytsum/internal/transcripts"
	"ytsum/pkg/llm/anthropic"
	"ytsum/pkg/logger"
	"ytsum/pkg/storage"
	"ytsum/pkg/storage/postgres"
	"ytsum/pkg/transcript/innertube"

	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func(), error) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create postgres storage: %w", err)
	}

	return pgsql, func() {
		logger.Debug(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}, nil
}

// newTranscripts builds the transcript service, with the Postgres cache when
// it is enabled.
func newTranscripts(ctx context.Context, cfg *config.Config) (transcripts.Service, func(), error) {
	fetcher := innertube.New(&http.Client{Timeout: cfg.Transcript.Timeout}, innertube.Options{
		BaseURL:           cfg.Transcript.BaseURL,
		RequestsPerSecond: cfg.Transcript.RequestsPerSecond,
	})

	if !cfg.Database.Enabled {
		return transcripts.New(fetcher, nil, transcripts.NewOptions(cfg)), func() {}, nil
	}

	pgsql, closeStrg, err := getPostgres(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var cache storage.Storage = pgsql

	return transcripts.New(fetcher, cache, transcripts.NewOptions(cfg)), closeStrg, nil
}

// newSummarizer builds the summarizer. The model API credentials must be set.
func newSummarizer(cfg *config.Config, trs transcripts.Service) (summarizer.Service, error) {
	if err := cfg.Anthropic.Validate(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	client := anthropic.New(&http.Client{Timeout: cfg.Anthropic.Timeout}, anthropic.Options{
		BaseURL: cfg.Anthropic.BaseURL,
		Token:   cfg.Anthropic.AuthToken,
		Model:   cfg.Anthropic.Model,
	})

	return summarizer.New(client, trs, summarizer.NewOptions(cfg)), nil
}
