package postgres

import (
	"context"
	"fmt"

	"ytsum/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	transcriptsTable = "transcripts"
)

// StoreTranscript upserts a transcript keyed by (video_id, language).
func (p *PgSQL) StoreTranscript(ctx context.Context, language string, transcript domain.Transcript) error {
	var row PgTranscript
	row.FromDomain(language, transcript)

	_, err := p.Builder.Insert(transcriptsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("video_id, language", goqu.Record{
			"track_language": goqu.I("excluded.track_language"),
			"text":           goqu.I("excluded.text"),
			"fetched_at":     goqu.I("excluded.fetched_at"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store transcript into pg: %w", err)
	}

	return nil
}

// TranscriptByVideoID returns the cached transcript for a video and language.
// Returns nil when not found.
func (p *PgSQL) TranscriptByVideoID(ctx context.Context, videoID, language string) (*domain.Transcript, error) {
	var row PgTranscript
	found, err := p.Builder.From(transcriptsTable).
		Where(
			goqu.I("video_id").Eq(videoID),
			goqu.I("language").Eq(language),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch transcript by video id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
