package postgres

import (
	"time"

	"ytsum/pkg/domain"
)

type PgTranscript struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	VideoID       string `db:"video_id"`
	Language      string `db:"language"`
	TrackLanguage string `db:"track_language"`
	Text          string `db:"text"`

	FetchedAt time.Time `db:"fetched_at"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTranscript) ToDomain() *domain.Transcript {
	return &domain.Transcript{
		VideoID:   p.VideoID,
		Language:  p.TrackLanguage,
		Text:      p.Text,
		FetchedAt: p.FetchedAt.UTC(),
	}
}

// FromDomain fills p with t keyed under language. An empty language keys the
// row by the track language.
func (p *PgTranscript) FromDomain(language string, t domain.Transcript) {
	fetchedAt := t.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	if language == "" {
		language = t.Language
	}

	*p = PgTranscript{
		VideoID:       t.VideoID,
		Language:      language,
		TrackLanguage: t.Language,
		Text:          t.Text,
		FetchedAt:     fetchedAt.UTC(),
	}
}
