// Package storage defines the persistence interfaces that the application relies on.
// It abstracts the transcript cache and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"errors"

	"ytsum/pkg/domain"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
)

// TranscriptStorage caches downloaded transcripts, one row per video and
// requested language. The transcript's own Language is the language of the
// caption track, which differs from the key when a fallback track was used.
type TranscriptStorage interface {
	// StoreTranscript stores transcript under language, replacing an existing
	// row with the same video ID and language. An empty language stores it
	// under the transcript's own language.
	StoreTranscript(ctx context.Context, language string, transcript domain.Transcript) error
	// TranscriptByVideoID returns the transcript cached for videoID under
	// language, or nil when there is none.
	TranscriptByVideoID(ctx context.Context, videoID, language string) (*domain.Transcript, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	TranscriptStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and then commits on
	// success or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
