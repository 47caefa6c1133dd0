// Package postgres implements the storage interfaces on PostgreSQL. Connections
// come from a pgx pool, queries are built with goqu and migrations are run by
// goose.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"ytsum/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const dialect = "postgres"

// Options configure the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed through as the sslmode connection parameter.
	SslMode string

	// Zero values keep the pgxpool defaults.
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		o.Host, o.Port, o.Username, o.Database, o.Password, o.SslMode))
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}

	if o.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(o.MaxOpenConnections) //nolint: gosec
	}
	if o.MaxIdleConnections > 0 {
		cfg.MinConns = int32(o.MaxIdleConnections) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

// DB is the part of database/sql that queries run on. *sql.DB and *sql.Tx
// both implement it.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the part of goqu used to build queries, bound to the same DB.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// PgSQL is either the pool-backed root handle returned by New, or a handle
// bound to one transaction returned by Begin.
type PgSQL struct {
	// DB is a *sql.DB on the root handle and a *sql.Tx inside a transaction.
	DB      DB
	Builder Builder
	// Pool is nil inside a transaction.
	Pool *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// New connects to PostgreSQL and checks the connection.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach postgres: %w", err)
	}

	// goqu and goose work on database/sql
	db := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
		Pool:    pool,
	}, nil
}

// Close releases the pool.
func (p *PgSQL) Close() error {
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

// Begin starts a transaction. It fails with storage.ErrAlreadyInTx on a
// transaction handle.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

func (p *PgSQL) Commit() error {
	return p.finish("commit", (*sql.Tx).Commit)
}

func (p *PgSQL) Rollback() error {
	return p.finish("rollback", (*sql.Tx).Rollback)
}

func (p *PgSQL) finish(op string, end func(*sql.Tx) error) error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := end(tx); err != nil {
		return fmt.Errorf("could not %s tx: %w", op, err)
	}

	return nil
}

// WithTx runs cb in a transaction, committing when cb returns nil. The
// transaction is rolled back when cb fails or panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := cb(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err //nolint: wrapcheck
	}
	committed = true

	return nil
}

// Migrate applies the goose migrations under dir in fsys that have not been
// applied yet.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, dir string) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}
