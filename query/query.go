// Package query executes SQL against an embedded DuckDB engine.
//
// FileReader queries local files in-process; S3Reader additionally
// configures the engine's httpfs extension so the same queries run
// against objects in S3-compatible storage. Both return the
// engine-native *sql.Rows handle; converting it to a tabular format is
// the caller's concern.
//
// A reader exclusively owns its connection. Close releases it and is
// not guaranteed to be idempotent; prefer the With* helpers, which
// close on every exit path.
package query

import (
	"context"
	"database/sql"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// Reader executes queries against a DuckDB engine.
type Reader interface {
	// Read executes query with positional args and returns the result
	// handle. Engine errors are returned unchanged.
	Read(ctx context.Context, query string, args ...any) (*sql.Rows, error)

	// Close releases the engine connection.
	Close() error
}

// execer is the connection surface readers run on. *sql.DB satisfies
// it; tests substitute a fake.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Close() error
}

// FileReader queries local files through an in-process DuckDB database.
// A single instance is not safe for concurrent use without external
// locking.
type FileReader struct {
	db execer
}

// NewFileReader opens a fresh in-memory DuckDB database.
func NewFileReader() (*FileReader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, err
	}
	return &FileReader{db: db}, nil
}

// Read executes query with positional args.
func (r *FileReader) Read(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Error("failed to execute query", "query", query, "error", err)
		return nil, err
	}
	return rows, nil
}

// Close releases the connection. Calling Close more than once is
// undefined; use WithFileReader when release must be guaranteed.
func (r *FileReader) Close() error {
	return r.db.Close()
}

// WithFileReader opens a FileReader, runs fn with it, and closes the
// reader on every exit path, including when fn returns an error or
// panics.
func WithFileReader(fn func(r *FileReader) error) error {
	r, err := NewFileReader()
	if err != nil {
		return err
	}
	return scoped(r, fn)
}

// WithS3Reader opens an S3Reader with cfg, runs fn with it, and closes
// the reader on every exit path.
func WithS3Reader(ctx context.Context, cfg AuthConfig, fn func(r *S3Reader) error) error {
	r, err := NewS3Reader(ctx, cfg)
	if err != nil {
		return err
	}
	return scoped(r, fn)
}

func scoped[R Reader](r R, fn func(R) error) error {
	defer r.Close()
	return fn(r)
}
