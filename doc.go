// Package driutils provides shared IO utilities for environmental data
// pipelines.
//
// The heart of the module is a small reader/writer abstraction that
// normalizes three backends behind role-based contracts:
//
//   - store/s3: whole-object reads and writes against Amazon S3
//   - store/minio: the same contracts for S3-compatible endpoints
//   - query: SQL execution against an embedded DuckDB engine, locally
//     or over httpfs against object storage
//
// Callers depend on the store.Reader / store.Writer contracts rather
// than a concrete backend, so pipeline code is backend-agnostic.
// Supporting packages cover retry policies (retry), date-range helpers
// (dates), URL/string helpers (util) and a client for the metadata API
// (metadata).
//
// This layer adds no error abstraction: backend and engine errors
// propagate unchanged so their diagnostics are never masked. Recovery
// is an explicit opt-in via retry.Policy at the call site.
package driutils
