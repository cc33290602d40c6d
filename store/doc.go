// Package store defines the capability contracts for object storage.
//
// Reader and Writer are role-based interfaces: anything that can fetch
// whole objects is a Reader, anything that can store them is a Writer.
// Callers written against these contracts work with any backend.
//
// # Built-in Implementations
//
//   - s3.Reader / s3.Writer: Amazon S3 via aws-sdk-go-v2
//   - minio.Reader / minio.Writer: S3-compatible endpoints via minio-go
//
// # Custom Implementations
//
// Implement the interfaces to add a backend:
//
//	type Reader interface {
//	    Read(ctx, bucket, key) ([]byte, error)
//	}
//	type Writer interface {
//	    Write(ctx, bucket, key, body) error
//	}
//
// ZstdReader and ZstdWriter decorate any backend with transparent
// compression.
package store
