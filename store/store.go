package store

import "context"

// Reader retrieves whole objects from a storage backend.
type Reader interface {
	// Read returns the full body of the object at key in bucket.
	// Backend errors are returned unchanged.
	Read(ctx context.Context, bucket, key string) ([]byte, error)
}

// Writer stores whole objects in a storage backend.
type Writer interface {
	// Write stores body as the object at key in bucket.
	// Backend errors are returned unchanged.
	Write(ctx context.Context, bucket, key string, body []byte) error
}

// ReadWriter combines both roles over a single backend.
type ReadWriter interface {
	Reader
	Writer
}
