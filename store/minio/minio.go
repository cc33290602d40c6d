// Package minio implements the store contracts for MinIO and other
// S3-compatible endpoints, useful against localstack or on-prem object
// stores where the AWS SDK's endpoint handling gets in the way.
package minio

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
)

// Reader reads whole objects from an S3-compatible endpoint.
// The client is borrowed from the caller and never closed here.
type Reader struct {
	client *minio.Client
}

// NewReader creates a Reader over client.
func NewReader(client *minio.Client) *Reader {
	return &Reader{client: client}
}

// Read retrieves the object at key in bucket and drains its body.
func (r *Reader) Read(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := r.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		slog.Error("failed to get object", "bucket", bucket, "key", key, "error", err)
		return nil, err
	}
	return body, nil
}

// Writer writes whole objects to an S3-compatible endpoint.
type Writer struct {
	client *minio.Client
}

// NewWriter creates a Writer over client.
func NewWriter(client *minio.Client) *Writer {
	return &Writer{client: client}
}

// Write uploads body as the object at key in bucket.
func (w *Writer) Write(ctx context.Context, bucket, key string, body []byte) error {
	_, err := w.client.PutObject(ctx, bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{})
	if err != nil {
		slog.Error("failed to put object", "bucket", bucket, "key", key, "error", err)
	}
	return err
}

// ReadWriter reads and writes objects over one shared client.
type ReadWriter struct {
	*Reader
	*Writer
}

// NewReadWriter creates a ReadWriter over client.
func NewReadWriter(client *minio.Client) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(client),
		Writer: NewWriter(client),
	}
}
