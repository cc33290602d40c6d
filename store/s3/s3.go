// Package s3 implements the store contracts for Amazon S3.
//
// Reader and Writer borrow a caller-owned, pre-authenticated client and
// never close it. S3 errors are returned unchanged so callers keep the
// SDK's diagnostics; retries are opted into at the call site via the
// retry package.
package s3

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client is the subset of the S3 API used by this package.
// *s3.Client satisfies it; tests substitute a mock.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Reader reads whole objects from S3.
type Reader struct {
	client Client
}

// NewReader creates a Reader over client. The client stays owned by the
// caller.
func NewReader(client Client) *Reader {
	return &Reader{client: client}
}

// Read retrieves the object at key in bucket and drains its body.
func (r *Reader) Read(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		slog.Error("failed to get object", "bucket", bucket, "key", key, "error", err)
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// Writer writes whole objects to S3.
type Writer struct {
	client Client
}

// NewWriter creates a Writer over client. The client stays owned by the
// caller.
func NewWriter(client Client) *Writer {
	return &Writer{client: client}
}

// Write uploads body as the object at key in bucket.
func (w *Writer) Write(ctx context.Context, bucket, key string, body []byte) error {
	return w.write(ctx, bucket, key, body, nil)
}

// WriteTagged uploads body like Write and attaches the given object
// tags, encoded as URL query parameters per the S3 tagging API.
func (w *Writer) WriteTagged(ctx context.Context, bucket, key string, body []byte, tags map[string]string) error {
	return w.write(ctx, bucket, key, body, tags)
}

func (w *Writer) write(ctx context.Context, bucket, key string, body []byte, tags map[string]string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if len(tags) > 0 {
		values := url.Values{}
		for k, v := range tags {
			values.Set(k, v)
		}
		input.Tagging = aws.String(values.Encode())
	}

	_, err := w.client.PutObject(ctx, input)
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
func NewReadWriter(client Client) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(client),
		Writer: NewWriter(client),
	}
}
