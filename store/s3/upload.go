package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"
)

// Uploader streams large bodies to S3 using multipart uploads, for
// payloads that should not be buffered in memory.
type Uploader struct {
	uploader *manager.Uploader
}

// NewUploader creates an Uploader over client.
func NewUploader(client manager.UploadAPIClient) *Uploader {
	return &Uploader{uploader: manager.NewUploader(client)}
}

// Upload streams body to the object at key in bucket.
func (u *Uploader) Upload(ctx context.Context, bucket, key string, body io.Reader) error {
	_, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	return err
}

// DefaultReadConcurrency bounds ReadMany when no limit is given.
const DefaultReadConcurrency = 4

// ReadMany fetches several keys from one bucket concurrently and returns
// the bodies keyed by object key. The first error cancels the remaining
// fetches and is returned unchanged.
func (r *Reader) ReadMany(ctx context.Context, bucket string, keys []string, concurrency int) (map[string][]byte, error) {
	if concurrency <= 0 {
		concurrency = DefaultReadConcurrency
	}

	bodies := make([][]byte, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, key := range keys {
		g.Go(func() error {
			body, err := r.Read(ctx, bucket, key)
			if err != nil {
				return err
			}
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(keys))
	for i, key := range keys {
		out[key] = bodies[i]
	}
	return out, nil
}
