package store

import (
	"context"

	"github.com/klauspost/compress/zstd"
)

// ZstdWriter decorates a Writer with transparent zstd compression.
// Bodies are compressed before they reach the wrapped backend.
type ZstdWriter struct {
	next Writer
	enc  *zstd.Encoder
}

// NewZstdWriter wraps next with zstd compression.
func NewZstdWriter(next Writer) (*ZstdWriter, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	return &ZstdWriter{next: next, enc: enc}, nil
}

func (w *ZstdWriter) Write(ctx context.Context, bucket, key string, body []byte) error {
	return w.next.Write(ctx, bucket, key, w.enc.EncodeAll(body, nil))
}

// ZstdReader decorates a Reader with transparent zstd decompression.
// It expects objects written through a ZstdWriter.
type ZstdReader struct {
	next Reader
	dec  *zstd.Decoder
}

// NewZstdReader wraps next with zstd decompression.
func NewZstdReader(next Reader) (*ZstdReader, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &ZstdReader{next: next, dec: dec}, nil
}

func (r *ZstdReader) Read(ctx context.Context, bucket, key string) ([]byte, error) {
	body, err := r.next.Read(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	return r.dec.DecodeAll(body, nil)
}
