package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeS3Reader() (*S3Reader, *fakeExecer) {
	fake := &fakeExecer{}
	return &S3Reader{FileReader: &FileReader{db: fake}}, fake
}

func TestAuthConfig_Validate(t *testing.T) {
	t.Run("InvalidType", func(t *testing.T) {
		_, err := NewS3Reader(context.Background(), AuthConfig{Type: "password"})
		assert.ErrorIs(t, err, ErrInvalidAuthType)
	})

	t.Run("MissingEndpoint", func(t *testing.T) {
		_, err := NewS3Reader(context.Background(), AuthConfig{Type: AuthTypeCustomEndpoint})
		assert.ErrorIs(t, err, ErrEndpointRequired)
	})
}

func TestS3Reader_ConfiguresOncePerInstance(t *testing.T) {
	configs := []AuthConfig{
		{Type: AuthTypeAuto},
		{Type: AuthTypeSTS},
		{Type: AuthTypeCustomEndpoint, EndpointURL: "http://localhost:4566"},
	}

	for _, cfg := range configs {
		t.Run(string(cfg.Type), func(t *testing.T) {
			r, fake := newFakeS3Reader()
			require.NoError(t, r.configure(context.Background(), cfg))

			configured := len(fake.execs)
			assert.NotZero(t, configured)

			// Subsequent reads reuse the configured connection without
			// touching the configuration path again.
			_, err := r.Read(context.Background(), "SELECT 1")
			require.NoError(t, err)
			_, err = r.Read(context.Background(), "SELECT 2")
			require.NoError(t, err)

			assert.Len(t, fake.execs, configured)
			assert.Len(t, fake.queries, 2)
		})
	}
}

func TestS3Reader_AutoSecret(t *testing.T) {
	r, fake := newFakeS3Reader()
	require.NoError(t, r.configure(context.Background(), AuthConfig{Type: AuthTypeAuto}))

	joined := strings.Join(fake.execs, "\n")
	assert.Contains(t, joined, "INSTALL httpfs;")
	assert.Contains(t, joined, "LOAD httpfs;")
	assert.Contains(t, joined, "SET force_download = true;")
	assert.Contains(t, joined, "SET http_keep_alive = false;")
	assert.Contains(t, joined, "INSTALL aws;")
	assert.Contains(t, joined, "PROVIDER CREDENTIAL_CHAIN")
	assert.NotContains(t, joined, "CHAIN 'sts'")
}

func TestS3Reader_STSSecret(t *testing.T) {
	r, fake := newFakeS3Reader()
	require.NoError(t, r.configure(context.Background(), AuthConfig{Type: AuthTypeSTS}))

	joined := strings.Join(fake.execs, "\n")
	assert.Contains(t, joined, "PROVIDER CREDENTIAL_CHAIN")
	assert.Contains(t, joined, "CHAIN 'sts'")
}

func TestS3Reader_CustomEndpointSecret(t *testing.T) {
	r, fake := newFakeS3Reader()
	require.NoError(t, r.configure(context.Background(), AuthConfig{
		Type:        AuthTypeCustomEndpoint,
		EndpointURL: "http://localhost:4566",
		UseSSL:      false,
	}))

	joined := strings.Join(fake.execs, "\n")
	assert.Contains(t, joined, "ENDPOINT 'localhost:4566'")
	assert.Contains(t, joined, "URL_STYLE 'path'")
	assert.Contains(t, joined, "USE_SSL 'false'")
	// No credential chain for custom endpoints.
	assert.NotContains(t, joined, "CREDENTIAL_CHAIN")
}

func TestS3Reader_Profiling(t *testing.T) {
	r, fake := newFakeS3Reader()
	require.NoError(t, r.configure(context.Background(), AuthConfig{Type: AuthTypeAuto}, WithProfiling()))

	assert.Contains(t, strings.Join(fake.execs, "\n"), "SET enable_profiling = query_tree;")
}

func TestS3Reader_ConfigureErrorPropagates(t *testing.T) {
	r, fake := newFakeS3Reader()
	fake.execErr = errors.New("Extension 'httpfs' not found")

	err := r.configure(context.Background(), AuthConfig{Type: AuthTypeAuto})
	assert.Equal(t, fake.execErr, err)
}
