package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fdri-data/driutils/util"
)

// AuthType selects how the engine obtains object-store credentials.
// The mode is fixed at construction and applied exactly once, before
// the first query.
type AuthType string

const (
	// AuthTypeAuto loads credentials from the ambient environment via
	// the engine's credential chain.
	AuthTypeAuto AuthType = "auto"

	// AuthTypeSTS assumes a role and loads the resulting temporary
	// credentials.
	AuthTypeSTS AuthType = "sts"

	// AuthTypeCustomEndpoint targets a caller-supplied endpoint with
	// path-style URLs. Known limitation: this mode assumes the endpoint
	// requires no credentials.
	AuthTypeCustomEndpoint AuthType = "custom_endpoint"
)

var (
	// ErrInvalidAuthType is returned for an unrecognized AuthType.
	ErrInvalidAuthType = errors.New("invalid auth type, must be one of [auto, sts, custom_endpoint]")

	// ErrEndpointRequired is returned when custom_endpoint auth is
	// selected without an endpoint URL.
	ErrEndpointRequired = errors.New("endpoint URL must be provided for custom_endpoint auth")
)

// AuthConfig carries the authentication mode and its mode-specific
// fields. EndpointURL and UseSSL apply to AuthTypeCustomEndpoint only.
type AuthConfig struct {
	Type        AuthType
	EndpointURL string
	UseSSL      bool
}

func (c AuthConfig) validate() error {
	switch c.Type {
	case AuthTypeAuto, AuthTypeSTS:
		return nil
	case AuthTypeCustomEndpoint:
		if c.EndpointURL == "" {
			return ErrEndpointRequired
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAuthType, c.Type)
	}
}

// S3ReaderOption customizes an S3Reader.
type S3ReaderOption func(*s3ReaderOptions)

type s3ReaderOptions struct {
	profiling bool
}

// WithProfiling enables the engine's per-query profiling output.
func WithProfiling() S3ReaderOption {
	return func(o *s3ReaderOptions) {
		o.profiling = true
	}
}

// S3Reader executes queries against objects in S3-compatible storage.
// The httpfs extension is configured once, at construction, after which
// the read path is identical to FileReader's.
type S3Reader struct {
	*FileReader
}

// NewS3Reader opens a DuckDB database and configures its object-store
// access using cfg. Invalid configuration fails here, before any query
// can execute. Engine errors during configuration are returned
// unchanged and the connection is released.
func NewS3Reader(ctx context.Context, cfg AuthConfig, opts ...S3ReaderOption) (*S3Reader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	base, err := NewFileReader()
	if err != nil {
		return nil, err
	}

	r := &S3Reader{FileReader: base}
	if err := r.configure(ctx, cfg, opts...); err != nil {
		_ = base.Close()
		return nil, err
	}
	return r, nil
}

func (r *S3Reader) configure(ctx context.Context, cfg AuthConfig, opts ...S3ReaderOption) error {
	var options s3ReaderOptions
	for _, opt := range opts {
		opt(&options)
	}

	statements := []string{
		"INSTALL httpfs;",
		"LOAD httpfs;",
		"SET force_download = true;",
		"SET http_keep_alive = false;",
	}

	switch cfg.Type {
	case AuthTypeAuto:
		statements = append(statements,
			"INSTALL aws;",
			"LOAD aws;",
			`CREATE SECRET aws_secret (
				TYPE S3,
				PROVIDER CREDENTIAL_CHAIN
			);`,
		)
	case AuthTypeSTS:
		statements = append(statements,
			"INSTALL aws;",
			"LOAD aws;",
			`CREATE SECRET aws_secret (
				TYPE S3,
				PROVIDER CREDENTIAL_CHAIN,
				CHAIN 'sts'
			);`,
		)
	case AuthTypeCustomEndpoint:
		statements = append(statements, fmt.Sprintf(`CREATE SECRET aws_secret (
				TYPE S3,
				ENDPOINT '%s',
				URL_STYLE 'path',
				USE_SSL '%t'
			);`, util.RemoveProtocolFromURL(cfg.EndpointURL), cfg.UseSSL),
		)
	}

	if options.profiling {
		statements = append(statements, "SET enable_profiling = query_tree;")
	}

	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	slog.Info("configured object-store access", "auth_type", cfg.Type)
	return nil
}
