// Package retry wraps read/write invocations in a configurable retry
// policy. Backends contain no retry logic of their own; call sites opt
// in per operation by running the call through a Policy.
package retry

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
)

// WaitStrategy selects the delay pattern between attempts.
type WaitStrategy int

const (
	// WaitFixed waits the same delay before every retry.
	WaitFixed WaitStrategy = iota

	// WaitExponential doubles the delay after each failed attempt.
	WaitExponential
)

// Policy configures how a call is retried.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts uint

	// Wait selects the delay pattern. Defaults to WaitFixed.
	Wait WaitStrategy

	// Delay is the base delay between attempts.
	Delay time.Duration
}

// Do invokes fn under the policy. When every attempt fails, the last
// error surfaces to the caller unchanged.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	return retry.Do(fn, p.options(ctx)...)
}

// DoValue invokes fn under policy p and returns its value on success.
func DoValue[T any](ctx context.Context, p Policy, fn func() (T, error)) (T, error) {
	return retry.DoWithData(fn, p.options(ctx)...)
}

func (p Policy) options(ctx context.Context) []retry.Option {
	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(p.MaxAttempts),
		retry.Delay(p.Delay),
		retry.LastErrorOnly(true),
	}
	switch p.Wait {
	case WaitExponential:
		opts = append(opts, retry.DelayType(retry.BackOffDelay))
	default:
		opts = append(opts, retry.DelayType(retry.FixedDelay))
	}
	return opts
}
