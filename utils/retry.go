package utils

import (
	"context"

	"github.com/UltimateTournament/backoff/v4"
)

// ReliableRetry runs fn with exponential backoff until it succeeds, the
// retries are exhausted, the context dies, or fn returns an error that
// reports itself permanent (see PermError).
func ReliableRetry(ctx context.Context, maxRetries uint64, fn func(ctx context.Context) error) error {
	return backoff.Retry(func() error {
		return fn(ctx)
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx))
}
