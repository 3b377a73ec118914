package content

import (
	"context"
	"log/slog"
	"time"

	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a Provider with retry/backoff behavior.
type retryingProvider struct {
	inner       Provider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner Provider, logger *slog.Logger, maxAttempts int, backoff time.Duration) Provider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchRubrics(ctx context.Context) ([]domain.Rubric, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		rubrics, err := r.inner.FetchRubrics(ctx)
		if err == nil {
			return rubrics, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(logging.FromContext(ctx, r.logger), "content fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	logging.Warn(logging.FromContext(ctx, r.logger), "content fetch failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}
