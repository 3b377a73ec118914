package content

import (
	"context"
	"log/slog"
	"time"

	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/logging"
	"genie-scoreboard-service/internal/metrics"
)

// recordingProvider instruments fetches with metrics and logging.
type recordingProvider struct {
	inner   Provider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewRecordingProvider wraps a provider with call metrics and logging.
func NewRecordingProvider(inner Provider, name string, logger *slog.Logger, recorder *metrics.Recorder) Provider {
	return &recordingProvider{inner: inner, name: name, logger: logger, metrics: recorder}
}

func (p *recordingProvider) FetchRubrics(ctx context.Context) ([]domain.Rubric, error) {
	start := time.Now()
	rubrics, err := p.inner.FetchRubrics(ctx)
	elapsed := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordContentFetch(p.name, elapsed, err)
	}

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Error(logger, "content fetch failed", err,
			"provider", p.name,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return nil, err
	}
	logging.Info(logger, "content fetched",
		"provider", p.name,
		logging.FieldCount, len(rubrics),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return rubrics, nil
}
