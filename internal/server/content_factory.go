package server

import (
	"log/slog"

	"genie-scoreboard-service/internal/config"
	"genie-scoreboard-service/internal/content"
	"genie-scoreboard-service/internal/metrics"
)

const (
	providerFixture = "fixture"
	providerRemote  = "remote"
)

// buildContentProvider assembles the rubric source with its decorators.
// Remote providers get retries and a filesystem fallback cache; the fixture
// provider needs neither.
func buildContentProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) content.Provider {
	switch cfg.Content.Provider {
	case providerRemote:
		var provider content.Provider = content.NewClient(content.Config{
			BaseURL: cfg.Content.BaseURL,
			APIKey:  cfg.Content.APIKey,
			Timeout: cfg.Content.Timeout,
		})
		provider = content.NewRetryingProvider(provider, logger, 0, 0)
		if cfg.Content.CacheDir != "" {
			provider = content.NewCachingProvider(provider, content.NewFSCache(cfg.Content.CacheDir), logger)
		}
		return content.NewRecordingProvider(provider, providerRemote, logger, recorder)
	default:
		return content.NewRecordingProvider(content.NewFixtureProvider(), providerFixture, logger, recorder)
	}
}
