package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/logging"
)

const cacheFileName = "rubrics.json"

// FSCache persists the last good rubric fetch so a match can run when the
// remote store is unreachable. It caches content only, never game state.
type FSCache struct {
	basePath string
}

// NewFSCache constructs a cache rooted at basePath.
func NewFSCache(basePath string) *FSCache {
	return &FSCache{basePath: basePath}
}

// Write persists rubrics atomically (temp file + rename).
func (c *FSCache) Write(rubrics []domain.Rubric) error {
	if c == nil || c.basePath == "" {
		return errors.New("content cache not configured")
	}
	if err := os.MkdirAll(c.basePath, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(rubrics)
	if err != nil {
		return err
	}

	path := filepath.Join(c.basePath, cacheFileName)
	tmp, err := os.CreateTemp(c.basePath, cacheFileName+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Read loads the cached rubrics, if any.
func (c *FSCache) Read() ([]domain.Rubric, error) {
	if c == nil || c.basePath == "" {
		return nil, errors.New("content cache not configured")
	}
	f, err := os.Open(filepath.Join(c.basePath, cacheFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rubrics []domain.Rubric
	if err := json.NewDecoder(f).Decode(&rubrics); err != nil {
		return nil, err
	}
	return rubrics, nil
}

// cachingProvider serves the fs cache when the inner provider fails, and
// refreshes the cache on every success.
type cachingProvider struct {
	inner  Provider
	cache  *FSCache
	logger *slog.Logger
}

// NewCachingProvider wraps a provider with a filesystem fallback cache.
func NewCachingProvider(inner Provider, cache *FSCache, logger *slog.Logger) Provider {
	return &cachingProvider{inner: inner, cache: cache, logger: logger}
}

func (p *cachingProvider) FetchRubrics(ctx context.Context) ([]domain.Rubric, error) {
	rubrics, err := p.inner.FetchRubrics(ctx)
	if err == nil {
		if writeErr := p.cache.Write(rubrics); writeErr != nil {
			logging.Warn(p.logger, "content cache write failed", "err", writeErr)
		}
		return rubrics, nil
	}

	cached, readErr := p.cache.Read()
	if readErr != nil {
		return nil, fmt.Errorf("content: fetch failed and cache empty: %w", err)
	}
	logging.Warn(p.logger, "serving cached rubrics", logging.FieldCount, len(cached), "err", err)
	return cached, nil
}
