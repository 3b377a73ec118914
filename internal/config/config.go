package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	MatchDuration  Duration
	AllowedOrigins []string
	Content        ContentConfig
	Metrics        MetricsConfig
}

// ContentConfig controls how rubric content is fetched.
type ContentConfig struct {
	Provider string // fixture|remote
	BaseURL  string
	APIKey   string
	Timeout  Duration
	CacheDir string
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		MatchDuration:  durationEnvOrDefault(envMatchDuration, defaultMatchDuration),
		AllowedOrigins: splitOrigins(envOrDefault(envAllowedOrigins, "*")),
		Content:        loadContent(),
		Metrics:        loadMetrics(),
	}
}

func loadContent() ContentConfig {
	return ContentConfig{
		Provider: envOrDefault(envContentProvider, defaultContentProvider),
		BaseURL:  envOrDefault(envContentBaseURL, ""),
		APIKey:   envOrDefault(envContentAPIKey, ""),
		Timeout:  durationEnvOrDefault(envContentTimeout, defaultContentTimeout),
		CacheDir: envOrDefault(envContentCacheDir, defaultContentCacheDir),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "genie-scoreboard-service"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
