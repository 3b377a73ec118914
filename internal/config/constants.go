package config

import "time"

const (
	envPort            = "PORT"
	envMatchDuration   = "MATCH_DURATION"
	envContentProvider = "CONTENT_PROVIDER"
	envContentBaseURL  = "CONTENT_BASE_URL"
	envContentAPIKey   = "CONTENT_API_KEY"
	envContentTimeout  = "CONTENT_TIMEOUT"
	envContentCacheDir = "CONTENT_CACHE_DIR"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAllowedOrigins  = "ALLOWED_ORIGINS"

	defaultPort = "4000"
	// Standard Génie en Herbe half length.
	defaultMatchDuration   = 10 * time.Minute
	defaultContentProvider = "fixture"
	defaultContentTimeout  = 10 * time.Second
	defaultContentCacheDir = "data/rubrics"
	defaultMetricsPort     = "9090"
)
