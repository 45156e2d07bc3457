package config

import "time"

const (
	envBaseURL      = "FOOTBALL_DATA_BASE_URL"
	envAPIKey       = "FOOTBALL_DATA_API_KEY"
	envAPIKeyFile   = "FOOTBALL_DATA_KEY_FILE"
	envMinInterval  = "FOOTBALL_DATA_MIN_INTERVAL"
	envHTTPTimeout  = "FOOTBALL_DATA_HTTP_TIMEOUT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	DefaultBaseURL    = "http://api.football-data.org/alpha"
	DefaultAPIKeyFile = "key.txt"
	// The free tier rejects bursts; one call per second keeps us under quota.
	DefaultMinInterval = time.Second
	DefaultHTTPTimeout = 10 * time.Second
	DefaultServiceName = "football-data-client"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)
