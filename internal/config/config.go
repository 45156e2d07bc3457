package config

// Config holds runtime configuration for the football-data client.
type Config struct {
	FootballData FootballDataConfig
	Log          LogConfig
	Metrics      MetricsConfig
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		FootballData: loadFootballData(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}
