package config

import "time"

// FootballDataConfig controls how we talk to the football-data API.
type FootballDataConfig struct {
	BaseURL     string
	APIKey      string
	APIKeyFile  string
	MinInterval time.Duration // zero disables throttling
	HTTPTimeout time.Duration
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL:     envOrDefault(envBaseURL, DefaultBaseURL),
		APIKey:      envOrDefault(envAPIKey, ""),
		APIKeyFile:  envOrDefault(envAPIKeyFile, DefaultAPIKeyFile),
		MinInterval: durationEnvOrDefault(envMinInterval, DefaultMinInterval),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, DefaultHTTPTimeout),
	}
}
