// Package footballdata is a client for the football-data.org API. Responses
// are wrapped in read-only entities (Season, Team, Fixture, Standing, Player)
// whose relation methods fetch related entities on demand. Nothing is cached:
// every relation call is one request.
package footballdata

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/football-data-client/internal/config"
	"github.com/preston-bernstein/football-data-client/internal/gateway"
	"github.com/preston-bernstein/football-data-client/internal/logging"
	"github.com/preston-bernstein/football-data-client/internal/metrics"
)

const version = "dev"

// Throttle gates outgoing calls; Wait blocks until the next call may start.
type Throttle = gateway.Throttle

// NoThrottle disables call spacing.
type NoThrottle = gateway.NoThrottle

// NewIntervalThrottle spaces calls at least interval apart. One throttle may
// be shared by several clients to pace them together.
func NewIntervalThrottle(interval time.Duration) Throttle {
	return gateway.NewIntervalThrottle(interval)
}

// MetricsConfig controls OpenTelemetry export of upstream call metrics.
type MetricsConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Config controls how a Client reaches the API.
type Config struct {
	BaseURL string // defaults to http://api.football-data.org/alpha
	// APIKey is sent as X-Auth-Token. When empty, the first line of APIKeyFile
	// is used if that file exists.
	APIKey      string
	APIKeyFile  string        // defaults to key.txt
	MinInterval time.Duration // spacing between calls, defaults to 1s
	Throttle    Throttle      // overrides MinInterval when set
	HTTPClient  *http.Client
	HTTPTimeout time.Duration // used only when HTTPClient is nil

	Logger    *slog.Logger // overrides LogLevel/LogFormat when set
	LogLevel  string
	LogFormat string

	Metrics MetricsConfig
}

// LoadConfig reads a Config from the environment (FOOTBALL_DATA_*, LOG_*,
// METRICS_ENABLED, OTEL_*).
func LoadConfig() Config {
	env := config.Load()
	cfg := Config{
		BaseURL:     env.FootballData.BaseURL,
		APIKey:      env.FootballData.APIKey,
		APIKeyFile:  env.FootballData.APIKeyFile,
		MinInterval: env.FootballData.MinInterval,
		HTTPTimeout: env.FootballData.HTTPTimeout,
		LogLevel:    env.Log.Level,
		LogFormat:   env.Log.Format,
		Metrics: MetricsConfig{
			Enabled:      env.Metrics.Enabled,
			ServiceName:  env.Metrics.ServiceName,
			OtlpEndpoint: env.Metrics.OtlpEndpoint,
			OtlpInsecure: env.Metrics.OtlpInsecure,
		},
	}
	if env.FootballData.MinInterval == 0 {
		cfg.Throttle = NoThrottle{}
	}
	return cfg
}

// Client is the entry point: Seasons, Teams and Fixtures fetch root entities;
// Standings and Players only wrap records obtained elsewhere.
type Client struct {
	Seasons   *SeasonService
	Teams     *TeamService
	Fixtures  *FixtureService
	Standings *StandingService
	Players   *PlayerService

	logger         *slog.Logger
	metrics        *metrics.Recorder
	metricsHandler http.Handler
	metricsStop    func(context.Context) error
}

// New builds a Client: it resolves the API key, sets up logging, metrics and
// the call throttle, and wires them into the HTTP gateway.
func New(cfg Config) (*Client, error) {
	keyFile := cfg.APIKeyFile
	if keyFile == "" {
		keyFile = config.DefaultAPIKeyFile
	}
	apiKey, err := config.ResolveAPIKey(cfg.APIKey, keyFile)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewLogger(logging.Config{
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Service: config.DefaultServiceName,
			Version: version,
		})
	}

	recorder, handler, stop, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return nil, err
	}

	throttle := cfg.Throttle
	if throttle == nil {
		interval := cfg.MinInterval
		if interval <= 0 {
			interval = config.DefaultMinInterval
		}
		throttle = NewIntervalThrottle(interval)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil && cfg.HTTPTimeout > 0 {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	gw := gateway.NewClient(gateway.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     apiKey,
		HTTPClient: httpClient,
		Throttle:   throttle,
		Logger:     logger,
		Metrics:    recorder,
	})

	c := newClient(gw)
	c.logger = logger
	c.metrics = recorder
	c.metricsHandler = handler
	c.metricsStop = stop

	logging.Debug(logger, "football-data client ready", "authenticated", apiKey != "")
	return c, nil
}

func newClient(gw getter) *Client {
	return &Client{
		Seasons:     &SeasonService{res: seasonResource(gw)},
		Teams:       &TeamService{res: teamResource(gw)},
		Fixtures:    &FixtureService{res: fixtureResource(gw)},
		Standings:   &StandingService{res: standingResource(gw)},
		Players:     &PlayerService{res: playerResource(gw)},
		metricsStop: func(context.Context) error { return nil },
	}
}

// MetricsHandler returns the Prometheus scrape handler, or nil when metrics
// are disabled.
func (c *Client) MetricsHandler() http.Handler {
	return c.metricsHandler
}

// Close flushes and stops metric exporters.
func (c *Client) Close(ctx context.Context) error {
	if err := c.metricsStop(ctx); err != nil {
		logging.Error(c.logger, "metrics shutdown failed", err)
		return err
	}
	return nil
}
