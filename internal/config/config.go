package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// Expose /metrics for prometheus scraping
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	Live     LiveConfig
	Carousel CarouselConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LiveConfig holds settings for the websocket session that drives the
// navbar and carousel in the browser.
type LiveConfig struct {
	// Enabled turns the /live endpoint and the client script on
	Enabled bool `env:"LIVE_ENABLED" envDefault:"true"`

	// SessionsPerSecond is the steady rate of new sessions admitted
	SessionsPerSecond float64 `env:"LIVE_SESSIONS_PER_SECOND" envDefault:"20"`

	// SessionBurst is the number of sessions admitted at once above the rate
	SessionBurst int `env:"LIVE_SESSION_BURST" envDefault:"40"`

	// ReadLimitBytes caps a single inbound message
	ReadLimitBytes int64 `env:"LIVE_READ_LIMIT_BYTES" envDefault:"65536"`

	// PingInterval is how often the server pings an idle client
	PingInterval time.Duration `env:"LIVE_PING_INTERVAL" envDefault:"30s"`

	// WriteTimeout bounds a single outbound frame
	WriteTimeout time.Duration `env:"LIVE_WRITE_TIMEOUT" envDefault:"5s"`
}

// PongWait is how long the server waits for a pong before dropping the session.
func (l *LiveConfig) PongWait() time.Duration {
	return l.PingInterval * 2
}

// CarouselConfig holds testimonial carousel settings
type CarouselConfig struct {
	// LazyMount renders placeholders until a slide nears the viewport
	LazyMount bool `env:"CAROUSEL_LAZY_MOUNT" envDefault:"true"`

	// DefaultViewportWidth is assumed for the first render when the client
	// does not send a Sec-CH-Viewport-Width hint
	DefaultViewportWidth float64 `env:"CAROUSEL_DEFAULT_VIEWPORT_WIDTH" envDefault:"1280"`
}

// Addr returns the listen address for net/http.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects durations that must be positive: tickers and deadlines
// built from them would panic or expire immediately.
func (c *Config) Validate() error {
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"LIVE_PING_INTERVAL", c.Live.PingInterval},
		{"LIVE_WRITE_TIMEOUT", c.Live.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", c.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, d.name, d.value)
		}
	}
	return nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Bool("live", cfg.Live.Enabled),
		slog.Bool("lazy_mount", cfg.Carousel.LazyMount),
	)

	return cfg, nil
}
