// Package config loads process-level settings from the environment.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds application settings. LLM settings live in llm.Config.
type Config struct {
	LogLevel  string `envconfig:"PATHWISE_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"PATHWISE_LOG_FORMAT"` // "console" or "json"; empty picks by TTY

	// MetricsFile, when set, receives a Prometheus textfile snapshot on exit.
	MetricsFile string `envconfig:"PATHWISE_METRICS_FILE"`

	GitHubToken   string `envconfig:"GITHUB_TOKEN"`
	GitHubBaseURL string `envconfig:"PATHWISE_GITHUB_BASE_URL"`

	MarketEnabled bool          `envconfig:"PATHWISE_MARKET_FETCH" default:"true"`
	MarketURL     string        `envconfig:"PATHWISE_MARKET_URL" default:"https://remoteok.com/api"`
	MarketLimit   int           `envconfig:"PATHWISE_MARKET_LIMIT" default:"10"`
	HTTPTimeout   time.Duration `envconfig:"PATHWISE_HTTP_TIMEOUT" default:"20s"`

	// Resume objects addressed as s3://bucket/key. The endpoint override
	// targets S3-compatible stores such as R2 or MinIO.
	S3Endpoint  string `envconfig:"PATHWISE_S3_ENDPOINT"`
	S3Region    string `envconfig:"PATHWISE_S3_REGION"`
	S3AccessKey string `envconfig:"PATHWISE_S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"PATHWISE_S3_SECRET_KEY"`
}

// Load reads an optional .env file and then parses the environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.MarketLimit <= 0 {
		cfg.MarketLimit = 10
	}
	cfg.S3Region = domain.CoalesceStr(cfg.S3Region, "auto")
	return cfg, nil
}

// S3Enabled reports whether static S3 credentials were supplied.
func (c Config) S3Enabled() bool {
	return c.S3AccessKey != "" && c.S3SecretKey != ""
}

// NewLogger builds the process logger. Console output is used when
// interactive is true unless LogFormat forces JSON.
func (c Config) NewLogger(w io.Writer, interactive bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	format := strings.ToLower(c.LogFormat)
	if format == "" {
		format = "json"
		if interactive {
			format = "console"
		}
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
