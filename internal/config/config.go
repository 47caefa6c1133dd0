// Package config loads ytsum configuration from an optional YAML file, the
// environment and, for the model API credentials, a Claude settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"ytsum/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

// SettingsFileEnv names the environment variable that overrides the settings
// file location.
const SettingsFileEnv = "SETTINGS_FILE"

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	Log struct {
		// Level overrides the environment's default log level.
		Level string `env:"LOG_LEVEL" env-default:"info" yaml:"level"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"3m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins; "*" allows any.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database configures the optional transcript cache.
	Database struct {
		// Enabled turns the Postgres transcript cache on.
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"ytsum" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Transcript configures caption downloads.
	Transcript struct {
		BaseURL           string        `env:"TRANSCRIPT_BASE_URL" env-default:"https://www.youtube.com" yaml:"baseURL"`
		Timeout           time.Duration `env:"TRANSCRIPT_TIMEOUT" env-default:"30s" yaml:"timeout"`
		Language          string        `env:"TRANSCRIPT_LANGUAGE" env-default:"en" yaml:"language"`
		RequestsPerSecond float64       `env:"TRANSCRIPT_REQUESTS_PER_SECOND" env-default:"2" yaml:"requestsPerSecond"`
	} `yaml:"transcript"`

	// Anthropic is resolved from the environment, then the settings file,
	// then defaults. It is never read from the YAML file.
	Anthropic Anthropic `yaml:"-"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Anthropic holds the model API settings. The JSON names match the keys of
// the "env" object in a Claude settings file.
type Anthropic struct {
	AuthToken string `env:"ANTHROPIC_AUTH_TOKEN" json:"ANTHROPIC_AUTH_TOKEN"`
	BaseURL   string `env:"ANTHROPIC_BASE_URL" env-default:"https://api.anthropic.com" json:"ANTHROPIC_BASE_URL"`
	Model     string `env:"ANTHROPIC_DEFAULT_SONNET_MODEL" env-default:"claude-sonnet-4-5" json:"ANTHROPIC_DEFAULT_SONNET_MODEL"` //nolint: lll
	MaxTokens int    `env:"ANTHROPIC_MAX_TOKENS" env-default:"1024" json:"-"`
	// Timeout bounds a single API call.
	Timeout time.Duration `env:"ANTHROPIC_TIMEOUT" env-default:"2m" json:"-"`
}

// Validate reports whether the model API can be called.
func (a Anthropic) Validate() error {
	if a.AuthToken == "" {
		return serrors.With(serrors.ErrBadRequest,
			"ANTHROPIC_AUTH_TOKEN not found in the environment or the settings file")
	}

	return nil
}

type settingsFile struct {
	Env Anthropic `json:"env"`
}

// DefaultSettingsPath returns $SETTINGS_FILE, or ~/.claude/settings.json.
func DefaultSettingsPath() string {
	if p := os.Getenv(SettingsFileEnv); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".claude", "settings.json")
}

// Load reads the YAML file at configPath and the settings file at
// settingsPath (DefaultSettingsPath when empty). Missing files are skipped.
func Load(configPath, settingsPath string) (*Config, error) {
	var cfg Config
	if err := read(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if settingsPath == "" {
		settingsPath = DefaultSettingsPath()
	}

	var settings settingsFile
	if err := read(settingsPath, &settings); err != nil {
		return nil, fmt.Errorf("could not read settings: %w", err)
	}
	cfg.Anthropic = settings.Env

	return &cfg, nil
}

// read fills target from path when it exists, with environment variables
// taking precedence, or from the environment and defaults otherwise.
func read(path string, target any) error {
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return cleanenv.ReadConfig(path, target) //nolint: wrapcheck
		case !errors.Is(err, fs.ErrNotExist):
			return err //nolint: wrapcheck
		}
	}

	return cleanenv.ReadEnv(target) //nolint: wrapcheck
}
