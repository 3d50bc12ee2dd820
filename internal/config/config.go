package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/vattr/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vattr.json"

	// DefaultPort is the default port of `vattr serve`.
	DefaultPort = 8080

	// DefaultHost is the default host of `vattr serve`.
	DefaultHost = "localhost"

	// DefaultTick is the default update interval of the live demo.
	DefaultTick = "1s"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "vattr"

	// DefaultIndent is the default pretty-print indentation.
	DefaultIndent = "  "
)

// Config represents the complete vattr.json configuration.
type Config struct {
	// Render contains HTML renderer configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Serve contains demo server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// Publish contains the default publish destination.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains HTML renderer settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit in pretty mode.
	Indent string `json:"indent,omitempty"`

	// EscapeAttributes escapes attribute values before writing them.
	EscapeAttributes bool `json:"escapeAttributes,omitempty"`
}

// ServeConfig contains demo server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Tick is how often the live demo attribute changes (e.g., "500ms").
	Tick string `json:"tick,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is an optional second prefix.
	Subsystem string `json:"subsystem,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// PublishConfig contains the default publish destination.
type PublishConfig struct {
	// Target is a file path or s3://bucket/key.
	Target string `json:"target,omitempty"`

	// Region is the AWS region for s3 targets.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint.
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Indent:           DefaultIndent,
			EscapeAttributes: true,
		},
		Serve: ServeConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Tick: DefaultTick,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from vattr.json in the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOrDefault is Load, returning the defaults when dir has no vattr.json.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Code(err) == "E100" {
		return New(), nil
	}
	return cfg, err
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No vattr.json found in " + filepath.Dir(path)).
				WithSuggestion("Create vattr.json or pass --config")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse vattr.json: " + err.Error()).
			WithSuggestion("Check that vattr.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the configuration was loaded from or saved to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Tick == "" {
		c.Serve.Tick = DefaultTick
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E102").
			WithDetail("serve.port must be between 0 and 65535")
	}

	if d, err := time.ParseDuration(c.Serve.Tick); err != nil || d <= 0 {
		return errors.New("E102").
			WithDetail("serve.tick must be a positive duration, got " + strconv.Quote(c.Serve.Tick)).
			WithSuggestion(`Use a Go duration such as "1s" or "250ms"`)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E102").
			WithDetail(`log.format must be "text" or "json", got ` + strconv.Quote(c.Log.Format))
	}

	if strings.TrimSpace(c.Render.Indent) != "" {
		return errors.New("E102").
			WithDetail("render.indent must contain only whitespace")
	}
	return nil
}

// ServeAddress returns the listen address of the demo server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// TickInterval returns Serve.Tick as a duration, DefaultTick if invalid.
func (c *Config) TickInterval() time.Duration {
	d, err := time.ParseDuration(c.Serve.Tick)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, errors.New("E102").
			WithDetail("log.level must be debug, info, warn or error, got " + strconv.Quote(c.Log.Level))
	}
	return level, nil
}
