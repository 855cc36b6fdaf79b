package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Limits  LimitsConfig  `yaml:"limits" envconfig:"LIMITS"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// DatasetConfig locates the two source tables.
type DatasetConfig struct {
	DayFile  string `yaml:"day_file" envconfig:"DAY_FILE"`
	HourFile string `yaml:"hour_file" envconfig:"HOUR_FILE"`
}

// LimitsConfig contains request rate limiting configuration.
type LimitsConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// configFile is the optional YAML configuration file looked up in the working
// directory. Environment variables override its values.
const configFile = "bikepulse.yml"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/bikepulse.log",
		},
		Dataset: DatasetConfig{
			DayFile:  "data/day.csv",
			HourFile: "data/hour.csv",
		},
		Limits: LimitsConfig{
			Enabled: true,
			RPS:     100,
			Burst:   50,
		},
	}
}

// Load builds the configuration in three layers: built-in defaults, the
// optional YAML file, then BIKE_* environment variables. Later layers win.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %s: %w", configFile, err)
	}

	if err := envconfig.Process("BIKE", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %q", c.Logging.Output)
	}
	if c.Dataset.DayFile == "" || c.Dataset.HourFile == "" {
		return fmt.Errorf("dataset file paths must not be empty")
	}
	if c.Limits.Enabled && c.Limits.RPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %v", c.Limits.RPS)
	}
	return nil
}

// ListenAddr returns the HTTP listen address for the configured port.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// EnsureLogDir creates the directory of the log file when file output is
// enabled.
func (c *Config) EnsureLogDir() error {
	if c.Logging.Output == "console" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Logging.FilePath), 0o755)
}
