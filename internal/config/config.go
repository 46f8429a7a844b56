package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. ANAGRAM_LOG_LEVEL.
const EnvPrefix = "ANAGRAM"

// Config holds all configuration for the application
type Config struct {
	Dictionary string       `mapstructure:"dictionary"`
	Log        LogConfig    `mapstructure:"log"`
	Search     SearchConfig `mapstructure:"search"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SearchConfig holds search related configuration
type SearchConfig struct {
	// Timeout bounds a single query; zero means no limit.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("anagram", pflag.ContinueOnError)
	fs.String("config", "", "path to config file")
	fs.String("dictionary", "", "path to dictionary file, one word per line")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console, json)")
	fs.Duration("timeout", 0, "abandon a search after this long (0 disables)")
	return fs
}

// Load builds the configuration from defaults, an optional config file,
// environment variables and parsed flags, in increasing priority. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		binds := map[string]string{
			"dictionary":     "dictionary",
			"log.level":      "log-level",
			"log.format":     "log-format",
			"search.timeout": "timeout",
		}
		for key, name := range binds {
			if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
		if path, err := fs.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("search.timeout", "0s")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: negative search timeout %s", ErrInvalid, c.Search.Timeout)
	}
	return nil
}
