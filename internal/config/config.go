// ABOUTME: Configuration loading for the jrpccheck CLI
// ABOUTME: YAML via viper, with an XDG-aware default location

package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vitiral/jrpc/internal/xdg"
)

type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Check  CheckConfig  `mapstructure:"check"`
}

type OutputConfig struct {
	// Plain disables styled terminal output.
	Plain bool `mapstructure:"plain"`
	// Verbose enables DEBUG logging.
	Verbose bool `mapstructure:"verbose"`
}

type CheckConfig struct {
	// Expect narrows classification to one side of the protocol:
	// "request", "response", or "auto".
	Expect string `mapstructure:"expect"`
	// StrictBand fails error responses whose implementation-defined
	// code lies outside the reserved -32099..-32000 band.
	StrictBand bool `mapstructure:"strict_band"`
}

// DefaultPath returns the XDG location jrpccheck looks at when no
// -config flag is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome(), "config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Check: CheckConfig{Expect: "auto"}}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(xdg.ExpandPath(path))
	v.SetConfigType("yaml")
	v.SetDefault("check.expect", "auto")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that viper cannot.
func (c *Config) Validate() error {
	switch c.Check.Expect {
	case "auto", "request", "response":
		return nil
	}
	return fmt.Errorf("invalid check.expect: %s (must be 'auto', 'request', or 'response')", c.Check.Expect)
}
