package config

import (
	"fmt"
	"time"
)

// Mode selects where the CLI keeps its reservations.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// Config holds runtime settings for the reservation CLI.
//
// OnlineCheckInterval only matters in remote mode.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	Mode                Mode
	LogLevel            string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.Mode = ModeLocal
	c.LogLevel = "warn"
}

func (c *Config) validate() error {
	if c.Mode != ModeLocal && c.Mode != ModeRemote {
		return fmt.Errorf("mode %q: expected %s or %s", c.Mode, ModeLocal, ModeRemote)
	}
	if c.Mode == ModeRemote && c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	return nil
}

// LoadConfig constructs a Config from args (without the program name):
// defaults, then JSON, then flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
