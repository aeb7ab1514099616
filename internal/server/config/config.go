// Package config handles configuration for the server component: defaults,
// then the environment (optionally seeded from a dotenv file), then a JSON
// file, then command-line flags.
package config

import (
	"time"
)

// Config holds runtime settings for the reservation server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - EndpointAddrOps: bind address for the status/metrics HTTP endpoint.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: access token lifetime.
//   - LogLevel: debug, info, warn or error.
//   - LogJSON: emit JSON log lines instead of text.
//   - OTLPEndpoint: OTLP/HTTP collector host:port; empty disables tracing.
type Config struct {
	EndpointAddrGRPC            string
	EndpointAddrOps             string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	LogLevel                    string
	LogJSON                     bool
	OTLPEndpoint                string
}

// LoadDefaults populates Config with development defaults.
// The secret key must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrOps = ":8080"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.LogLevel = "info"
	c.LogJSON = true
	c.OTLPEndpoint = ""
}

// LoadConfig builds a Config from args (without the program name) and the
// process environment.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}
