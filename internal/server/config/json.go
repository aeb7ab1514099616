package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/macreserve/internal/flagx"
	"github.com/dmitrijs2005/macreserve/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept "90m" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	EndpointAddrOps             string         `json:"endpoint_addr_ops"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    string         `json:"log_level"`
	LogJSON                     *bool          `json:"log_json"`
	OTLPEndpoint                string         `json:"otlp_endpoint"`
}

// parseJson overlays values from the file named by -c or -config. Fields
// missing from the file keep their current value.
func parseJson(config *Config, args []string) error {

	jsonConfigFile := flagx.JsonConfigFlags(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.EndpointAddrOps != "" {
		config.EndpointAddrOps = c.EndpointAddrOps
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogJSON != nil {
		config.LogJSON = *c.LogJSON
	}
	if c.OTLPEndpoint != "" {
		config.OTLPEndpoint = c.OTLPEndpoint
	}

	return nil
}
