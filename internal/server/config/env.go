package config

import (
	"fmt"

	"github.com/dmitrijs2005/macreserve/internal/env"
	"github.com/dmitrijs2005/macreserve/internal/flagx"
)

const (
	EnvGRPCAddr      = "MACRESERVE_GRPC_ADDR"
	EnvOpsAddr       = "MACRESERVE_OPS_ADDR"
	EnvSecretKey     = "MACRESERVE_SECRET_KEY"
	EnvTokenValidity = "MACRESERVE_TOKEN_VALIDITY"
	EnvLogLevel      = "MACRESERVE_LOG_LEVEL"
	EnvLogJSON       = "MACRESERVE_LOG_JSON"
	EnvOTLPEndpoint  = "MACRESERVE_OTLP_ENDPOINT"
)

// parseEnv loads the dotenv file given with -env, if any, and overlays the
// MACRESERVE_* variables. Unset variables keep the current value.
func parseEnv(config *Config, args []string) error {
	if path := flagx.EnvFileFlags(args); path != "" {
		if err := env.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	config.EndpointAddrGRPC = env.GetString(EnvGRPCAddr, config.EndpointAddrGRPC)
	config.EndpointAddrOps = env.GetString(EnvOpsAddr, config.EndpointAddrOps)
	config.SecretKey = env.GetString(EnvSecretKey, config.SecretKey)
	config.AccessTokenValidityDuration = env.GetDuration(EnvTokenValidity, config.AccessTokenValidityDuration)
	config.LogLevel = env.GetString(EnvLogLevel, config.LogLevel)
	config.LogJSON = env.GetBool(EnvLogJSON, config.LogJSON)
	config.OTLPEndpoint = env.GetString(EnvOTLPEndpoint, config.OTLPEndpoint)

	return nil
}
