// Package config loads runtime configuration for the reservation CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the reservation gRPC server
//	-i int      online status check interval (seconds)
//	-m string   local (in-process ledger) or remote (gRPC server)
//	-l string   log level
//
// # JSON schema
//
// Intervals are strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "mode": "remote",
//	  "log_level": "warn"
//	}
package config
