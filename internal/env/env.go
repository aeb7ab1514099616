// Package env reads typed settings from the process environment, optionally
// seeded from a dotenv file.
package env

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the given dotenv files into the environment. Variables that are
// already set are not overridden.
func Load(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func GetString(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return def
	}
	return value
}

func GetBool(key string, def bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}

// GetDuration accepts Go duration strings ("90s", "1h").
func GetDuration(key string, def time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return d
}
