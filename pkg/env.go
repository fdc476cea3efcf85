package pkg

import (
	"log"
	"os"
	"time"
)

// GetenvDefault returns the value of key, or def when it is unset or empty.
func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DurationFromEnv parses key with time.ParseDuration. Unset, invalid and
// non-positive values fall back to def.
func DurationFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[cep][config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
