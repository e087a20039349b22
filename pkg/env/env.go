package env

import "os"

// Get returns the value of the given environment variable or a fallback.
// Unset and empty variables both yield the fallback.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
