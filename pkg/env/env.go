// Package env reads process environment variables that sit outside the
// envconfig-managed TECHSTORE_* namespace, such as LOG_FORMAT.
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or empty.
// Empty counts as unset so `LOG_FORMAT=` keeps the default.
func Get(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
