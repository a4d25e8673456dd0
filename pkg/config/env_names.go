package config

// Environment variable names referenced in validation messages.
const (
	EnvDBDSN     = "TECHSTORE_DB_DSN"
	EnvDBDriver  = "TECHSTORE_DB_DRIVER"
	EnvRedisURL  = "TECHSTORE_REDIS_URL"
	EnvRedisAddr = "TECHSTORE_REDIS_ADDR"
)
