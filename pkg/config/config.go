package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every TechStore environment variable.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// DB drivers supported by the repository layer.
const (
	DBDriverMemory   = "memory"
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// KV backends supported by the persistence port.
const (
	KVBackendMemory = "memory"
	KVBackendRedis  = "redis"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	KV       KVConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Password PasswordConfig
	Cart     CartConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TECHSTORE_APP_ENV" default:"dev"`
	Port         string `envconfig:"TECHSTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TECHSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TECHSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"TECHSTORE_DB_DRIVER" default:"memory"`
	DSN    string `envconfig:"TECHSTORE_DB_DSN"`

	MaxOpenConns    int           `envconfig:"TECHSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TECHSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TECHSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TECHSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"TECHSTORE_DB_AUTO_MIGRATE" default:"true"`
}

type KVConfig struct {
	Backend string `envconfig:"TECHSTORE_KV_BACKEND" default:"memory"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TECHSTORE_REDIS_URL"`
	Address      string        `envconfig:"TECHSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"TECHSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"TECHSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TECHSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TECHSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TECHSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TECHSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TECHSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TECHSTORE_JWT_SECRET" default:"techstore-dev-secret"`
	Issuer            string `envconfig:"TECHSTORE_JWT_ISSUER" default:"techstore"`
	ExpirationMinutes int    `envconfig:"TECHSTORE_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"TECHSTORE_SESSION_TTL_MINUTES" default:"1440"`
}

// SessionTTL returns the session lifetime configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"TECHSTORE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"TECHSTORE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"TECHSTORE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"TECHSTORE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"TECHSTORE_ARGON_KEY_LEN" default:"32"`
}

type CartConfig struct {
	// Orders at or above the threshold ship free; everything below pays the
	// flat fee. Values are whole currency units (MXN).
	FreeShippingThreshold int `envconfig:"TECHSTORE_CART_FREE_SHIPPING_THRESHOLD" default:"1000"`
	ShippingFee           int `envconfig:"TECHSTORE_CART_SHIPPING_FEE" default:"99"`
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DBDriverMemory:
	case DBDriverSQLite, DBDriverPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("%s is required when TECHSTORE_DB_DRIVER=%s", EnvDBDSN, c.DB.Driver)
		}
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}

	switch c.KV.Backend {
	case KVBackendMemory:
	case KVBackendRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("%s or %s is required when TECHSTORE_KV_BACKEND=redis", EnvRedisURL, EnvRedisAddr)
		}
	default:
		return fmt.Errorf("unsupported kv backend %q", c.KV.Backend)
	}

	if c.Cart.FreeShippingThreshold < 0 || c.Cart.ShippingFee < 0 {
		return fmt.Errorf("cart shipping settings must be non-negative")
	}
	return nil
}
