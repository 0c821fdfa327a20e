package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Redis     RedisConfig     `yaml:"redis"`
	Activity  ActivityConfig  `yaml:"activity"`
	Stats     StatsConfig     `yaml:"stats"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"SERVER_REQUEST_TIMEOUT"  env-default:"15s"`
	// TrustedProxies is a comma-separated list of addresses or CIDR ranges
	// whose X-Forwarded-For and X-Real-Ip headers are honoured.
	TrustedProxies string `yaml:"trusted_proxies" env:"SERVER_TRUSTED_PROXIES"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"klickbee-crm"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig holds Redis settings. An empty Addr disables the stats cache
// and outbound notifications.
type RedisConfig struct {
	Addr          string        `yaml:"addr"           env:"REDIS_ADDR"`
	Password      string        `yaml:"password"       env:"REDIS_PASSWORD"`
	DB            int           `yaml:"db"             env:"REDIS_DB"             env-default:"0"`
	EnableTLS     bool          `yaml:"enable_tls"     env:"REDIS_ENABLE_TLS"     env-default:"false"`
	Namespace     string        `yaml:"namespace"      env:"REDIS_NAMESPACE"      env-default:"crm"`
	DialTimeout   time.Duration `yaml:"dial_timeout"   env:"REDIS_DIAL_TIMEOUT"   env-default:"3s"`
	NotifyChannel string        `yaml:"notify_channel" env:"REDIS_NOTIFY_CHANNEL" env-default:"notifications"`
}

// Enabled reports whether a Redis server is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// ActivityConfig controls how activity entries are written.
type ActivityConfig struct {
	// Transactional commits each entry with its mutation. When false, entries
	// are written after the mutation and write failures are only logged.
	Transactional bool `yaml:"transactional" env:"ACTIVITY_TRANSACTIONAL" env-default:"false"`
}

// StatsConfig holds dashboard statistics settings.
type StatsConfig struct {
	CacheTTL     time.Duration `yaml:"cache_ttl"     env:"STATS_CACHE_TTL"     env-default:"5m"`
	DefaultRange string        `yaml:"default_range" env:"STATS_DEFAULT_RANGE" env-default:"30d"`
}

// RateLimitConfig holds per-IP rate limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATELIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATELIMIT_PER_MINUTE"       env-default:"300"`
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATELIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// SplitList splits a comma-separated setting, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
