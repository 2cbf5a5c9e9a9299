package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
	Burst    int
}

type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	// TrustProxyHeaders takes the client address from X-Forwarded-For /
	// X-Real-IP. Only enable it behind a proxy that sets those headers.
	TrustProxyHeaders bool
	DB                DBConfig
	Redis             RedisConfig
	RateLimit         RateLimitConfig
}

// Load reads the given env files (".env" when none is given) into the
// process environment and builds the configuration from it. Missing env
// files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:      v.GetString("APP_PORT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		DB: DBConfig{
			Driver:   strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_DATABASE"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	switch cfg.DB.Driver {
	case DriverMySQL:
	case DriverPostgres, "pgx":
		cfg.DB.Driver = DriverPostgres
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	if cfg.DB.Port == "" {
		cfg.DB.Port = defaultPort(cfg.DB.Driver)
	}

	var err error
	ints := []struct {
		key string
		dst *int
	}{
		{"DB_MAX_OPEN_CONNS", &cfg.DB.MaxOpenConns},
		{"DB_MAX_IDLE_CONNS", &cfg.DB.MaxIdleConns},
		{"REDIS_DB", &cfg.Redis.DB},
		{"RATE_LIMIT_REQUESTS", &cfg.RateLimit.Requests},
		{"RATE_LIMIT_BURST", &cfg.RateLimit.Burst},
	}
	for _, i := range ints {
		if *i.dst, err = parseInt(v, i.key); err != nil {
			return nil, err
		}
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"DB_CONN_MAX_LIFETIME", &cfg.DB.ConnMaxLifetime},
		{"DB_QUERY_TIMEOUT", &cfg.DB.QueryTimeout},
		{"RATE_LIMIT_WINDOW", &cfg.RateLimit.Window},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if *d.dst, err = parseDuration(v, d.key); err != nil {
			return nil, err
		}
	}

	if cfg.RateLimit.Enabled, err = parseBool(v, "RATE_LIMIT_ENABLED"); err != nil {
		return nil, err
	}
	if cfg.TrustProxyHeaders, err = parseBool(v, "TRUST_PROXY_HEADERS"); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Enabled && (cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0) {
		return nil, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be greater than zero")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("TRUST_PROXY_HEADERS", "false")

	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_DATABASE", "products")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", "10")
	v.SetDefault("DB_MAX_IDLE_CONNS", "5")
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_QUERY_TIMEOUT", "0s")

	v.SetDefault("REDIS_DB", "0")

	v.SetDefault("RATE_LIMIT_ENABLED", "false")
	v.SetDefault("RATE_LIMIT_REQUESTS", "60")
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
	v.SetDefault("RATE_LIMIT_BURST", "10")
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

// Address returns the host:port pair of the database server.
func (c DBConfig) Address() string {
	return c.Host + ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// viper's own Get* helpers swallow parse errors, so values are parsed here.

func parseInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseBool(v *viper.Viper, key string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "t", "true", "yes", "on":
		return true, nil
	case "", "0", "f", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s %q", key, v.GetString(key))
}
