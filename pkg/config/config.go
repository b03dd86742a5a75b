package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Session store drivers.
const (
	SessionDriverCookie = "cookie"
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Log     LogConfig
	CORS    CORSConfig
	Auth    AuthConfig
	Session SessionConfig
	Redis   RedisConfig
	Seed    SeedConfig
	Exports ExportsConfig
	Metrics MetricsConfig
	Docs    DocsConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AuthConfig holds the single accepted dashboard credential pair.
type AuthConfig struct {
	Email      string
	Password   string
	Name       string
	LoginDelay time.Duration
}

// SessionConfig selects where the auth_user record lives.
type SessionConfig struct {
	Driver       string
	Secret       string
	TTL          time.Duration
	CookieSecure bool
	KeyPrefix    string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SeedConfig points at an optional seed dataset overriding the embedded one.
type SeedConfig struct {
	File string
}

// ExportsConfig toggles CSV/PDF export of list views.
type ExportsConfig struct {
	Enabled bool
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// DocsConfig toggles swagger docs outside production.
type DocsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Auth = AuthConfig{
		Email:      v.GetString("AUTH_EMAIL"),
		Password:   v.GetString("AUTH_PASSWORD"),
		Name:       v.GetString("AUTH_NAME"),
		LoginDelay: parseDuration(v.GetString("AUTH_LOGIN_DELAY"), time.Second),
	}

	cfg.Session = SessionConfig{
		Driver:       normalizeDriver(v.GetString("SESSION_DRIVER")),
		Secret:       v.GetString("SESSION_SECRET"),
		TTL:          parseDuration(v.GetString("SESSION_TTL"), 7*24*time.Hour),
		CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		KeyPrefix:    v.GetString("SESSION_KEY_PREFIX"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Seed = SeedConfig{File: strings.TrimSpace(v.GetString("SEED_FILE"))}
	cfg.Exports = ExportsConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}
	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}
	cfg.Docs = DocsConfig{Enabled: v.GetBool("ENABLE_DOCS")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/dashboard")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ALLOWED_ORIGINS", "")

	v.SetDefault("AUTH_EMAIL", "dev@dev.dev")
	v.SetDefault("AUTH_PASSWORD", "dev123")
	v.SetDefault("AUTH_NAME", "Dev User")
	v.SetDefault("AUTH_LOGIN_DELAY", "1s")

	v.SetDefault("SESSION_DRIVER", SessionDriverCookie)
	v.SetDefault("SESSION_SECRET", "dev_session_secret")
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SESSION_KEY_PREFIX", "dashboard")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SEED_FILE", "")
	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_DOCS", true)
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SessionDriverMemory:
		return SessionDriverMemory
	case SessionDriverRedis:
		return SessionDriverRedis
	default:
		return SessionDriverCookie
	}
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
