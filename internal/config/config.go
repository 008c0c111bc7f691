// Package config loads and validates application configuration from
// environment variables, optionally layered over a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the API server.
// Values are populated by Load.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// JWTTTL is how long an issued session token stays valid. Defaults to 24h.
	JWTTTL time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// DefaultPageSize is the list page size when the client sends none. Defaults to 8.
	DefaultPageSize int

	// DBConnectAttempts bounds the startup connection retries. Defaults to 5.
	DBConnectAttempts int

	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart bool

	// RedisURL enables the login limiter when set.
	RedisURL string
	// LoginMaxFailures failed logins within LoginWindow block the
	// (login, ip) pair for LoginBlockFor.
	LoginMaxFailures int
	LoginWindow      time.Duration
	LoginBlockFor    time.Duration

	// KafkaBrokers enables shipment events when non-empty.
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration and returns a Config. When CONFIG_FILE names a
// YAML file its keys (snake_case, e.g. database_url) supply values; the
// matching environment variable (DATABASE_URL) always wins.
// Returns an error listing every required key that is not set and every
// value that fails to parse.
func Load() (Config, error) {
	src := &source{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		file, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		src.file = file
	}

	cfg := Config{
		Port:              src.str("port", "8080"),
		DatabaseURL:       src.str("database_url", ""),
		JWTSecret:         src.str("jwt_secret", ""),
		JWTTTL:            src.duration("jwt_ttl", 24*time.Hour),
		LogLevel:          src.str("log_level", "info"),
		CORSOrigins:       splitCSV(src.str("cors_origins", "http://localhost:3000")),
		MaxBodyBytes:      int64(src.int("max_body_bytes", 1<<20)),
		DefaultPageSize:   src.int("default_page_size", 8),
		DBConnectAttempts: src.int("db_connect_attempts", 5),
		MigrateOnStart:    src.bool("migrate_on_start", false),
		RedisURL:          src.str("redis_url", ""),
		LoginMaxFailures:  src.int("login_max_failures", 5),
		LoginWindow:       src.duration("login_window", 15*time.Minute),
		LoginBlockFor:     src.duration("login_block_for", 15*time.Minute),
		KafkaBrokers:      splitCSV(src.str("kafka_brokers", "")),
		KafkaTopic:        src.str("kafka_topic", "shipment-events"),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > 100 {
		src.invalid("DEFAULT_PAGE_SIZE", "must be between 1 and 100")
	}
	if cfg.DBConnectAttempts < 1 {
		src.invalid("DB_CONNECT_ATTEMPTS", "must be at least 1")
	}
	if cfg.MaxBodyBytes < 1 {
		src.invalid("MAX_BODY_BYTES", "must be positive")
	}
	if cfg.LoginMaxFailures < 1 {
		src.invalid("LOGIN_MAX_FAILURES", "must be at least 1")
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required configuration not set: %s", strings.Join(missing, ", ")))
	}
	errs = append(errs, src.errs...)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readFile flattens a YAML mapping into snake_case key → string value.
// Sequences become comma-separated strings.
func readFile(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case nil:
		case []any:
			parts := make([]string, len(v))
			for i, p := range v {
				parts[i] = fmt.Sprint(p)
			}
			out[k] = strings.Join(parts, ",")
		default:
			out[k] = fmt.Sprint(v)
		}
	}
	return out, nil
}

// source resolves one key from the environment, then the file, then the
// fallback, recording parse failures.
type source struct {
	file map[string]string
	errs []error
}

func envKey(key string) string { return strings.ToUpper(key) }

func (s *source) str(key, fallback string) string {
	if v := os.Getenv(envKey(key)); v != "" {
		return v
	}
	if v := s.file[key]; v != "" {
		return v
	}
	return fallback
}

func (s *source) int(key string, fallback int) int {
	raw := s.str(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.invalid(envKey(key), "must be an integer")
		return fallback
	}
	return n
}

func (s *source) duration(key string, fallback time.Duration) time.Duration {
	raw := s.str(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		s.invalid(envKey(key), "must be a positive duration such as 15m")
		return fallback
	}
	return d
}

func (s *source) bool(key string, fallback bool) bool {
	raw := s.str(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		s.invalid(envKey(key), "must be true or false")
		return fallback
	}
	return b
}

func (s *source) invalid(key, msg string) {
	s.errs = append(s.errs, fmt.Errorf("invalid %s: %s", key, msg))
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
