// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database
)

// Storage backends for reservations.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Identity modes.
const (
	AuthLINE   = "line"
	AuthHeader = "header"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"]. Set CORS_ORIGINS to a
	// comma-separated list to override.
	CORSOrigins []string

	// Storage selects the reservation store: "postgres" (default) or "sqlite".
	Storage string

	// DatabaseURL is the Postgres connection string. Required for postgres.
	DatabaseURL string

	// SQLitePath is the database file for sqlite. Defaults to "stopbook.db".
	SQLitePath string

	// ScheduleAPIURL is the schedule service endpoint. Required.
	ScheduleAPIURL     string
	ScheduleTimeout    time.Duration
	ScheduleMaxRetries uint64

	// ScheduleBudget bounds one schedule lookup including retries. It must
	// be shorter than WriteTimeout so a failed lookup still gets a response.
	ScheduleBudget time.Duration

	// WriteTimeout is the HTTP server's write timeout. Defaults to 30s.
	WriteTimeout time.Duration

	// ScheduleCacheTTL is how long schedule lookups are cached in Redis.
	// Caching is off unless RedisAddr is set.
	ScheduleCacheTTL time.Duration
	RedisAddr        string
	RedisPassword    string

	// Timezone is the IANA zone in which travel dates and departure times
	// are interpreted. Defaults to "Asia/Taipei".
	Timezone string

	// AuthMode is "line" (default) or "header". Header mode trusts
	// X-Rider-ID and is meant for local development only.
	AuthMode          string
	LINEChannelID     string
	LINEChannelSecret string

	// StaffTokenSecret signs the back-office X-Staff-Token JWTs. Staff
	// endpoints refuse every caller while it is empty.
	StaffTokenSecret string

	SessionIdleTimeout time.Duration
	ArrivingSoonWindow time.Duration

	// MaxBodyBytes caps request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// any set to a value that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Storage:       strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		SQLitePath:    getEnv("SQLITE_PATH", "stopbook.db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Timezone:      getEnv("TIMEZONE", "Asia/Taipei"),
		AuthMode:      strings.ToLower(getEnv("AUTH_MODE", AuthLINE)),

		StaffTokenSecret: os.Getenv("STAFF_TOKEN_SECRET"),
	}

	var missing, invalid []string
	p := parser{invalid: &invalid}

	cfg.ScheduleTimeout = p.duration("SCHEDULE_TIMEOUT", 10*time.Second)
	cfg.ScheduleMaxRetries = p.count("SCHEDULE_MAX_RETRIES", 2)
	cfg.ScheduleBudget = p.duration("SCHEDULE_BUDGET", 20*time.Second)
	cfg.WriteTimeout = p.duration("WRITE_TIMEOUT", 30*time.Second)
	cfg.ScheduleCacheTTL = p.duration("SCHEDULE_CACHE_TTL", 5*time.Minute)
	cfg.SessionIdleTimeout = p.duration("SESSION_IDLE_TIMEOUT", 30*time.Minute)
	cfg.ArrivingSoonWindow = p.duration("ARRIVING_SOON_WINDOW", 30*time.Minute)
	cfg.MaxBodyBytes = int64(p.count("MAX_BODY_BYTES", 64<<10))

	cfg.ScheduleAPIURL = os.Getenv("SCHEDULE_API_URL")
	if cfg.ScheduleAPIURL == "" {
		missing = append(missing, "SCHEDULE_API_URL")
	}

	switch cfg.Storage {
	case StoragePostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case StorageSQLite:
	default:
		invalid = append(invalid, "STORAGE")
	}

	switch cfg.AuthMode {
	case AuthLINE:
		cfg.LINEChannelID = os.Getenv("LINE_CHANNEL_ID")
		cfg.LINEChannelSecret = os.Getenv("LINE_CHANNEL_SECRET")
		if cfg.LINEChannelID == "" {
			missing = append(missing, "LINE_CHANNEL_ID")
		}
		if cfg.LINEChannelSecret == "" {
			missing = append(missing, "LINE_CHANNEL_SECRET")
		}
	case AuthHeader:
	default:
		invalid = append(invalid, "AUTH_MODE")
	}

	if (cfg.ScheduleBudget == 0 || cfg.ScheduleBudget >= cfg.WriteTimeout) && !slices.Contains(invalid, "SCHEDULE_BUDGET") {
		invalid = append(invalid, "SCHEDULE_BUDGET")
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		invalid = append(invalid, "TIMEZONE")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// Location returns the configured service time zone. Load has already
// checked that it exists.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parser reads typed variables, recording the names of unparsable ones.
type parser struct {
	invalid *[]string
}

func (p parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		*p.invalid = append(*p.invalid, key)
		return fallback
	}
	return d
}

func (p parser) count(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 63)
	if err != nil {
		*p.invalid = append(*p.invalid, key)
		return fallback
	}
	return n
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
