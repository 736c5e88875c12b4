package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL    string
	ServerAddr     string
	APIBaseURL     string
	Parliament     string
	Session        string
	PageSize       int
	PageDelay      time.Duration
	RequestsPerSec float64
	NestedWorkers  int
	MigrationsDir  string
	CronSpec       string
	ForceBackfill  map[string]bool
	RequestTimeout time.Duration
}

// Load reads configuration from environment.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "commons_pulse")
		pass := getenv("POSTGRES_PASSWORD", "commons_pulse_pass")
		db := getenv("POSTGRES_DB", "commons_pulse")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}

	return &Config{
		DatabaseURL:    dsn,
		ServerAddr:     getenv("SERVER_ADDR", "0.0.0.0:8080"),
		APIBaseURL:     getenv("OPENPARL_API_URL", "https://api.openparl.ca"),
		Parliament:     getenv("PARLIAMENT", "45"),
		Session:        getenv("SESSION", "1"),
		PageSize:       parseInt(getenv("SYNC_PAGE_SIZE", "100"), 100),
		PageDelay:      parseDuration(getenv("SYNC_PAGE_DELAY", "200ms"), 200*time.Millisecond),
		RequestsPerSec: parseFloat(getenv("SYNC_REQUESTS_PER_SEC", "5"), 5),
		NestedWorkers:  parseInt(getenv("SYNC_NESTED_WORKERS", "4"), 4),
		MigrationsDir:  getenv("MIGRATIONS_DIR", "internal/migrations"),
		CronSpec:       getenv("ETL_CRON", "0 3 * * *"),
		ForceBackfill:  parseSet(os.Getenv("FORCE_FULL_BACKFILL")),
		RequestTimeout: parseDuration(getenv("OPENPARL_REQUEST_TIMEOUT", "30s"), 30*time.Second),
	}, nil
}

// ForceBackfillFor reports whether the watermark filter is bypassed for entity.
func (c *Config) ForceBackfillFor(entity string) bool {
	return c.ForceBackfill["all"] || c.ForceBackfill[strings.ToLower(entity)]
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return d
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}

func parseFloat(val string, def float64) float64 {
	if val == "" {
		return def
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return def
	}
	return f
}

func parseSet(val string) map[string]bool {
	out := map[string]bool{}
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part != "" {
			out[part] = true
		}
	}
	return out
}
