package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DBPath          string
	CORSOrigin      string

	// Stats
	WeekStart time.Weekday // first day of a weekly time bucket

	// Auth
	TokenTTL   time.Duration
	LoginRate  float64 // login attempts per second per client
	LoginBurst int

	// Quiz sessions
	SessionIdleTimeout time.Duration // live sessions idle this long are suspended
	ReportWorkers      int
	ReportQueue        int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:      mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:    mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:             getenvDefault("DB_PATH", "quicktest.db"),
		CORSOrigin:         getenvDefault("CORS_ORIGIN", "*"),
		WeekStart:          mustGetWeekday("WEEK_START", time.Sunday),
		TokenTTL:           getDurationDefault("AUTH_TOKEN_TTL", 72*time.Hour),
		LoginRate:          getFloatDefault("LOGIN_RATE", 1),
		LoginBurst:         getIntDefault("LOGIN_BURST", 5),
		SessionIdleTimeout: getDurationDefault("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		ReportWorkers:      getIntDefault("REPORT_WORKERS", 2),
		ReportQueue:        getIntDefault("REPORT_QUEUE", 64),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := mustGetenv(k)
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := cast.ToIntE(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getFloatDefault(k string, fallback float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f <= 0 {
		log.Fatalf("config: %s=%q is not a positive number", k, v)
	}
	return f
}

func mustGetWeekday(k string, fallback time.Weekday) time.Weekday {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, ok := ParseWeekday(v)
	if !ok {
		log.Fatalf("config: %s=%q is not a weekday", k, v)
	}
	return d
}

// ParseWeekday accepts English day names, case-insensitive.
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == s {
			return d, true
		}
	}
	return 0, false
}
