package config_test

import (
	"testing"
	"time"

	"github.com/quicktest/backend/internal/infrastructure/config"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{"sunday", time.Sunday, true},
		{"Monday", time.Monday, true},
		{" SATURDAY ", time.Saturday, true},
		{"funday", 0, false},
	}
	for _, c := range cases {
		got, ok := config.ParseWeekday(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseWeekday(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := config.Load()

	if cfg.ServerAddress != ":9090" {
		t.Errorf("expected address %q, got %q", ":9090", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.WeekStart != time.Sunday {
		t.Errorf("expected week to start on Sunday, got %v", cfg.WeekStart)
	}
	if cfg.ReportWorkers != 2 {
		t.Errorf("expected 2 report workers, got %d", cfg.ReportWorkers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("WEEK_START", "monday")
	t.Setenv("REPORT_WORKERS", "4")
	t.Setenv("LOGIN_RATE", "0.5")
	t.Setenv("AUTH_TOKEN_TTL", "1h")

	cfg := config.Load()

	if cfg.WeekStart != time.Monday {
		t.Errorf("expected Monday, got %v", cfg.WeekStart)
	}
	if cfg.ReportWorkers != 4 {
		t.Errorf("expected 4 report workers, got %d", cfg.ReportWorkers)
	}
	if cfg.LoginRate != 0.5 {
		t.Errorf("expected login rate 0.5, got %v", cfg.LoginRate)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected 1h token TTL, got %v", cfg.TokenTTL)
	}
}
