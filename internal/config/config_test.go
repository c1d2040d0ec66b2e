package config

import (
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CRON_SECRET", "s3cret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REMINDER_TIME", "")
	t.Setenv("SMTP_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "task_reminder.db" {
		t.Errorf("expected default database url, got %q", cfg.DatabaseURL)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ReminderTime != "09:00" {
		t.Errorf("expected default reminder time, got %q", cfg.ReminderTime)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("expected default smtp port, got %d", cfg.SMTP.Port)
	}
}

func TestLoadRequiredFields(t *testing.T) {
	t.Setenv("CRON_SECRET", "")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing CRON_SECRET")
	}

	t.Setenv("CRON_SECRET", "s3cret")
	t.Setenv("SMTP_HOST", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing SMTP_HOST")
	}
}

func TestLoadSMTPFromFallsBackToUser(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_USER", "mailer@example.com")
	t.Setenv("SMTP_FROM_EMAIL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SMTP.From != "mailer@example.com" {
		t.Errorf("expected from to fall back to user, got %q", cfg.SMTP.From)
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 587},
		{"465", 465},
		{"not-a-port", 587},
		{"-1", 587},
		{"70000", 587},
	}
	for _, tt := range tests {
		if got := parsePort(tt.raw); got != tt.want {
			t.Errorf("parsePort(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
