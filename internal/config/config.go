package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SMTP holds outbound mail transport settings.
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Config keeps runtime settings for the service.
type Config struct {
	DatabaseURL  string
	HTTPAddr     string
	CronSecret   string
	ReminderTime string // HH:MM, UTC
	AppURL       string
	SMTP         SMTP
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPAddr:     strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		CronSecret:   strings.TrimSpace(os.Getenv("CRON_SECRET")),
		ReminderTime: strings.TrimSpace(os.Getenv("REMINDER_TIME")),
		AppURL:       strings.TrimSpace(os.Getenv("APP_URL")),
		SMTP: SMTP{
			Host:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
			Port:     parsePort(strings.TrimSpace(os.Getenv("SMTP_PORT"))),
			User:     strings.TrimSpace(os.Getenv("SMTP_USER")),
			Password: os.Getenv("SMTP_PASS"),
			From:     strings.TrimSpace(os.Getenv("SMTP_FROM_EMAIL")),
		},
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "task_reminder.db"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.ReminderTime == "" {
		cfg.ReminderTime = "09:00"
	}
	if cfg.AppURL == "" {
		cfg.AppURL = "http://localhost:8080"
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	if cfg.CronSecret == "" {
		return cfg, fmt.Errorf("CRON_SECRET is required")
	}
	if cfg.SMTP.Host == "" {
		return cfg, fmt.Errorf("SMTP_HOST is required")
	}

	return cfg, nil
}

func parsePort(raw string) int {
	if raw == "" {
		return 587
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 || port > 65535 {
		return 587
	}
	return port
}
