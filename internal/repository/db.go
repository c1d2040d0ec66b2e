package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-reminder/internal/model"
)

// NewDB opens a SQLite database, runs migrations and seeds reference data.
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "task_reminder.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// An in-memory SQLite database exists per connection; cap the pool
	// at one so migrations and queries see the same database.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.SubscriptionPlan{},
		&model.UserSubscription{},
		&model.Category{},
		&model.Label{},
		&model.Task{},
		&model.EmailNotification{},
	); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	if err := seedPlans(db); err != nil {
		return nil, fmt.Errorf("seed plans: %w", err)
	}

	return db, nil
}

// seedPlans upserts the static FREE and PRO tiers. Safe to run on every
// startup.
func seedPlans(db *gorm.DB) error {
	plans := []model.SubscriptionPlan{
		{Name: model.PlanFree, PriceCents: 0, MaxTasks: 10, IsActive: true},
		{Name: model.PlanPro, PriceCents: 500, MaxTasks: model.UnlimitedTasks, IsActive: true},
	}
	for _, plan := range plans {
		var existing model.SubscriptionPlan
		err := db.Where("name = ?", plan.Name).First(&existing).Error
		switch {
		case err == nil:
			continue
		case err == gorm.ErrRecordNotFound:
			if err := db.Create(&plan).Error; err != nil {
				return fmt.Errorf("create %s plan: %w", plan.Name, err)
			}
		default:
			return fmt.Errorf("find %s plan: %w", plan.Name, err)
		}
	}
	return nil
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
