package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the catalog database, retrying while it is busy or locked.
// Any other failure (missing file, permissions, corrupt database) is returned immediately.
func Connect(cfg Config) (*gorm.DB, error) {
	var db *gorm.DB
	err := WithRetry(context.Background(), cfg.Retry(), func() error {
		conn, err := open(cfg)
		if err != nil {
			return err
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog %s: %w", cfg.Path, err)
	}
	return db, nil
}

func open(cfg Config) (*gorm.DB, error) {
	// Suppress GORM logging; callers log through zap
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// A single connection keeps every statement of a run on the transaction's connection
	// and avoids competing with ourselves for the SQLite write lock.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	timeout := time.Duration(cfg.BusyTimeoutMillis)*time.Millisecond + 5*time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	// Touch the schema so a lock held by another writer surfaces here.
	if err := db.WithContext(ctx).Exec("SELECT count(*) FROM sqlite_master").Error; err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// WithRetry calls fn until it succeeds, fails with a non-busy error, or the attempts run out.
// The wait between attempts starts at cfg.Backoff and doubles every time.
func WithRetry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsBusy(err) {
			return err
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}

		t := time.NewTimer(cfg.Backoff * time.Duration(1<<attempt))
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		}
	}

	return fmt.Errorf("catalog still busy after %d attempts: %w", attempts, lastErr)
}

// IsBusy reports whether err means the database is locked by another connection.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "locked") || strings.Contains(msg, "busy")
}
