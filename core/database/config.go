package database

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds configuration for the catalog database connection.
type Config struct {
	// Path is the path to the Audiobookshelf SQLite file.
	Path string `mapstructure:"path" default:"absdatabase.sqlite"`
	// Mode is the SQLite open mode: ro, rw (existing file) or rwc (create).
	Mode string `mapstructure:"mode" default:"rw"`
	// BusyTimeoutMillis is how long a statement waits on a lock before failing.
	BusyTimeoutMillis int `mapstructure:"busy_timeout_ms" default:"5000"`
	// Retries is the number of attempts made while the catalog reports busy or locked.
	Retries int `mapstructure:"retries" default:"5"`
	// BackoffMillis is the initial wait between attempts; it doubles every attempt.
	BackoffMillis int `mapstructure:"backoff_ms" default:"250"`
}

// RetryConfig controls the busy/locked retry policy.
type RetryConfig struct {
	// Attempts is the total number of tries. Values <= 0 mean a single try.
	Attempts int
	// Backoff is the wait after the first failed attempt.
	Backoff time.Duration
}

// Retry returns the retry policy for this configuration.
func (c Config) Retry() RetryConfig {
	return RetryConfig{
		Attempts: c.Retries,
		Backoff:  time.Duration(c.BackoffMillis) * time.Millisecond,
	}
}

// DSN returns the SQLite URI used to open the catalog.
func (c Config) DSN() string {
	mode := c.Mode
	if mode == "" {
		mode = "rw"
	}
	timeout := c.BusyTimeoutMillis
	if timeout <= 0 {
		timeout = 5000
	}

	path := (&url.URL{Path: c.Path}).EscapedPath()
	return fmt.Sprintf("file:%s?mode=%s&_busy_timeout=%d&_foreign_keys=on&_txlock=immediate", path, mode, timeout)
}
