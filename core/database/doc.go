// Package database handles the connection to the catalog database and schema inspection.
//
// The catalog is an Audiobookshelf SQLite file that other processes (the media server itself)
// use concurrently. Connect wraps GORM with the pragmas and retry policy that sharing requires.
//
// # Connect
//
// Connect opens the file through a SQLite URI so the open mode can be set (ro, rw, rwc).
// Every connection gets a busy timeout, foreign keys, and IMMEDIATE transactions, so a run
// takes the write lock when it begins instead of on its first write.
//
// # Retry Policy
//
// Opening the catalog and beginning the run transaction are retried only when SQLite reports
// the database as busy or locked: RetryConfig.Attempts tries with Backoff * 2^attempt between
// them. Any other failure is returned immediately.
//
// # Schema Inspection
//
// CheckSchema verifies that the tables and columns the sync relies on exist before a run
// touches the catalog, which catches a catalog from an incompatible server version early.
//
// # Usage
//
//	db, err := database.Connect(cfg.Catalog)
//	if err != nil {
//	    log.Fatal("Catalog connection failed", err)
//	}
//
//	err = database.CheckSchema(db, catalog.RequiredSchema())
package database
