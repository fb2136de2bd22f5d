package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens the SQLite database.
//
// Connection settings are encoded in the DSN rather than applied with
// db.Exec: a PRAGMA issued through the pool only reaches the one connection
// that happens to serve it, while DSN pragmas apply to every pooled
// connection. _txlock=immediate makes transactions take the write lock up
// front, so two concurrent trades queue on busy_timeout instead of failing
// when both try to upgrade a shared lock.
func Open(dbPath string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	dsn := dbPath + sep + "_txlock=immediate" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// HealthCheck performs a simple health check on the database
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}
