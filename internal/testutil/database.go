package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database;
	// a second pooled connection would open its own empty one.
	db.SetMaxOpenConns(1)

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- User table
		CREATE TABLE user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(60) NOT NULL,
			role VARCHAR(10) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Company catalog
		CREATE TABLE company (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			price TEXT NOT NULL,
			available_quantity INTEGER NOT NULL CHECK (available_quantity >= 0),
			issued_quantity INTEGER NOT NULL CHECK (issued_quantity >= 0),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Customer holdings
		CREATE TABLE holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			customer_id VARCHAR(36) NOT NULL,
			company_id VARCHAR(36) NOT NULL,
			shares INTEGER NOT NULL CHECK (shares >= 0),
			FOREIGN KEY(customer_id) REFERENCES user(id),
			FOREIGN KEY(company_id) REFERENCES company(id),
			CONSTRAINT unique_customer_company UNIQUE (customer_id, company_id)
		);

		-- Trade ledger
		CREATE TABLE trade (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			customer_id VARCHAR(36) NOT NULL,
			company_id VARCHAR(36) NOT NULL,
			sub_admin_id VARCHAR(36) NOT NULL,
			type VARCHAR(4) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price_at_execution TEXT NOT NULL,
			total_value TEXT NOT NULL,
			idempotency_key VARCHAR(100) UNIQUE,
			created_at TEXT NOT NULL,
			FOREIGN KEY(customer_id) REFERENCES user(id),
			FOREIGN KEY(company_id) REFERENCES company(id),
			FOREIGN KEY(sub_admin_id) REFERENCES user(id)
		);

		-- Price history
		CREATE TABLE price_history (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			company_id VARCHAR(36) NOT NULL,
			price TEXT NOT NULL,
			modified_by VARCHAR(36) NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY(company_id) REFERENCES company(id),
			FOREIGN KEY(modified_by) REFERENCES user(id)
		);

		-- Materialized portfolio values
		CREATE TABLE portfolio_value_history (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			customer_id VARCHAR(36) NOT NULL,
			date VARCHAR(10) NOT NULL,
			total_value TEXT NOT NULL,
			calculated_at TEXT NOT NULL,
			FOREIGN KEY(customer_id) REFERENCES user(id),
			CONSTRAINT unique_customer_date UNIQUE (customer_id, date)
		);

		-- Indexes for performance
		CREATE INDEX ix_holding_customer_id ON holding(customer_id);
		CREATE INDEX ix_holding_company_id ON holding(company_id);
		CREATE INDEX ix_trade_customer_id ON trade(customer_id);
		CREATE INDEX ix_trade_sub_admin_id ON trade(sub_admin_id);
		CREATE INDEX ix_trade_company_id ON trade(company_id);
		CREATE INDEX ix_trade_created_at ON trade(created_at);
		CREATE INDEX ix_price_history_company_id ON price_history(company_id);
		CREATE INDEX ix_price_history_created_at ON price_history(created_at);
		CREATE INDEX ix_portfolio_value_history_customer_id ON portfolio_value_history(customer_id);
	`

	_, err := db.Exec(schema)
	return err
}
