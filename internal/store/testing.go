package store

import (
	"database/sql"
	"fmt"
)

// NewTestStore creates a Store backed by a private in-memory database.
// This is only intended for use in tests.
func NewTestStore() (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening test database: %w", err)
	}
	// every new connection would get its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return newStore(sqlDB), nil
}
