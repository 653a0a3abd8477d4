package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Successful calculations, newest last
		`CREATE TABLE IF NOT EXISTS calculations (
			id TEXT PRIMARY KEY,
			pace_text TEXT NOT NULL,
			speed_text TEXT NOT NULL,
			source TEXT NOT NULL,
			mode TEXT NOT NULL,
			rounding TEXT NOT NULL,
			pace_min_per_km REAL NOT NULL,
			speed_kmh REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at)`,

		// App state (key-value store for values kept between runs)
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
