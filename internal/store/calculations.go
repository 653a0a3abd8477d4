package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so created_at sorts as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Calculation is one successful submit recorded in the history
type Calculation struct {
	ID           string    `db:"id"`
	PaceText     string    `db:"pace_text"`
	SpeedText    string    `db:"speed_text"`
	Source       string    `db:"source"` // "pace" or "speed"
	Mode         string    `db:"mode"`
	Rounding     string    `db:"rounding"`
	PaceMinPerKm float64   `db:"pace_min_per_km"`
	SpeedKmh     float64   `db:"speed_kmh"`
	CreatedAt    time.Time `db:"created_at"`
}

// SaveCalculation inserts a history entry. A missing ID or CreatedAt is filled in.
func (s *Store) SaveCalculation(c *Calculation) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO calculations (
			id, pace_text, speed_text, source, mode, rounding,
			pace_min_per_km, speed_kmh, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID, c.PaceText, c.SpeedText, c.Source, c.Mode, c.Rounding,
		c.PaceMinPerKm, c.SpeedKmh, c.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting calculation: %w", err)
	}
	return nil
}

// RecentCalculations returns up to limit entries, newest first
func (s *Store) RecentCalculations(limit int) ([]Calculation, error) {
	rows, err := s.db.Query(`
		SELECT id, pace_text, speed_text, source, mode, rounding,
			pace_min_per_km, speed_kmh, created_at
		FROM calculations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []Calculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, *c)
	}
	return calcs, rows.Err()
}

// CountCalculations returns the number of history entries
func (s *Store) CountCalculations() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM calculations`).Scan(&n)
	return n, err
}

// ClearCalculations removes all history entries
func (s *Store) ClearCalculations() error {
	_, err := s.db.Exec(`DELETE FROM calculations`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCalculation scans a single calculation from a row
func scanCalculation(row rowScanner) (*Calculation, error) {
	var c Calculation
	var createdAt string

	err := row.Scan(
		&c.ID, &c.PaceText, &c.SpeedText, &c.Source, &c.Mode, &c.Rounding,
		&c.PaceMinPerKm, &c.SpeedKmh, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	return &c, nil
}
