// README: Availability store backed by PostgreSQL (upsert on mechanic+day).
package availability

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mechmatch/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Find returns the explicit flag for (mechanic, day) and whether a row exists.
func (s *Store) Find(ctx context.Context, mechanicID types.ID, day string) (bool, bool, error) {
	var available bool
	err := s.db.QueryRow(ctx, `
		SELECT is_available
		FROM mechanic_availability
		WHERE mechanic_id = $1 AND day_of_week = $2`,
		mechanicID, day,
	).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return available, true, nil
}

// Upsert writes the flag for (mechanic, day); last write wins and re-setting
// the same value is a no-op.
func (s *Store) Upsert(ctx context.Context, mechanicID types.ID, day string, available bool) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO mechanic_availability (mechanic_id, day_of_week, is_available)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT mechanic_day_uc
		DO UPDATE SET is_available = EXCLUDED.is_available`,
		mechanicID, day, available,
	)
	return err
}

func (s *Store) ListByMechanic(ctx context.Context, mechanicID types.ID) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, mechanic_id, day_of_week, is_available
		FROM mechanic_availability
		WHERE mechanic_id = $1`,
		mechanicID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.MechanicID, &r.Day, &r.Available); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertDefaults eagerly creates the seven default-true rows for a new
// mechanic. Runtime reads do not require them; absence already means true.
func (s *Store) InsertDefaults(ctx context.Context, mechanicID types.ID) error {
	for _, day := range Weekdays {
		_, err := s.db.Exec(ctx, `
			INSERT INTO mechanic_availability (mechanic_id, day_of_week, is_available)
			VALUES ($1, $2, TRUE)
			ON CONFLICT ON CONSTRAINT mechanic_day_uc DO NOTHING`,
			mechanicID, day,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
