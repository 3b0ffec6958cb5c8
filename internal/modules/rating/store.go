// README: Rating store backed by PostgreSQL.
package rating

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mechmatch/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, r *Rating) (*Rating, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO ratings (booking_id, user_id, mechanic_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		r.BookingID, r.UserID, r.MechanicID, r.Stars, r.Comment,
	)
	out := *r
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// AverageForMechanic returns the mean star value and the number of ratings;
// (0, 0) when the mechanic has none.
func (s *Store) AverageForMechanic(ctx context.Context, mechanicID types.ID) (float64, int, error) {
	var avg float64
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM ratings
		WHERE mechanic_id = $1`,
		mechanicID,
	).Scan(&avg, &count)
	return avg, count, err
}
