// README: Customer account store backed by PostgreSQL.
package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mechmatch/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, u *User) (*User, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, profile_picture, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at`,
		u.Name, u.Email, u.Phone, u.ProfilePicture, u.Password,
	)
	out := *u
	err := row.Scan(&out.ID, &out.Status, &out.CreatedAt)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) Get(ctx context.Context, id types.ID) (*User, error) {
	return s.one(ctx, `WHERE id = $1`, id)
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.one(ctx, `WHERE email = $1`, email)
}

func (s *Store) one(ctx context.Context, where string, arg any) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, email, phone, profile_picture, password, status, created_at
		FROM users `+where, arg,
	)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.ProfilePicture, &u.Password, &u.Status, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// BookingsCount backs the profile view; the bookings table itself is owned by
// the booking module.
func (s *Store) BookingsCount(ctx context.Context, id types.ID) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE customer_id = $1`, id).Scan(&n)
	return n, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
