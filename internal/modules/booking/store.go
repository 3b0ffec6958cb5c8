// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"errors"
	"time"

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

func (s *Store) Insert(ctx context.Context, b *Booking) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO bookings (type, location, latitude, longitude, status, customer_id, mechanic_id, service_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		b.Type, b.Location, b.Latitude, b.Longitude, b.Status, b.CustomerID, b.MechanicID, b.ServiceID,
	)
	out := *b
	if err := row.Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

const bookingColumns = `id, type, location, latitude, longitude, status, created_at, updated_at,
	customer_id, mechanic_id, service_id`

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	return scanBooking(row)
}

// UpdateStatus applies the status atomically in a single-row write; two
// concurrent actions on the same booking cannot interleave field updates.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, status Status, updatedAt time.Time) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE bookings
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+bookingColumns,
		id, status, updatedAt,
	)
	return scanBooking(row)
}

func (s *Store) ListAll(ctx context.Context) ([]Detail, error) {
	return s.details(ctx, ``)
}

func (s *Store) ListByMechanic(ctx context.Context, mechanicID types.ID) ([]Detail, error) {
	return s.details(ctx, `WHERE b.mechanic_id = $1`, mechanicID)
}

func (s *Store) GetDetail(ctx context.Context, id types.ID) (*Detail, error) {
	out, err := s.details(ctx, `WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

func (s *Store) CountCompletedByMechanic(ctx context.Context, mechanicID types.ID) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings WHERE mechanic_id = $1 AND status = $2`,
		mechanicID, StatusCompleted,
	).Scan(&n)
	return n, err
}

func (s *Store) details(ctx context.Context, where string, args ...any) ([]Detail, error) {
	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.type, b.location, b.latitude, b.longitude, b.status, b.created_at, b.updated_at,
		       b.customer_id, b.mechanic_id, b.service_id,
		       u.name, u.phone,
		       m.name, m.phone,
		       sv.name
		FROM bookings b
		JOIN users u ON u.id = b.customer_id
		LEFT JOIN mechanics m ON m.id = b.mechanic_id
		LEFT JOIN services sv ON sv.id = b.service_id
		`+where+`
		ORDER BY b.id`, args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Detail
	for rows.Next() {
		var d Detail
		var mechName, mechPhone, svcName *string
		if err := rows.Scan(&d.ID, &d.Type, &d.Location, &d.Latitude, &d.Longitude, &d.Status,
			&d.CreatedAt, &d.UpdatedAt, &d.CustomerID, &d.MechanicID, &d.ServiceID,
			&d.Customer.Name, &d.Customer.Phone,
			&mechName, &mechPhone, &svcName); err != nil {
			return nil, err
		}
		d.Customer.ID = d.CustomerID
		if d.MechanicID != nil && mechName != nil {
			d.Mechanic = &Party{ID: *d.MechanicID, Name: *mechName, Phone: mechPhone}
		}
		d.ServiceName = svcName
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.Type, &b.Location, &b.Latitude, &b.Longitude, &b.Status,
		&b.CreatedAt, &b.UpdatedAt, &b.CustomerID, &b.MechanicID, &b.ServiceID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
