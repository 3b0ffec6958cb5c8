// README: Service catalog store backed by PostgreSQL.
package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mechmatch/internal/types"
)

var ErrNotFound = errors.New("service not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Service, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, status, created_at
		FROM services
		WHERE id = $1`, id,
	)
	var svc Service
	err := row.Scan(&svc.ID, &svc.Name, &svc.Status, &svc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// List returns every service together with the mechanics offering it.
func (s *Store) List(ctx context.Context) ([]ServiceWithMechanics, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, status, created_at
		FROM services
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ServiceWithMechanics
	index := make(map[types.ID]int)
	for rows.Next() {
		var svc Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Status, &svc.CreatedAt); err != nil {
			return nil, err
		}
		index[svc.ID] = len(result)
		result = append(result, ServiceWithMechanics{Service: svc})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	mrows, err := s.db.Query(ctx, `
		SELECT ms.service_id, m.id, m.name, m.phone, m.garage_location, m.latitude, m.longitude
		FROM mechanic_services ms
		JOIN mechanics m ON m.id = ms.mechanic_id
		ORDER BY ms.service_id, m.id`,
	)
	if err != nil {
		return nil, err
	}
	defer mrows.Close()

	for mrows.Next() {
		var serviceID types.ID
		var m MechanicSummary
		if err := mrows.Scan(&serviceID, &m.ID, &m.Name, &m.Phone, &m.GarageLocation, &m.Latitude, &m.Longitude); err != nil {
			return nil, err
		}
		if i, ok := index[serviceID]; ok {
			result[i].Mechanics = append(result[i].Mechanics, m)
		}
	}
	return result, mrows.Err()
}

func (s *Store) Insert(ctx context.Context, name string) (*Service, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO services (name)
		VALUES ($1)
		RETURNING id, name, status, created_at`, name,
	)
	var svc Service
	if err := row.Scan(&svc.ID, &svc.Name, &svc.Status, &svc.CreatedAt); err != nil {
		return nil, err
	}
	return &svc, nil
}
