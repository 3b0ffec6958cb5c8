// README: Mechanic store backed by PostgreSQL (accounts + offered-service links).
package mechanic

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

const mechanicColumns = `id, name, email, phone, password, profile_picture,
	garage_name, garage_location, latitude, longitude, status, document_path, created_at`

// Insert creates the mechanic and links it to the given services in one
// transaction. Service ids that do not exist are ignored, matching the
// tolerant link behaviour of the account endpoints.
func (s *Store) Insert(ctx context.Context, m *Mechanic, serviceIDs []types.ID) (*Mechanic, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO mechanics (name, email, phone, password, profile_picture,
			garage_name, garage_location, latitude, longitude, document_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, status, created_at`,
		m.Name, m.Email, m.Phone, m.Password, m.ProfilePicture,
		m.GarageName, m.GarageLocation, m.Latitude, m.Longitude, m.DocumentPath,
	)
	out := *m
	err = row.Scan(&out.ID, &out.Status, &out.CreatedAt)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	if len(serviceIDs) > 0 {
		_, err = tx.Exec(ctx, `
			INSERT INTO mechanic_services (mechanic_id, service_id)
			SELECT $1, id FROM services WHERE id = ANY($2)
			ON CONFLICT DO NOTHING`,
			out.ID, serviceIDs,
		)
		if err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	out.Services, err = s.servicesOf(ctx, out.ID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Mechanic, error) {
	m, err := s.one(ctx, `WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	m.Services, err = s.servicesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Mechanic, error) {
	return s.one(ctx, `WHERE email = $1`, email)
}

func (s *Store) Exists(ctx context.Context, id types.ID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM mechanics WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// OfferingService returns every mechanic linked to the service, regardless of
// status or availability; the dispatch filter applies those rules.
func (s *Store) OfferingService(ctx context.Context, serviceID types.ID) ([]Mechanic, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+mechanicColumns+`
		FROM mechanics
		WHERE id IN (SELECT mechanic_id FROM mechanic_services WHERE service_id = $1)
		ORDER BY id`, serviceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMechanics(rows)
}

// ListByIDs fetches mechanics preserving the order of ids.
func (s *Store) ListByIDs(ctx context.Context, ids []types.ID) ([]Mechanic, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx, `
		SELECT `+mechanicColumns+`
		FROM mechanics
		WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	fetched, err := scanMechanics(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[types.ID]Mechanic, len(fetched))
	for _, m := range fetched {
		byID[m.ID] = m
	}
	ordered := make([]Mechanic, 0, len(fetched))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered, nil
}

func (s *Store) one(ctx context.Context, where string, arg any) (*Mechanic, error) {
	row := s.db.QueryRow(ctx, `SELECT `+mechanicColumns+` FROM mechanics `+where, arg)
	var m Mechanic
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Password, &m.ProfilePicture,
		&m.GarageName, &m.GarageLocation, &m.Latitude, &m.Longitude, &m.Status, &m.DocumentPath, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) servicesOf(ctx context.Context, id types.ID) ([]OfferedService, error) {
	rows, err := s.db.Query(ctx, `
		SELECT sv.id, sv.name
		FROM mechanic_services ms
		JOIN services sv ON sv.id = ms.service_id
		WHERE ms.mechanic_id = $1
		ORDER BY sv.id`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OfferedService
	for rows.Next() {
		var svc OfferedService
		if err := rows.Scan(&svc.ID, &svc.Name); err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, rows.Err()
}

func scanMechanics(rows pgx.Rows) ([]Mechanic, error) {
	var out []Mechanic
	for rows.Next() {
		var m Mechanic
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Password, &m.ProfilePicture,
			&m.GarageName, &m.GarageLocation, &m.Latitude, &m.Longitude, &m.Status, &m.DocumentPath, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
