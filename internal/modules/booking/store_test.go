// README: Booking store tests against a real database (gated by MECH_TEST_DSN).
package booking

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"mechmatch/internal/types"
)

func setupTestStore(t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("MECH_TEST_DSN")
	if dsn == "" {
		t.Skip("MECH_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE bookings, users, mechanics, services RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return NewStore(db), db
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(content))
	return err
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.New("go.mod not found above working directory")
}

func seedParties(t *testing.T, db *pgxpool.Pool) (customerID, mechanicID, serviceID types.ID) {
	t.Helper()
	ctx := context.Background()

	if err := db.QueryRow(ctx, `
		INSERT INTO users (name, email, password) VALUES ('Alice Johnson', 'alice@test.local', 'pw')
		RETURNING id`).Scan(&customerID); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.QueryRow(ctx, `
		INSERT INTO mechanics (name, email, password, latitude, longitude)
		VALUES ('Joe Garage', 'joe@test.local', 'pw', -1.28333, 36.81667)
		RETURNING id`).Scan(&mechanicID); err != nil {
		t.Fatalf("seed mechanic: %v", err)
	}
	if err := db.QueryRow(ctx, `
		INSERT INTO services (name) VALUES ('Oil Change') RETURNING id`).Scan(&serviceID); err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return customerID, mechanicID, serviceID
}

func TestStoreInsertAndGet(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()
	customerID, mechanicID, serviceID := seedParties(t, db)

	lat, lng := -1.2850, 36.8170
	created, err := store.Insert(ctx, &Booking{
		Type:       "Oil Change",
		Location:   "Nairobi CBD",
		Latitude:   &lat,
		Longitude:  &lng,
		Status:     StatusPending,
		CustomerID: customerID,
		MechanicID: &mechanicID,
		ServiceID:  &serviceID,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("insert did not populate id/created_at: %+v", created)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusPending || got.Type != "Oil Change" || *got.MechanicID != mechanicID {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if _, err := store.Get(ctx, created.ID+1000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing booking: err = %v, want ErrNotFound", err)
	}
}

func TestStoreUpdateStatus(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()
	customerID, mechanicID, serviceID := seedParties(t, db)

	created, err := store.Insert(ctx, &Booking{
		Type: "Oil Change", Location: "x", Status: StatusPending,
		CustomerID: customerID, MechanicID: &mechanicID, ServiceID: &serviceID,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Microsecond)
	updated, err := store.UpdateStatus(ctx, created.ID, StatusCompleted, at)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", updated.Status, StatusCompleted)
	}
	if !updated.UpdatedAt.Equal(at) {
		t.Fatalf("updated_at = %v, want %v", updated.UpdatedAt, at)
	}

	n, err := store.CountCompletedByMechanic(ctx, mechanicID)
	if err != nil {
		t.Fatalf("count completed: %v", err)
	}
	if n != 1 {
		t.Fatalf("completed count = %d, want 1", n)
	}
}

func TestStoreDetailJoins(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()
	customerID, mechanicID, serviceID := seedParties(t, db)

	created, err := store.Insert(ctx, &Booking{
		Type: "Oil Change", Location: "Nairobi CBD", Status: StatusPending,
		CustomerID: customerID, MechanicID: &mechanicID, ServiceID: &serviceID,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	d, err := store.GetDetail(ctx, created.ID)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if d.Customer.Name != "Alice Johnson" {
		t.Errorf("customer name = %q", d.Customer.Name)
	}
	if d.Mechanic == nil || d.Mechanic.Name != "Joe Garage" {
		t.Errorf("mechanic join = %+v", d.Mechanic)
	}
	if d.ServiceName == nil || *d.ServiceName != "Oil Change" {
		t.Errorf("service join = %v", d.ServiceName)
	}

	byMech, err := store.ListByMechanic(ctx, mechanicID)
	if err != nil {
		t.Fatalf("list by mechanic: %v", err)
	}
	if len(byMech) != 1 || byMech[0].ID != created.ID {
		t.Fatalf("list by mechanic = %+v", byMech)
	}
}
