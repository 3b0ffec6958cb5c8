// README: Seeds the schema, the service catalog, and a demo data set.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mechmatch/internal/config"
	"mechmatch/internal/infra"
	"mechmatch/internal/modules/availability"
	"mechmatch/internal/modules/catalog"
	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/modules/user"
	"mechmatch/internal/types"
)

var serviceNames = []string{
	"Oil Change",
	"Brake Repair",
	"Tire Replacement",
	"Engine Diagnostics",
	"Battery Replacement",
	"Transmission Repair",
	"Suspension Repair",
	"Air Conditioning",
	"Electrical Systems",
	"Car Wash & Detailing",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	pool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(filepath.Join("migrations", "0001_init.sql"))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	catalogStore := catalog.NewStore(pool)
	serviceIDs := make(map[string]types.ID, len(serviceNames))
	existing, err := catalogStore.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range existing {
		serviceIDs[s.Name] = s.ID
	}
	for _, name := range serviceNames {
		if _, ok := serviceIDs[name]; ok {
			continue
		}
		svc, err := catalogStore.Insert(ctx, name)
		if err != nil {
			log.Fatalf("seed service %q: %v", name, err)
		}
		serviceIDs[name] = svc.ID
	}

	userStore := user.NewStore(pool)
	seedUser(ctx, userStore, "Alice Johnson", "alice@example.com", "0712345678", "password123")
	seedUser(ctx, userStore, "Bob Williams", "bob@example.com", "0723456789", "password123")

	mechanicStore := mechanic.NewStore(pool)
	availabilityStore := availability.NewStore(pool)

	seedMechanic(ctx, mechanicStore, availabilityStore, mechanicSeed{
		name:     "Joe Garage",
		email:    "joe@garage.com",
		phone:    "0734567890",
		garage:   "Joe's Auto Garage",
		location: "Nairobi CBD",
		lat:      -1.28333,
		lng:      36.81667,
		services: []types.ID{
			serviceIDs["Oil Change"],
			serviceIDs["Brake Repair"],
			serviceIDs["Engine Diagnostics"],
		},
	})
	seedMechanic(ctx, mechanicStore, availabilityStore, mechanicSeed{
		name:     "QuickFix Auto",
		email:    "quickfix@auto.com",
		phone:    "0745678901",
		garage:   "QuickFix Auto Center",
		location: "Westlands, Nairobi",
		lat:      -1.2900,
		lng:      36.8200,
		services: []types.ID{
			serviceIDs["Oil Change"],
			serviceIDs["Tire Replacement"],
			serviceIDs["Battery Replacement"],
		},
	})

	fmt.Println("seed complete")
}

func seedUser(ctx context.Context, store *user.Store, name, email, phone, password string) {
	_, err := store.Insert(ctx, &user.User{
		Name:     name,
		Email:    email,
		Phone:    &phone,
		Password: password,
		Status:   "active",
	})
	if err != nil && !errors.Is(err, user.ErrConflict) {
		log.Fatalf("seed user %q: %v", email, err)
	}
}

type mechanicSeed struct {
	name     string
	email    string
	phone    string
	garage   string
	location string
	lat, lng float64
	services []types.ID
}

func seedMechanic(ctx context.Context, store *mechanic.Store, avail *availability.Store, s mechanicSeed) {
	m, err := store.Insert(ctx, &mechanic.Mechanic{
		Name:           s.name,
		Email:          s.email,
		Phone:          &s.phone,
		Password:       "password123",
		GarageName:     &s.garage,
		GarageLocation: &s.location,
		Latitude:       &s.lat,
		Longitude:      &s.lng,
		Status:         mechanic.StatusActive,
	}, s.services)
	if err != nil {
		if errors.Is(err, mechanic.ErrConflict) {
			return
		}
		log.Fatalf("seed mechanic %q: %v", s.email, err)
	}
	if err := avail.InsertDefaults(ctx, m.ID); err != nil {
		log.Fatalf("seed availability for %q: %v", s.email, err)
	}
}
