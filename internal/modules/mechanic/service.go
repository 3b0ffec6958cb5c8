// README: Mechanic account service: create, profile view, nearby listing.
package mechanic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mechmatch/internal/types"
)

var (
	ErrNotFound   = errors.New("mechanic not found")
	ErrConflict   = errors.New("email or phone already exists")
	ErrBadRequest = errors.New("bad request")
)

// CompletedJobs is the slice of the booking module the profile view needs.
type CompletedJobs interface {
	CountCompletedByMechanic(ctx context.Context, mechanicID types.ID) (int, error)
}

// Ratings is the slice of the rating module the profile view needs.
type Ratings interface {
	AverageForMechanic(ctx context.Context, mechanicID types.ID) (float64, int, error)
}

type Service struct {
	store   *Store
	geo     *GeoIndex
	jobs    CompletedJobs
	ratings Ratings
	log     *slog.Logger
}

func NewService(store *Store, geo *GeoIndex, jobs CompletedJobs, ratings Ratings, log *slog.Logger) *Service {
	return &Service{store: store, geo: geo, jobs: jobs, ratings: ratings, log: log}
}

type CreateCommand struct {
	Name           string
	Email          string
	Phone          *string
	Password       string
	ProfilePicture *string
	GarageName     *string
	GarageLocation *string
	Latitude       *float64
	Longitude      *float64
	DocumentPath   *string
	ServiceIDs     []types.ID
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Mechanic, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, ErrBadRequest
	}
	m, err := s.store.Insert(ctx, &Mechanic{
		Name:           cmd.Name,
		Email:          cmd.Email,
		Phone:          cmd.Phone,
		Password:       cmd.Password,
		ProfilePicture: cmd.ProfilePicture,
		GarageName:     cmd.GarageName,
		GarageLocation: cmd.GarageLocation,
		Latitude:       cmd.Latitude,
		Longitude:      cmd.Longitude,
		DocumentPath:   cmd.DocumentPath,
	}, cmd.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if p, ok := m.Location(); ok {
		if err := s.geo.Add(ctx, m.ID, p); err != nil {
			// The listing index lags until the next write; dispatch reads Postgres.
			s.log.Warn("geo index add failed", "mechanic_id", m.ID, "err", err)
		}
	}
	return m, nil
}

type Profile struct {
	Mechanic
	JobsCompleted int
	Rating        float64
	AboutShop     string
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Profile, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.CountCompletedByMechanic(ctx, id)
	if err != nil {
		return nil, err
	}
	avg, _, err := s.ratings.AverageForMechanic(ctx, id)
	if err != nil {
		return nil, err
	}
	about := "Professional auto services"
	if m.GarageLocation != nil {
		about = fmt.Sprintf("Professional auto services at %s", *m.GarageLocation)
	}
	return &Profile{Mechanic: *m, JobsCompleted: jobs, Rating: avg, AboutShop: about}, nil
}

func (s *Service) Exists(ctx context.Context, id types.ID) (bool, error) {
	return s.store.Exists(ctx, id)
}

// Nearby lists active mechanics within radiusKm of p, closest first.
func (s *Service) Nearby(ctx context.Context, p types.Point, radiusKm float64) ([]Mechanic, error) {
	ids, err := s.geo.Nearby(ctx, p, radiusKm)
	if err != nil {
		return nil, err
	}
	mechanics, err := s.store.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	active := mechanics[:0]
	for _, m := range mechanics {
		if m.Status == StatusActive {
			active = append(active, m)
		}
	}
	return active, nil
}
