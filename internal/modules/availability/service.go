// README: Availability service: default-available resolution and batch updates.
package availability

import (
	"context"
	"errors"
	"log/slog"

	"mechmatch/internal/types"
)

var ErrMechanicNotFound = errors.New("mechanic not found")

type Records interface {
	Find(ctx context.Context, mechanicID types.ID, day string) (available bool, found bool, err error)
	Upsert(ctx context.Context, mechanicID types.ID, day string, available bool) error
	ListByMechanic(ctx context.Context, mechanicID types.ID) ([]Record, error)
}

// MechanicDirectory is the slice of the mechanic module needed for existence
// checks.
type MechanicDirectory interface {
	Exists(ctx context.Context, id types.ID) (bool, error)
}

type Service struct {
	records   Records
	mechanics MechanicDirectory
	log       *slog.Logger
}

func NewService(records Records, mechanics MechanicDirectory, log *slog.Logger) *Service {
	return &Service{records: records, mechanics: mechanics, log: log}
}

// IsAvailable resolves the flag for (mechanic, day). No explicit row means
// available.
func (s *Service) IsAvailable(ctx context.Context, mechanicID types.ID, day string) (bool, error) {
	available, found, err := s.records.Find(ctx, mechanicID, day)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}
	return available, nil
}

// SetBatch upserts the supplied day flags. Entries with unrecognised day
// names are skipped, not rejected; clients have relied on that leniency since
// the schedule feature shipped.
func (s *Service) SetBatch(ctx context.Context, mechanicID types.ID, entries []Entry) error {
	exists, err := s.mechanics.Exists(ctx, mechanicID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMechanicNotFound
	}
	for _, e := range entries {
		if !ValidDay(e.Day) {
			s.log.Debug("skipping unknown weekday", "mechanic_id", mechanicID, "day", e.Day)
			continue
		}
		if err := s.records.Upsert(ctx, mechanicID, e.Day, e.Available); err != nil {
			return err
		}
	}
	return nil
}

// Week returns seven entries in Monday..Sunday order, defaulting days without
// an explicit row to available.
func (s *Service) Week(ctx context.Context, mechanicID types.ID) ([]Entry, error) {
	exists, err := s.mechanics.Exists(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMechanicNotFound
	}
	records, err := s.records.ListByMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	explicit := make(map[string]bool, len(records))
	for _, r := range records {
		explicit[r.Day] = r.Available
	}
	week := make([]Entry, 0, len(Weekdays))
	for _, day := range Weekdays {
		available := true
		if v, ok := explicit[day]; ok {
			available = v
		}
		week = append(week, Entry{Day: day, Available: available})
	}
	return week, nil
}
