// README: Availability service tests with an in-memory record store.
package availability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"mechmatch/internal/types"
)

type dayKey struct {
	mechanicID types.ID
	day        string
}

type memRecords struct {
	flags map[dayKey]bool
}

func newMemRecords() *memRecords {
	return &memRecords{flags: make(map[dayKey]bool)}
}

func (m *memRecords) Find(ctx context.Context, mechanicID types.ID, day string) (bool, bool, error) {
	v, ok := m.flags[dayKey{mechanicID, day}]
	return v, ok, nil
}

func (m *memRecords) Upsert(ctx context.Context, mechanicID types.ID, day string, available bool) error {
	m.flags[dayKey{mechanicID, day}] = available
	return nil
}

func (m *memRecords) ListByMechanic(ctx context.Context, mechanicID types.ID) ([]Record, error) {
	var out []Record
	for k, v := range m.flags {
		if k.mechanicID == mechanicID {
			out = append(out, Record{MechanicID: mechanicID, Day: k.day, Available: v})
		}
	}
	return out, nil
}

type memDirectory struct {
	ids map[types.ID]bool
}

func (m *memDirectory) Exists(ctx context.Context, id types.ID) (bool, error) {
	return m.ids[id], nil
}

func newTestService(records Records) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(records, &memDirectory{ids: map[types.ID]bool{1: true}}, log)
}

func TestIsAvailableDefaultsTrue(t *testing.T) {
	svc := newTestService(newMemRecords())

	got, err := svc.IsAvailable(context.Background(), 1, "Monday")
	if err != nil {
		t.Fatalf("is available: %v", err)
	}
	if !got {
		t.Fatal("no explicit row should mean available")
	}
}

func TestSetBatchLastWriteWins(t *testing.T) {
	records := newMemRecords()
	svc := newTestService(records)
	ctx := context.Background()

	entries := []Entry{
		{Day: "Monday", Available: false},
		{Day: "Monday", Available: true},
		{Day: "Sunday", Available: false},
	}
	if err := svc.SetBatch(ctx, 1, entries); err != nil {
		t.Fatalf("set batch: %v", err)
	}

	if got, _ := svc.IsAvailable(ctx, 1, "Monday"); !got {
		t.Error("Monday should reflect the last entry in the batch")
	}
	if got, _ := svc.IsAvailable(ctx, 1, "Sunday"); got {
		t.Error("Sunday should be unavailable")
	}
}

// Unknown day names are dropped silently; the rest of the batch still applies.
func TestSetBatchSkipsUnknownDays(t *testing.T) {
	records := newMemRecords()
	svc := newTestService(records)
	ctx := context.Background()

	entries := []Entry{
		{Day: "Funday", Available: false},
		{Day: "monday", Available: false}, // wrong case, also skipped
		{Day: "Friday", Available: false},
	}
	if err := svc.SetBatch(ctx, 1, entries); err != nil {
		t.Fatalf("set batch: %v", err)
	}

	if len(records.flags) != 1 {
		t.Fatalf("stored rows = %d, want 1", len(records.flags))
	}
	if got, _ := svc.IsAvailable(ctx, 1, "Friday"); got {
		t.Error("Friday should be unavailable")
	}
}

func TestSetBatchUnknownMechanic(t *testing.T) {
	svc := newTestService(newMemRecords())

	err := svc.SetBatch(context.Background(), 99, []Entry{{Day: "Monday", Available: false}})
	if !errors.Is(err, ErrMechanicNotFound) {
		t.Fatalf("err = %v, want ErrMechanicNotFound", err)
	}
}

func TestWeekDefaultsMissingDays(t *testing.T) {
	records := newMemRecords()
	svc := newTestService(records)
	ctx := context.Background()

	if err := svc.SetBatch(ctx, 1, []Entry{{Day: "Wednesday", Available: false}}); err != nil {
		t.Fatalf("set batch: %v", err)
	}

	week, err := svc.Week(ctx, 1)
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("week length = %d, want 7", len(week))
	}
	for i, e := range week {
		if e.Day != Weekdays[i] {
			t.Errorf("week[%d].Day = %s, want %s", i, e.Day, Weekdays[i])
		}
		wantAvailable := e.Day != "Wednesday"
		if e.Available != wantAvailable {
			t.Errorf("week[%d] (%s) available = %v, want %v", i, e.Day, e.Available, wantAvailable)
		}
	}
}
