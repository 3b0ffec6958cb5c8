// README: Dispatch selection tests (candidate filter + nearest pick).
package dispatch

import (
	"context"
	"testing"
	"time"

	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/types"
)

type fakeMechanics struct {
	mechanics []mechanic.Mechanic
}

func (f *fakeMechanics) OfferingService(ctx context.Context, serviceID types.ID) ([]mechanic.Mechanic, error) {
	return f.mechanics, nil
}

type fakeAvailability struct {
	unavailable map[types.ID]bool
}

func (f *fakeAvailability) IsAvailable(ctx context.Context, mechanicID types.ID, day string) (bool, error) {
	return !f.unavailable[mechanicID], nil
}

func mech(id types.ID, lat, lng float64) mechanic.Mechanic {
	return mechanic.Mechanic{ID: id, Status: mechanic.StatusActive, Latitude: &lat, Longitude: &lng}
}

// fixedMonday keeps Select's weekday stable across test runs.
func fixedMonday() time.Time {
	return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) // a Monday
}

func TestCandidatesFiltering(t *testing.T) {
	blocked := mech(2, -1.29, 36.82)
	blocked.Status = mechanic.StatusBlocked
	noLocation := mechanic.Mechanic{ID: 3, Status: mechanic.StatusActive}

	src := &fakeMechanics{mechanics: []mechanic.Mechanic{
		mech(1, -1.28333, 36.81667),
		blocked,
		noLocation,
		mech(4, -1.30, 36.83),
	}}
	avail := &fakeAvailability{unavailable: map[types.ID]bool{4: true}}
	sel := NewSelector(src, avail, fixedMonday)

	got, err := sel.Candidates(context.Background(), 10, "Monday")
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("candidates = %v, want only mechanic 1", got)
	}
}

func TestSelectPicksNearest(t *testing.T) {
	src := &fakeMechanics{mechanics: []mechanic.Mechanic{
		mech(1, -1.28333, 36.81667), // ~0.19 km from the requester
		mech(2, -1.2900, 36.8200),   // ~0.65 km
	}}
	sel := NewSelector(src, &fakeAvailability{}, fixedMonday)

	got, err := sel.Select(context.Background(), 10, types.Point{Lat: -1.2850, Lng: 36.8170})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("selected mechanic %d, want 1", got.ID)
	}
}

func TestSelectSkipsUnavailableNearest(t *testing.T) {
	src := &fakeMechanics{mechanics: []mechanic.Mechanic{
		mech(1, -1.28333, 36.81667),
		mech(2, -1.2900, 36.8200),
	}}
	avail := &fakeAvailability{unavailable: map[types.ID]bool{1: true}}
	sel := NewSelector(src, avail, fixedMonday)

	got, err := sel.Select(context.Background(), 10, types.Point{Lat: -1.2850, Lng: 36.8170})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("selected mechanic %d, want 2", got.ID)
	}
}

func TestSelectNoCandidates(t *testing.T) {
	sel := NewSelector(&fakeMechanics{}, &fakeAvailability{}, fixedMonday)

	_, err := sel.Select(context.Background(), 10, types.Point{Lat: -1.2850, Lng: 36.8170})
	if err != ErrNoCandidate {
		t.Fatalf("err = %v, want ErrNoCandidate", err)
	}
}

// TestNearestTieBreak pins the deterministic pick when two mechanics share a
// coordinate: lowest id wins regardless of slice order.
func TestNearestTieBreak(t *testing.T) {
	requester := types.Point{Lat: -1.2850, Lng: 36.8170}
	a := mech(7, -1.28333, 36.81667)
	b := mech(3, -1.28333, 36.81667)

	for _, candidates := range [][]mechanic.Mechanic{{a, b}, {b, a}} {
		got, err := Nearest(candidates, requester)
		if err != nil {
			t.Fatalf("nearest: %v", err)
		}
		if got.ID != 3 {
			t.Fatalf("nearest tie broke to %d, want 3", got.ID)
		}
	}
}

func TestNearestIgnoresMissingLocation(t *testing.T) {
	candidates := []mechanic.Mechanic{
		{ID: 1, Status: mechanic.StatusActive},
		mech(2, -1.2900, 36.8200),
	}
	got, err := Nearest(candidates, types.Point{Lat: -1.2850, Lng: 36.8170})
	if err != nil {
		t.Fatalf("nearest: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("nearest = %d, want 2", got.ID)
	}
}
