// README: Candidate filter and nearest-mechanic selection.
package dispatch

import (
	"context"
	"errors"
	"time"

	"mechmatch/internal/geo"
	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/types"
)

// ErrNoCandidate is the expected "no mechanics available" business outcome,
// surfaced to the client rather than treated as a server fault.
var ErrNoCandidate = errors.New("no mechanics available for this service")

// MechanicSource is the slice of the mechanic module the filter reads.
type MechanicSource interface {
	OfferingService(ctx context.Context, serviceID types.ID) ([]mechanic.Mechanic, error)
}

// AvailabilityChecker resolves the per-day flag with default-available
// semantics.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, mechanicID types.ID, day string) (bool, error)
}

type Selector struct {
	mechanics    MechanicSource
	availability AvailabilityChecker
	now          func() time.Time
}

func NewSelector(mechanics MechanicSource, availability AvailabilityChecker, now func() time.Time) *Selector {
	if now == nil {
		now = time.Now
	}
	return &Selector{mechanics: mechanics, availability: availability, now: now}
}

// Candidates returns the mechanics that offer the service, are active, have a
// known location, and are available on the given weekday. An empty result is
// not an error; the caller decides how to surface it.
func (s *Selector) Candidates(ctx context.Context, serviceID types.ID, day string) ([]mechanic.Mechanic, error) {
	offering, err := s.mechanics.OfferingService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	candidates := make([]mechanic.Mechanic, 0, len(offering))
	for _, m := range offering {
		if m.Status != mechanic.StatusActive {
			continue
		}
		if _, ok := m.Location(); !ok {
			continue
		}
		available, err := s.availability.IsAvailable(ctx, m.ID, day)
		if err != nil {
			return nil, err
		}
		if !available {
			continue
		}
		candidates = append(candidates, m)
	}
	return candidates, nil
}

// Select picks the nearest candidate for the service as of now. Availability
// is evaluated against the current weekday; there is no scheduling beyond
// immediate dispatch.
func (s *Selector) Select(ctx context.Context, serviceID types.ID, requester types.Point) (*mechanic.Mechanic, error) {
	day := s.now().Weekday().String()
	candidates, err := s.Candidates(ctx, serviceID, day)
	if err != nil {
		return nil, err
	}
	return Nearest(candidates, requester)
}

// Nearest returns the candidate minimising haversine distance to the
// requester. Exact distance ties break towards the lowest mechanic id so
// repeated calls are deterministic regardless of input order.
func Nearest(candidates []mechanic.Mechanic, requester types.Point) (*mechanic.Mechanic, error) {
	var best *mechanic.Mechanic
	var bestDist float64
	for i := range candidates {
		m := &candidates[i]
		p, ok := m.Location()
		if !ok {
			continue
		}
		d := geo.DistanceKm(requester, p)
		if best == nil || d < bestDist || (d == bestDist && m.ID < best.ID) {
			best = m
			bestDist = d
		}
	}
	if best == nil {
		return nil, ErrNoCandidate
	}
	out := *best
	return &out, nil
}
