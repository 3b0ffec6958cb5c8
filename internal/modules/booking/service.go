// README: Booking orchestrator: dispatch on create, flat actions, realtime emits.
package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mechmatch/internal/modules/catalog"
	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/modules/user"
	"mechmatch/internal/realtime"
	"mechmatch/internal/types"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrInvalidAction    = errors.New("invalid action")
	ErrCustomerNotFound = errors.New("user not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrBadRequest       = errors.New("bad request")
)

type Repository interface {
	Insert(ctx context.Context, b *Booking) (*Booking, error)
	Get(ctx context.Context, id types.ID) (*Booking, error)
	UpdateStatus(ctx context.Context, id types.ID, status Status, updatedAt time.Time) (*Booking, error)
}

// Users and Services are the read-only slices of the account collaborators
// the orchestrator needs.
type Users interface {
	Get(ctx context.Context, id types.ID) (*user.User, error)
}

type Services interface {
	Get(ctx context.Context, id types.ID) (*catalog.Service, error)
}

type Dispatcher interface {
	Select(ctx context.Context, serviceID types.ID, requester types.Point) (*mechanic.Mechanic, error)
}

// Notifier fans a payload out to the members of a room. Delivery is
// best-effort; the booking row is the durable source of truth.
type Notifier interface {
	Emit(room, event string, payload any)
}

type Service struct {
	repo     Repository
	users    Users
	services Services
	dispatch Dispatcher
	notify   Notifier
	now      func() time.Time
	log      *slog.Logger
}

func NewService(repo Repository, users Users, services Services, dispatcher Dispatcher, notify Notifier, now func() time.Time, log *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, users: users, services: services, dispatch: dispatcher, notify: notify, now: now, log: log}
}

type CreateCommand struct {
	CustomerID types.ID
	ServiceID  types.ID
	Requester  types.Point
	Location   string
}

// Create validates the referenced customer and service, dispatches the
// nearest available mechanic, persists the Pending booking, and only then
// notifies the mechanic's room.
//
// Two concurrent creates can both select the same mechanic between candidate
// filtering and commit; nothing serializes them. A per-mechanic advisory lock
// would close that window if double-dispatch ever becomes a real problem.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, *mechanic.Mechanic, error) {
	if cmd.Location == "" {
		return nil, nil, ErrBadRequest
	}
	cust, err := s.users.Get(ctx, cmd.CustomerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil, ErrCustomerNotFound
		}
		return nil, nil, err
	}
	svc, err := s.services.Get(ctx, cmd.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, nil, ErrServiceNotFound
		}
		return nil, nil, err
	}

	m, err := s.dispatch.Select(ctx, svc.ID, cmd.Requester)
	if err != nil {
		return nil, nil, err
	}

	lat, lng := cmd.Requester.Lat, cmd.Requester.Lng
	created, err := s.repo.Insert(ctx, &Booking{
		Type:       svc.Name,
		Location:   cmd.Location,
		Latitude:   &lat,
		Longitude:  &lng,
		Status:     StatusPending,
		CustomerID: cust.ID,
		MechanicID: &m.ID,
		ServiceID:  &svc.ID,
	})
	if err != nil {
		return nil, nil, err
	}

	// Emit strictly after the durable commit so a rolled-back booking is
	// never announced.
	s.notify.Emit(realtime.MechanicRoom(m.ID), realtime.EventNewBooking, map[string]any{
		"id":         created.ID,
		"type":       created.Type,
		"location":   created.Location,
		"status":     created.Status,
		"customer":   map[string]any{"id": cust.ID, "name": cust.Name},
		"created_at": created.CreatedAt.UTC().Format(time.RFC3339),
	})
	s.log.Info("booking created", "booking_id", created.ID, "mechanic_id", m.ID, "service", created.Type)
	return created, m, nil
}

// Act applies one of the recognised action labels to the booking. The action
// model is flat: the current status never restricts which action is accepted.
func (s *Service) Act(ctx context.Context, id types.ID, action string) (*Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	target, ok := StatusForAction(action)
	if !ok {
		return nil, ErrInvalidAction
	}
	if !CanTransition(b.Status, target) {
		return nil, ErrInvalidAction
	}

	updated, err := s.repo.UpdateStatus(ctx, id, target, s.now().UTC())
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"id":          updated.ID,
		"type":        updated.Type,
		"status":      updated.Status,
		"customer_id": updated.CustomerID,
		"mechanic_id": updated.MechanicID,
		"updated_at":  updated.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if updated.MechanicID != nil {
		s.notify.Emit(realtime.MechanicRoom(*updated.MechanicID), realtime.EventBookingUpdated, payload)
	}
	s.notify.Emit(realtime.CustomerRoom(updated.CustomerID), realtime.EventBookingUpdated, payload)
	s.log.Info("booking action applied", "booking_id", updated.ID, "action", action)
	return updated, nil
}
