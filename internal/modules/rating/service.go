// README: Rating service: star validation and booking-derived references.
package rating

import (
	"context"
	"errors"

	"mechmatch/internal/modules/booking"
	"mechmatch/internal/types"
)

var (
	ErrInvalidStars = errors.New("rating must be between 1 and 5")
	ErrNotRatable   = errors.New("booking has no assigned mechanic")
)

type Ratings interface {
	Insert(ctx context.Context, r *Rating) (*Rating, error)
	AverageForMechanic(ctx context.Context, mechanicID types.ID) (float64, int, error)
}

// Bookings is the slice of the booking module used to resolve the rated
// parties; user and mechanic are taken from the booking row, not the request.
type Bookings interface {
	Get(ctx context.Context, id types.ID) (*booking.Booking, error)
}

type Service struct {
	ratings  Ratings
	bookings Bookings
}

func NewService(ratings Ratings, bookings Bookings) *Service {
	return &Service{ratings: ratings, bookings: bookings}
}

type CreateCommand struct {
	BookingID types.ID
	Stars     int
	Comment   *string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Rating, error) {
	if cmd.Stars < 1 || cmd.Stars > 5 {
		return nil, ErrInvalidStars
	}
	b, err := s.bookings.Get(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}
	if b.MechanicID == nil {
		return nil, ErrNotRatable
	}
	return s.ratings.Insert(ctx, &Rating{
		BookingID:  b.ID,
		UserID:     b.CustomerID,
		MechanicID: *b.MechanicID,
		Stars:      cmd.Stars,
		Comment:    cmd.Comment,
	})
}

func (s *Service) AverageForMechanic(ctx context.Context, mechanicID types.ID) (float64, int, error) {
	return s.ratings.AverageForMechanic(ctx, mechanicID)
}
