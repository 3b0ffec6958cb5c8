// README: Mechanic entity and status definitions.
package mechanic

import (
	"time"

	"mechmatch/internal/types"
)

const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// OfferedService mirrors the {id, name} projection used in mechanic payloads.
type OfferedService struct {
	ID   types.ID
	Name string
}

type Mechanic struct {
	ID             types.ID
	Name           string
	Email          string
	Phone          *string
	Password       string
	ProfilePicture *string
	GarageName     *string
	GarageLocation *string
	Latitude       *float64
	Longitude      *float64
	Status         string
	DocumentPath   *string
	CreatedAt      time.Time
	Services       []OfferedService
}

// Location returns the garage coordinate. Mechanics without one cannot be
// dispatch targets.
func (m *Mechanic) Location() (types.Point, bool) {
	if m.Latitude == nil || m.Longitude == nil {
		return types.Point{}, false
	}
	return types.Point{Lat: *m.Latitude, Lng: *m.Longitude}, true
}
