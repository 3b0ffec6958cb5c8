// README: Service catalog entities.
package catalog

import (
	"time"

	"mechmatch/internal/types"
)

type Service struct {
	ID        types.ID
	Name      string
	Status    string
	CreatedAt time.Time
}

// MechanicSummary is the projection of a mechanic shown on catalog listings.
type MechanicSummary struct {
	ID             types.ID
	Name           string
	Phone          *string
	GarageLocation *string
	Latitude       *float64
	Longitude      *float64
}

type ServiceWithMechanics struct {
	Service
	Mechanics []MechanicSummary
}
