// README: Booking aggregate, status definitions, and the flat action table.
package booking

import (
	"time"

	"mechmatch/internal/types"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
)

// Booking keeps a denormalized copy of the service name in Type so history
// shows the name as it was at creation time, even after a rename. MechanicID
// is assigned exactly once, at creation, from the dispatch outcome; bookings
// are never re-dispatched.
type Booking struct {
	ID         types.ID
	Type       string
	Location   string
	Latitude   *float64
	Longitude  *float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CustomerID types.ID
	MechanicID *types.ID
	ServiceID  *types.ID
}

// actionStatus maps the labels accepted by the action endpoint to the status
// they set.
var actionStatus = map[string]Status{
	"Accepted":  StatusAccepted,
	"Rejected":  StatusRejected,
	"Completed": StatusCompleted,
}

func StatusForAction(action string) (Status, bool) {
	s, ok := actionStatus[action]
	return s, ok
}

// AllowedTransitions records the flat action model: every recognised action is
// applied whatever the current status, so a Completed booking can still be
// Rejected. Dispatchers use these reversals as manual overrides; tightening
// the table would break them.
var AllowedTransitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusRejected, StatusCompleted},
	StatusAccepted:  {StatusAccepted, StatusRejected, StatusCompleted},
	StatusRejected:  {StatusAccepted, StatusRejected, StatusCompleted},
	StatusCompleted: {StatusAccepted, StatusRejected, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Party is the joined projection of a referenced customer or mechanic.
type Party struct {
	ID    types.ID
	Name  string
	Phone *string
}

// Detail is a booking joined with its customer, mechanic, and service rows
// for the read endpoints.
type Detail struct {
	Booking
	Customer    Party
	Mechanic    *Party
	ServiceName *string
}
