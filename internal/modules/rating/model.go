// README: Rating entity.
package rating

import (
	"time"

	"mechmatch/internal/types"
)

type Rating struct {
	ID         types.ID
	BookingID  types.ID
	UserID     types.ID
	MechanicID types.ID
	Stars      int
	Comment    *string
	CreatedAt  time.Time
}
