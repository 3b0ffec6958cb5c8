// README: Event names and room keys for the realtime channel.
package realtime

import (
	"fmt"

	"mechmatch/internal/types"
)

const (
	EventNewBooking     = "NEW_BOOKING"
	EventBookingUpdated = "BOOKING_UPDATED"
)

func MechanicRoom(id types.ID) string {
	return fmt.Sprintf("mechanic:%d", id)
}

func CustomerRoom(id types.ID) string {
	return fmt.Sprintf("customer:%d", id)
}
