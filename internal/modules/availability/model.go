// README: Weekly availability entities and canonical weekday names.
package availability

import "mechmatch/internal/types"

// Weekdays lists the canonical day names in week order. They match
// time.Weekday.String() so "today" resolves without translation.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func ValidDay(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// Record is an explicit per-day override row. Absence of a row means the
// mechanic is available that day.
type Record struct {
	ID         types.ID
	MechanicID types.ID
	Day        string
	Available  bool
}

// Entry is a (day, flag) pair as exchanged with clients.
type Entry struct {
	Day       string
	Available bool
}
