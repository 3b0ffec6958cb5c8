// README: Customer account entity.
package user

import (
	"time"

	"mechmatch/internal/types"
)

type User struct {
	ID             types.ID
	Name           string
	Email          string
	Phone          *string
	ProfilePicture *string
	Password       string
	Status         string
	CreatedAt      time.Time
}
