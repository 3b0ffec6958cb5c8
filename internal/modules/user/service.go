// README: Customer account service: registration, credential check, profile.
package user

import (
	"context"
	"errors"

	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/types"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrConflict           = errors.New("email or phone already exists")
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Accounts interface {
	Insert(ctx context.Context, u *User) (*User, error)
	Get(ctx context.Context, id types.ID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	BookingsCount(ctx context.Context, id types.ID) (int, error)
}

// Mechanics is the slice of the mechanic module the login chain needs.
type Mechanics interface {
	GetByEmail(ctx context.Context, email string) (*mechanic.Mechanic, error)
}

type Service struct {
	accounts  Accounts
	mechanics Mechanics
}

func NewService(accounts Accounts, mechanics Mechanics) *Service {
	return &Service{accounts: accounts, mechanics: mechanics}
}

type RegisterCommand struct {
	Name           string
	Email          string
	Phone          *string
	Password       string
	ProfilePicture *string
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, ErrBadRequest
	}
	return s.accounts.Insert(ctx, &User{
		Name:           cmd.Name,
		Email:          cmd.Email,
		Phone:          cmd.Phone,
		Password:       cmd.Password,
		ProfilePicture: cmd.ProfilePicture,
	})
}

const (
	RoleUser     = "user"
	RoleMechanic = "mechanic"
)

type LoginResult struct {
	Role     string
	User     *User
	Mechanic *mechanic.Mechanic
}

// Login checks the stored plaintext password, trying customer accounts first
// and falling back to mechanic accounts on the same email.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.accounts.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if u != nil && u.Password == password {
		return &LoginResult{Role: RoleUser, User: u}, nil
	}

	m, err := s.mechanics.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, mechanic.ErrNotFound) {
		return nil, err
	}
	if m != nil && m.Password == password {
		return &LoginResult{Role: RoleMechanic, Mechanic: m}, nil
	}
	return nil, ErrInvalidCredentials
}

type Profile struct {
	User
	Membership    string
	BookingsCount int
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Profile, error) {
	u, err := s.accounts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.accounts.BookingsCount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Profile{User: *u, Membership: "Premium Member", BookingsCount: n}, nil
}
