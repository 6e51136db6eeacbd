package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserView is the list projection of a user; the password never leaves the
// persistence boundary through this shape
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Mail     string `json:"mail"`
	IsActive bool   `json:"is_active"`
}

// UserReader issues side-effect-free queries over non-deleted users.
// Lookup methods return nil when no user matches, never an error.
type UserReader interface {
	GetAllUsers(ctx context.Context) ([]UserView, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsernamePassword(ctx context.Context, username, password string) (*User, error)
	GetByUserName(ctx context.Context, username string) (*User, error)
	GetByUserEmail(ctx context.Context, mail string) (*User, error)
}

// UserWriter mutates users, one transaction per call. DeleteUser performs a
// logical delete: the record is flagged, never removed.
type UserWriter interface {
	AddUser(ctx context.Context, user *User) (bool, error)
	DeleteUser(ctx context.Context, user *User) (bool, error)
}
