package user

import (
	"context"
)

// Repository defines user account storage operations
type Repository interface {
	// Create registers a new user
	Create(ctx context.Context, u *User) error

	// FindByID looks a user up by id
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail looks a user up by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile changes
	Update(ctx context.Context, u *User) error

	// UpdateLastLogin stamps the user's last login time
	UpdateLastLogin(ctx context.Context, id string) error
}
