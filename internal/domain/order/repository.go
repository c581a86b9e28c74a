package order

import (
	"context"
)

// Repository defines order storage operations
type Repository interface {
	// Create records a new order
	Create(ctx context.Context, o *Order) error

	// List returns a user's orders, newest first
	List(ctx context.Context, userID string) ([]Order, error)

	// FindByID returns a single order of a user
	FindByID(ctx context.Context, userID, id string) (*Order, error)
}
