package store

import (
	"context"
)

// Repository defines store lookup and current-store selection
type Repository interface {
	// List returns the known stores
	List(ctx context.Context) ([]Store, error)

	// Current returns the store the session is shopping at
	Current(ctx context.Context) (*Store, error)

	// SetCurrent switches the session to another store
	SetCurrent(ctx context.Context, id string) (*Store, error)
}
