package product

import (
	"context"
)

// Repository defines catalog lookup operations
type Repository interface {
	// List returns all catalog products
	List(ctx context.Context) ([]Product, error)

	// FindByID returns a single product by its id
	FindByID(ctx context.Context, id string) (*Product, error)

	// Search returns the products whose title or category contains the query
	Search(ctx context.Context, query string) ([]Product, error)
}
