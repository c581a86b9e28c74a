package list

import (
	"context"

	"github.com/wallysmart/shopping-assistant/internal/domain/product"
)

// Repository holds the per-user SmartLists and cart
type Repository interface {
	// Lists returns all SmartLists of a user
	Lists(ctx context.Context, userID string) ([]SmartList, error)

	// CreateList creates a new named SmartList
	CreateList(ctx context.Context, userID, name string) (*SmartList, error)

	// DeleteList removes a SmartList
	DeleteList(ctx context.Context, userID, listID string) error

	// AddItem appends a product entry to a SmartList
	AddItem(ctx context.Context, userID, listID string, p product.Product, quantity int, note string) (*SmartListItem, error)

	// RemoveItem removes an entry from a SmartList
	RemoveItem(ctx context.Context, userID, listID, itemID string) error

	// Cart returns the user's cart contents
	Cart(ctx context.Context, userID string) ([]product.Product, error)

	// AddToCart adds a product to the cart. Adding an id already present
	// is a no-op; out-of-stock products are rejected.
	AddToCart(ctx context.Context, userID string, p product.Product) error

	// RemoveFromCart removes a product from the cart
	RemoveFromCart(ctx context.Context, userID, productID string) error

	// ClearCart empties the cart
	ClearCart(ctx context.Context, userID string) error
}
