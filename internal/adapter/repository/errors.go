package repository

import "errors"

// Sentinel errors shared by the in-memory repositories
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailInUse      = errors.New("email already registered")
	ErrListNotFound    = errors.New("list not found")
	ErrItemNotFound    = errors.New("list item not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrStoreNotFound   = errors.New("store not found")
	ErrOutOfStock      = errors.New("product is out of stock")
)
