package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wallysmart/shopping-assistant/internal/domain/list"
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
)

// ListRepository keeps per-user SmartLists and carts in memory
type ListRepository struct {
	mu    sync.RWMutex
	lists map[string][]list.SmartList
	carts map[string][]product.Product
}

// NewListRepository creates an empty list store
func NewListRepository() *ListRepository {
	return &ListRepository{
		lists: make(map[string][]list.SmartList),
		carts: make(map[string][]product.Product),
	}
}

// Lists implements list.Repository
func (r *ListRepository) Lists(ctx context.Context, userID string) ([]list.SmartList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]list.SmartList, len(r.lists[userID]))
	copy(out, r.lists[userID])
	return out, nil
}

// CreateList implements list.Repository
func (r *ListRepository) CreateList(ctx context.Context, userID, name string) (*list.SmartList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	newList := list.SmartList{
		ID:        uuid.New().String(),
		Name:      name,
		Items:     []list.SmartListItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.lists[userID] = append(r.lists[userID], newList)
	return &newList, nil
}

// DeleteList implements list.Repository
func (r *ListRepository) DeleteList(ctx context.Context, userID, listID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userLists := r.lists[userID]
	for i, l := range userLists {
		if l.ID == listID {
			r.lists[userID] = append(userLists[:i], userLists[i+1:]...)
			return nil
		}
	}
	return ErrListNotFound
}

// AddItem implements list.Repository
func (r *ListRepository) AddItem(ctx context.Context, userID, listID string, p product.Product, quantity int, note string) (*list.SmartListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}
	userLists := r.lists[userID]
	for i := range userLists {
		if userLists[i].ID != listID {
			continue
		}
		item := list.SmartListItem{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Product:   p,
			Quantity:  quantity,
			Note:      note,
			AddedAt:   time.Now(),
		}
		userLists[i].Items = append(userLists[i].Items, item)
		userLists[i].UpdatedAt = time.Now()
		return &item, nil
	}
	return nil, ErrListNotFound
}

// RemoveItem implements list.Repository
func (r *ListRepository) RemoveItem(ctx context.Context, userID, listID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userLists := r.lists[userID]
	for i := range userLists {
		if userLists[i].ID != listID {
			continue
		}
		items := userLists[i].Items
		for j, item := range items {
			if item.ID == itemID {
				userLists[i].Items = append(items[:j], items[j+1:]...)
				userLists[i].UpdatedAt = time.Now()
				return nil
			}
		}
		return ErrItemNotFound
	}
	return ErrListNotFound
}

// Cart implements list.Repository
func (r *ListRepository) Cart(ctx context.Context, userID string) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, len(r.carts[userID]))
	copy(out, r.carts[userID])
	return out, nil
}

// AddToCart implements list.Repository. Adding a product already in
// the cart is a no-op, so repeated clicks never create duplicates.
func (r *ListRepository) AddToCart(ctx context.Context, userID string, p product.Product) error {
	if !p.CartEligible() {
		return ErrOutOfStock
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.carts[userID] {
		if existing.ID == p.ID {
			return nil
		}
	}
	r.carts[userID] = append(r.carts[userID], p)
	return nil
}

// RemoveFromCart implements list.Repository
func (r *ListRepository) RemoveFromCart(ctx context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[userID]
	for i, p := range cart {
		if p.ID == productID {
			r.carts[userID] = append(cart[:i], cart[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// ClearCart implements list.Repository
func (r *ListRepository) ClearCart(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
