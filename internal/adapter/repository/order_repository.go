package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wallysmart/shopping-assistant/internal/domain/list"
	"github.com/wallysmart/shopping-assistant/internal/domain/order"
)

// OrderRepository keeps orders in memory, seeded with a small demo
// history for every user.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string][]order.Order
}

// NewOrderRepository creates the order store
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string][]order.Order)}
}

// Create implements order.Repository
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureSeedLocked(o.UserID)
	r.orders[o.UserID] = append(r.orders[o.UserID], *o)
	return nil
}

// List implements order.Repository, newest first
func (r *OrderRepository) List(ctx context.Context, userID string) ([]order.Order, error) {
	r.mu.Lock()
	r.ensureSeedLocked(userID)
	userOrders := r.orders[userID]
	r.mu.Unlock()

	out := make([]order.Order, len(userOrders))
	copy(out, userOrders)
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out, nil
}

// FindByID implements order.Repository
func (r *OrderRepository) FindByID(ctx context.Context, userID, id string) (*order.Order, error) {
	r.mu.Lock()
	r.ensureSeedLocked(userID)
	userOrders := r.orders[userID]
	r.mu.Unlock()

	for _, o := range userOrders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, ErrOrderNotFound
}

// ensureSeedLocked fills a user's empty history with the demo orders.
// Caller must hold the write lock.
func (r *OrderRepository) ensureSeedLocked(userID string) {
	if _, ok := r.orders[userID]; ok {
		return
	}
	r.orders[userID] = seedOrders(userID)
}

func seedOrders(userID string) []order.Order {
	shippedDelivery := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	deliveredDelivery := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	return []order.Order{
		{
			ID:             "ORD-001",
			UserID:         userID,
			Items:          []list.SmartListItem{},
			Total:          47.83,
			Status:         order.StatusShipped,
			OrderDate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			DeliveryDate:   &shippedDelivery,
			TrackingNumber: "WM1234567890",
		},
		{
			ID:        "ORD-002",
			UserID:    userID,
			Items:     []list.SmartListItem{},
			Total:     23.45,
			Status:    order.StatusProcessing,
			OrderDate: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "ORD-003",
			UserID:       userID,
			Items:        []list.SmartListItem{},
			Total:        156.78,
			Status:       order.StatusDelivered,
			OrderDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			DeliveryDate: &deliveredDelivery,
		},
	}
}
