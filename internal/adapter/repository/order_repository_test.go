package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wallysmart/shopping-assistant/internal/domain/order"
)

func TestOrderListSeededNewestFirst(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	orders, err := repo.List(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 seeded orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].OrderDate.After(orders[i-1].OrderDate) {
			t.Fatalf("orders not sorted newest first at index %d", i)
		}
	}
	if orders[0].ID != "ORD-002" {
		t.Errorf("newest order = %s, want ORD-002", orders[0].ID)
	}
}

func TestOrderFindByID(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o, err := repo.FindByID(ctx, "user-1", "ORD-001")
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != order.StatusShipped {
		t.Errorf("status = %q", o.Status)
	}
	if o.TrackingNumber != "WM1234567890" {
		t.Errorf("tracking = %q", o.TrackingNumber)
	}
	if !o.Active() {
		t.Error("shipped order should be active")
	}

	delivered, err := repo.FindByID(ctx, "user-1", "ORD-003")
	if err != nil {
		t.Fatal(err)
	}
	if delivered.Active() {
		t.Error("delivered order should not be active")
	}

	if _, err := repo.FindByID(ctx, "user-1", "ORD-999"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderCreate(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	created := &order.Order{
		ID:        "ORD-NEW",
		UserID:    "user-1",
		Total:     12.34,
		Status:    order.StatusPending,
		OrderDate: time.Now(),
	}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatal(err)
	}

	orders, _ := repo.List(ctx, "user-1")
	if len(orders) != 4 {
		t.Fatalf("expected 4 orders after create, got %d", len(orders))
	}
	if orders[0].ID != "ORD-NEW" {
		t.Errorf("newest order = %s, want ORD-NEW", orders[0].ID)
	}
}
