package order

import (
	"time"

	"github.com/wallysmart/shopping-assistant/internal/domain/list"
)

// Status represents the fulfillment state of an order
type Status string

// Status constants
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// Order represents a placed order
type Order struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	Items          []list.SmartListItem `json:"items"`
	Total          float64              `json:"total"`
	Status         Status               `json:"status"`
	OrderDate      time.Time            `json:"order_date"`
	DeliveryDate   *time.Time           `json:"delivery_date,omitempty"`
	TrackingNumber string               `json:"tracking_number,omitempty"`
}

// Active reports whether the order is still in flight
func (o Order) Active() bool {
	return o.Status != StatusDelivered
}
