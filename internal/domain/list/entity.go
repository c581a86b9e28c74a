package list

import (
	"time"

	"github.com/wallysmart/shopping-assistant/internal/domain/product"
)

// SmartListItem is one entry of a SmartList
type SmartListItem struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Product    product.Product `json:"product"`
	Quantity   int             `json:"quantity"`
	Note       string          `json:"note,omitempty"`
	PriceAlert bool            `json:"price_alert"`
	AddedAt    time.Time       `json:"added_at"`
}

// SmartList is a named, user-created collection of product entries
type SmartList struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Items     []SmartListItem `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Subtotal sums the list's item prices weighted by quantity
func (l SmartList) Subtotal() float64 {
	var total float64
	for _, item := range l.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Product.Price * float64(qty)
	}
	return total
}
