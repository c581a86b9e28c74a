package dto

import (
	"github.com/wallysmart/shopping-assistant/internal/domain/order"
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
)

// ScanResponse carries the products recognized in a submitted frame
type ScanResponse struct {
	DetectedProducts []product.Product `json:"detected_products"`
}

// CheckoutResponse is returned after the cart is converted to an order
type CheckoutResponse struct {
	Order order.Order `json:"order"`
	Total float64     `json:"total"`
}
