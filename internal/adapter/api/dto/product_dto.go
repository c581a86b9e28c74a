package dto

import (
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
)

// ProductListResponse is a page of catalog products
type ProductListResponse struct {
	Products []product.Product `json:"products"`
	Total    int               `json:"total"`
}

// AddToCartRequest references a catalog product to put in the cart
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// CartResponse is the current cart with its running total
type CartResponse struct {
	Items []product.Product `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

// ToCartResponse builds the cart view, summing item prices
func ToCartResponse(items []product.Product) CartResponse {
	var total float64
	for _, p := range items {
		total += p.Price
	}
	return CartResponse{
		Items: items,
		Total: total,
		Count: len(items),
	}
}
