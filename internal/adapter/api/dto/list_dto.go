package dto

import (
	"github.com/wallysmart/shopping-assistant/internal/domain/list"
)

// CreateListRequest names a new SmartList
type CreateListRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddListItemRequest adds a catalog product to a SmartList
type AddListItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
	Note      string `json:"note"`
}

// SmartListResponse is a SmartList with its computed subtotal
type SmartListResponse struct {
	list.SmartList
	Subtotal float64 `json:"subtotal"`
}

// ToSmartListResponse attaches the subtotal to a list
func ToSmartListResponse(l list.SmartList) SmartListResponse {
	return SmartListResponse{
		SmartList: l,
		Subtotal:  l.Subtotal(),
	}
}

// ToSmartListResponses converts a slice of lists
func ToSmartListResponses(lists []list.SmartList) []SmartListResponse {
	out := make([]SmartListResponse, len(lists))
	for i, l := range lists {
		out[i] = ToSmartListResponse(l)
	}
	return out
}
