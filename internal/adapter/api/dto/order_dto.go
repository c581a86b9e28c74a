package dto

import (
	"github.com/wallysmart/shopping-assistant/internal/domain/order"
)

// OrderListResponse splits a user's orders into active and history
type OrderListResponse struct {
	Active  []order.Order `json:"active"`
	History []order.Order `json:"history"`
}

// ToOrderListResponse partitions orders on delivery status
func ToOrderListResponse(orders []order.Order) OrderListResponse {
	resp := OrderListResponse{
		Active:  []order.Order{},
		History: []order.Order{},
	}
	for _, o := range orders {
		if o.Active() {
			resp.Active = append(resp.Active, o)
		} else {
			resp.History = append(resp.History, o)
		}
	}
	return resp
}
