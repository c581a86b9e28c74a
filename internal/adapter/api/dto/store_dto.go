package dto

import (
	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

// StoreListResponse is the store directory with the active selection
type StoreListResponse struct {
	Stores  []store.Store `json:"stores"`
	Current *store.Store  `json:"current,omitempty"`
}

// SelectStoreRequest switches the session's current store
type SelectStoreRequest struct {
	StoreID string `json:"store_id" binding:"required"`
}
