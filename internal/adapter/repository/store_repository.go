package repository

import (
	"context"
	"sync"

	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

// StoreRepository keeps the known stores and the session's current
// store selection in memory.
type StoreRepository struct {
	mu      sync.RWMutex
	stores  []store.Store
	current string
}

// NewStoreRepository creates the store directory with the downtown
// supercenter preselected.
func NewStoreRepository() *StoreRepository {
	return &StoreRepository{
		stores:  seedStores(),
		current: "1",
	}
}

// List implements store.Repository
func (r *StoreRepository) List(ctx context.Context) ([]store.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]store.Store, len(r.stores))
	copy(out, r.stores)
	return out, nil
}

// Current implements store.Repository
func (r *StoreRepository) Current(ctx context.Context) (*store.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stores {
		if s.ID == r.current {
			found := s
			return &found, nil
		}
	}
	return nil, ErrStoreNotFound
}

// SetCurrent implements store.Repository
func (r *StoreRepository) SetCurrent(ctx context.Context, id string) (*store.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stores {
		if s.ID == id {
			r.current = id
			found := s
			return &found, nil
		}
	}
	return nil, ErrStoreNotFound
}

func seedStores() []store.Store {
	return []store.Store{
		{
			ID:         "1",
			Name:       "WallyMart Supercenter - Downtown",
			Address:    "123 Main St, City, State 12345",
			Coordinate: store.GeoCoordinate{Lat: 40.7128, Lng: -74.0060},
			Distance:   0.5,
		},
		{
			ID:         "2",
			Name:       "WallyMart Neighborhood Market",
			Address:    "456 Oak Ave, City, State",
			Coordinate: store.GeoCoordinate{Lat: 40.7589, Lng: -73.9851},
			Distance:   1.2,
		},
		{
			ID:         "3",
			Name:       "WallyMart Supercenter - North",
			Address:    "789 Pine Rd, City, State",
			Coordinate: store.GeoCoordinate{Lat: 40.7831, Lng: -73.9712},
			Distance:   2.1,
		},
	}
}
