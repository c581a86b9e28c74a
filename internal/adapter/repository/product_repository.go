package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/wallysmart/shopping-assistant/internal/domain/product"
)

// ProductRepository is an in-memory catalog seeded with the demo
// assortment. Reads dominate, so it copies on return and guards the
// slice with a RWMutex.
type ProductRepository struct {
	mu       sync.RWMutex
	products []product.Product
}

// NewProductRepository creates the catalog with the seed assortment
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: seedProducts()}
}

// List implements product.Repository
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID implements product.Repository
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// Search implements product.Repository. Matching is a case-insensitive
// substring check over title, brand and category.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]product.Product, len(r.products))
		copy(out, r.products)
		return out, nil
	}

	var out []product.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func seedProducts() []product.Product {
	return []product.Product{
		{
			ID:            "1",
			Title:         "Great Value Whole Milk, 1 Gallon",
			Price:         3.68,
			OriginalPrice: 4.28,
			Image:         "https://images.pexels.com/photos/416946/pexels-photo-416946.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability:  product.AvailabilityInStock,
			Rating:        4.5,
			Brand:         "Great Value",
			Aisle:         "12",
			Category:      "Dairy",
		},
		{
			ID:           "2",
			Title:        "Bananas, 3 lbs",
			Price:        1.48,
			Image:        "https://images.pexels.com/photos/2872755/pexels-photo-2872755.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability: product.AvailabilityInStock,
			Rating:       4.2,
			Aisle:        "1",
			Category:     "Produce",
		},
		{
			ID:           "3",
			Title:        "Wonder Classic White Bread",
			Price:        1.28,
			Image:        "https://images.pexels.com/photos/1586947/pexels-photo-1586947.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability: product.AvailabilityLimited,
			Rating:       4.0,
			Brand:        "Wonder",
			Aisle:        "8",
			Category:     "Bakery",
		},
		{
			ID:           "4",
			Title:        "Fresh Ground Beef, 80/20, 1 lb",
			Price:        5.98,
			Image:        "https://images.pexels.com/photos/361184/asparagus-steak-veal-steak-veal-361184.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability: product.AvailabilityInStock,
			Rating:       4.3,
			Aisle:        "15",
			Category:     "Meat",
		},
		{
			ID:            "5",
			Title:         "Tide Laundry Detergent, 50 oz",
			Price:         11.97,
			OriginalPrice: 13.97,
			Image:         "https://images.pexels.com/photos/1121796/pexels-photo-1121796.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability:  product.AvailabilityInStock,
			Rating:        4.8,
			Brand:         "Tide",
			Aisle:         "3",
			Category:      "Household",
		},
		{
			ID:           "6",
			Title:        "Organic Eggs, 12 count",
			Price:        4.98,
			Image:        "https://images.pexels.com/photos/162712/egg-white-food-protein-162712.jpeg?auto=compress&cs=tinysrgb&w=300&h=300&dpr=2",
			Availability: product.AvailabilityOutOfStock,
			Rating:       4.6,
			Aisle:        "12",
			Category:     "Dairy",
		},
	}
}
