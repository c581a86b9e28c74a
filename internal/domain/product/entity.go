package product

// Availability represents the stock state of a product
type Availability string

// Availability constants form a closed set; anything else is rejected on creation
const (
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

// Valid reports whether the availability value belongs to the closed set
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityLimited, AvailabilityOutOfStock:
		return true
	}
	return false
}

// Product represents a catalog product
type Product struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Price         float64      `json:"price"`
	OriginalPrice float64      `json:"original_price,omitempty"`
	Image         string       `json:"image"`
	Availability  Availability `json:"availability"`
	Rating        float64      `json:"rating,omitempty"`
	Brand         string       `json:"brand,omitempty"`
	Aisle         string       `json:"aisle"`
	Category      string       `json:"category"`
}

// OnSale reports whether the product is discounted from a higher
// original price
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}

// CartEligible reports whether the product may be added to a cart.
// Out-of-stock products are never eligible.
func (p Product) CartEligible() bool {
	return p.Availability != AvailabilityOutOfStock
}
