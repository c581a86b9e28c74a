package store

// GeoCoordinate is a latitude/longitude pair on the city map
type GeoCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapPoint is a display-space coordinate inside the store layout,
// expressed in percent of the rendered map area
type MapPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Store represents a physical store
type Store struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Address    string        `json:"address"`
	Coordinate GeoCoordinate `json:"coordinates"`
	Distance   float64       `json:"distance,omitempty"`
}

// RouteItem places a product inside the store layout
type RouteItem struct {
	ProductID  string   `json:"product_id"`
	Aisle      string   `json:"aisle"`
	Coordinate MapPoint `json:"coordinates"`
}

// Route is a suggested in-store walking path. The path is a literal
// waypoint sequence, not a computed shortest path.
type Route struct {
	StoreID      string      `json:"store_id"`
	Layout       string      `json:"layout"`
	Items        []RouteItem `json:"items"`
	UserLocation MapPoint    `json:"user_location"`
	Path         []MapPoint  `json:"path"`
}

// Location describes a nearby store and whether a product is stocked there
type Location struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Coordinate  GeoCoordinate `json:"coords"`
	IsAvailable bool          `json:"is_available"`
	Distance    string        `json:"distance"`
}

// Availability maps a product onto the nearby stores that carry it
type Availability struct {
	ProductName  string        `json:"product_name"`
	UserLocation GeoCoordinate `json:"user_location"`
	Stores       []Location    `json:"stores"`
}

// AvailableStores returns the subset of stores carrying the product
func (a Availability) AvailableStores() []Location {
	var out []Location
	for _, s := range a.Stores {
		if s.IsAvailable {
			out = append(out, s)
		}
	}
	return out
}

// UnavailableStores returns the subset of stores not carrying the product
func (a Availability) UnavailableStores() []Location {
	var out []Location
	for _, s := range a.Stores {
		if !s.IsAvailable {
			out = append(out, s)
		}
	}
	return out
}
