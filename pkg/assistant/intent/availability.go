package intent

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

// userLocation is the fixed demo position used for nearby-store lookups
var userLocation = store.GeoCoordinate{Lat: 21.170240, Lng: 72.831062}

type candidateStore struct {
	id       string
	name     string
	address  string
	coord    store.GeoCoordinate
	chance   float64 // probability the product is on the shelf
	distance float64 // km from the user
}

var nearbyStores = []candidateStore{
	{
		id:       "store-101",
		name:     "WallyMart Supercenter - City Center",
		address:  "Ring Road, Surat",
		coord:    store.GeoCoordinate{Lat: 21.19, Lng: 72.84},
		chance:   0.7,
		distance: 2.5,
	},
	{
		id:       "store-102",
		name:     "WallyMart Neighborhood Market - Vesu",
		address:  "Vesu Main Road, Surat",
		coord:    store.GeoCoordinate{Lat: 21.13, Lng: 72.78},
		chance:   0.5,
		distance: 8.0,
	},
	{
		id:       "store-103",
		name:     "WallyMart Supercenter - Adajan",
		address:  "Adajan Gam Road, Surat",
		coord:    store.GeoCoordinate{Lat: 21.22, Lng: 72.79},
		chance:   0.9,
		distance: 5.2,
	},
	{
		id:       "store-104",
		name:     "WallyMart Express - Pal",
		address:  "Pal Hazira Road, Surat",
		coord:    store.GeoCoordinate{Lat: 21.18, Lng: 72.75},
		chance:   0.3,
		distance: 10.1,
	},
}

// availabilityOverride pins the in-stock outcome for products the demo
// script depends on. Returns (forced value, true) when pinned.
func availabilityOverride(productName, storeID string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(productName)) {
	case "granny smith apples":
		switch storeID {
		case "store-101":
			return true, true
		case "store-104":
			return false, true
		}
	case "organic quinoa":
		switch storeID {
		case "store-102":
			return true, true
		case "store-103":
			return false, true
		}
	}
	return false, false
}

// storeAvailability checks the nearby stores for a product. Outcomes
// for unpinned store/product pairs are drawn from each store's stock
// chance, so every store always appears exactly once in the result.
func storeAvailability(rng *rand.Rand, productName string) *store.Availability {
	locations := make([]store.Location, 0, len(nearbyStores))
	for _, cand := range nearbyStores {
		available, pinned := availabilityOverride(productName, cand.id)
		if !pinned {
			available = rng.Float64() < cand.chance
		}
		locations = append(locations, store.Location{
			ID:          cand.id,
			Name:        cand.name,
			Address:     cand.address,
			Coordinate:  cand.coord,
			IsAvailable: available,
			Distance:    fmt.Sprintf("%.1f km", cand.distance),
		})
	}
	return &store.Availability{
		ProductName:  productName,
		UserLocation: userLocation,
		Stores:       locations,
	}
}
