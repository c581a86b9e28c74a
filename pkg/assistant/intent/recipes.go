package intent

import (
	"github.com/wallysmart/shopping-assistant/internal/domain/product"
	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

// Curated ingredient sets and in-store routes returned by the router.
// Prices and aisles mirror the demo catalog.

func applePieIngredients() []product.Product {
	return []product.Product{
		{
			ID:           "pie-1",
			Title:        "Granny Smith Apples",
			Price:        3.48,
			Image:        "https://picsum.photos/seed/apples/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "1",
			Category:     "Produce",
		},
		{
			ID:           "pie-2",
			Title:        "All-Purpose Flour",
			Price:        2.98,
			Image:        "https://picsum.photos/seed/flour/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "6",
			Category:     "Baking",
		},
		{
			ID:           "pie-3",
			Title:        "Unsalted Butter",
			Price:        4.68,
			Image:        "https://picsum.photos/seed/butter/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "12",
			Category:     "Dairy",
		},
		{
			ID:           "pie-4",
			Title:        "Granulated Sugar",
			Price:        2.48,
			Image:        "https://picsum.photos/seed/sugar/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "6",
			Category:     "Baking",
		},
		{
			ID:           "pie-5",
			Title:        "Ground Cinnamon",
			Price:        1.98,
			Image:        "https://picsum.photos/seed/cinnamon/200",
			Availability: product.AvailabilityLimited,
			Aisle:        "6",
			Category:     "Spices",
		},
	}
}

// applePieRouteProducts is the trimmed set used when the user asks for
// directions: one stop per aisle so the route stays readable.
func applePieRouteProducts() []product.Product {
	all := applePieIngredients()
	return []product.Product{all[0], all[1], all[2]}
}

func applePieRoute(storeID string) *store.Route {
	return &store.Route{
		StoreID: storeID,
		Layout:  "grid",
		Items: []store.RouteItem{
			{ProductID: "pie-1", Aisle: "1", Coordinate: store.MapPoint{X: 20, Y: 30}},
			{ProductID: "pie-2", Aisle: "6", Coordinate: store.MapPoint{X: 60, Y: 40}},
			{ProductID: "pie-3", Aisle: "12", Coordinate: store.MapPoint{X: 80, Y: 70}},
		},
		UserLocation: store.MapPoint{X: 10, Y: 10},
		Path: []store.MapPoint{
			{X: 10, Y: 10},
			{X: 20, Y: 30},
			{X: 60, Y: 40},
			{X: 80, Y: 70},
		},
	}
}

func iceCreamProducts() []product.Product {
	return []product.Product{
		{
			ID:           "ice-1",
			Title:        "Chocolate Ice Cream",
			Price:        4.98,
			Image:        "https://picsum.photos/seed/chocicecream/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "7",
			Category:     "Frozen",
		},
		{
			ID:           "ice-2",
			Title:        "Vanilla Bean Ice Cream",
			Price:        4.98,
			Image:        "https://picsum.photos/seed/vanillaicecream/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "7",
			Category:     "Frozen",
		},
		{
			ID:           "ice-3",
			Title:        "Waffle Cones",
			Price:        3.28,
			Image:        "https://picsum.photos/seed/wafflecones/200",
			Availability: product.AvailabilityLimited,
			Aisle:        "8",
			Category:     "Snacks",
		},
		{
			ID:           "ice-4",
			Title:        "Chocolate Syrup",
			Price:        2.78,
			Image:        "https://picsum.photos/seed/chocsyrup/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "8",
			Category:     "Condiments",
		},
	}
}

func iceCreamRoute(storeID string) *store.Route {
	return &store.Route{
		StoreID: storeID,
		Layout:  "grid",
		Items: []store.RouteItem{
			{ProductID: "ice-1", Aisle: "7", Coordinate: store.MapPoint{X: 25, Y: 40}},
			{ProductID: "ice-3", Aisle: "8", Coordinate: store.MapPoint{X: 35, Y: 40}},
			{ProductID: "ice-4", Aisle: "8", Coordinate: store.MapPoint{X: 50, Y: 80}},
		},
		UserLocation: store.MapPoint{X: 10, Y: 10},
		Path: []store.MapPoint{
			{X: 10, Y: 10},
			{X: 25, Y: 40},
			{X: 35, Y: 40},
			{X: 50, Y: 80},
		},
	}
}

func healthyBreakfastProducts() []product.Product {
	return []product.Product{
		{
			ID:           "breakfast-1",
			Title:        "Greek Yogurt",
			Price:        4.98,
			Image:        "https://picsum.photos/seed/greekyogurt/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "12",
			Category:     "Dairy",
			Rating:       4.7,
		},
		{
			ID:           "breakfast-2",
			Title:        "Fresh Blueberries",
			Price:        3.48,
			Image:        "https://picsum.photos/seed/blueberries/200",
			Availability: product.AvailabilityInStock,
			Aisle:        "1",
			Category:     "Produce",
			Rating:       4.5,
		},
	}
}
