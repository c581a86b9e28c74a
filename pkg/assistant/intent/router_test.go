package intent

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/wallysmart/shopping-assistant/internal/domain/store"
)

func testRouter(seed int64) *Router {
	return NewRouter(rand.New(rand.NewSource(seed)), nil)
}

func testContext() Context {
	return Context{
		Store: &store.Store{
			ID:   "1",
			Name: "WallyMart Supercenter - Downtown",
		},
	}
}

func TestRouteApplePieList(t *testing.T) {
	resp := testRouter(1).Route("I need to make apple pie today, list items and I'll see if to add to cart", testContext())

	listResp, ok := resp.(ProductListResponse)
	if !ok {
		t.Fatalf("expected ProductListResponse, got %T", resp)
	}
	if len(listResp.Products) != 5 {
		t.Fatalf("expected 5 ingredients, got %d", len(listResp.Products))
	}
	if listResp.Products[0].Title != "Granny Smith Apples" {
		t.Errorf("unexpected first ingredient %q", listResp.Products[0].Title)
	}
	if !strings.Contains(listResp.Text, "apple pie") {
		t.Errorf("reply text should mention apple pie, got %q", listResp.Text)
	}
}

func TestRouteApplePieDirections(t *testing.T) {
	for _, message := range []string{
		"I'm in store, want to make apple pie today, show me directions",
		"apple pie ingredients, I'm in store",
	} {
		resp := testRouter(1).Route(message, testContext())

		routeResp, ok := resp.(RouteResponse)
		if !ok {
			t.Fatalf("%q: expected RouteResponse, got %T", message, resp)
		}
		if len(routeResp.Products) != 3 {
			t.Fatalf("expected 3 route stops, got %d", len(routeResp.Products))
		}
		if routeResp.Route == nil {
			t.Fatal("expected a route payload")
		}
		if routeResp.Route.StoreID != "1" {
			t.Errorf("route should target the current store, got %q", routeResp.Route.StoreID)
		}

		// the path must pass through every listed product's coordinate
		visited := make(map[store.MapPoint]bool)
		for _, p := range routeResp.Route.Path {
			visited[p] = true
		}
		for _, item := range routeResp.Route.Items {
			if !visited[item.Coordinate] {
				t.Errorf("path misses product %s at (%v)", item.ProductID, item.Coordinate)
			}
		}
		if routeResp.Route.Path[0] != routeResp.Route.UserLocation {
			t.Error("path should start at the user's location")
		}
	}
}

func TestRouteIceCream(t *testing.T) {
	resp := testRouter(1).Route("I want to make chocolate ice cream", testContext())

	routeResp, ok := resp.(RouteResponse)
	if !ok {
		t.Fatalf("expected RouteResponse, got %T", resp)
	}
	if len(routeResp.Products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(routeResp.Products))
	}
	if routeResp.Route == nil || len(routeResp.Route.Path) == 0 {
		t.Fatal("expected a route with a path")
	}
}

func TestRouteHealthyBreakfast(t *testing.T) {
	resp := testRouter(1).Route("Suggest some healthy breakfast options", testContext())

	listResp, ok := resp.(ProductListResponse)
	if !ok {
		t.Fatalf("expected ProductListResponse, got %T", resp)
	}
	if len(listResp.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(listResp.Products))
	}
}

func TestRouteTrend(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		ctx         Context
		wantSubject string
		wantPoints  int
	}{
		{
			name:        "explicit past week",
			message:     "What are the historical trends of granny smith apples for the past week",
			wantSubject: "granny smith apples",
			wantPoints:  7,
		},
		{
			name:        "default month",
			message:     "Show me the price trend for granny smith apples",
			wantSubject: "granny smith apples",
			wantPoints:  30,
		},
		{
			name:        "context timeframe carries",
			message:     "Show me the price trend for whole milk",
			ctx:         Context{Timeframe: TimeframeYear},
			wantSubject: "whole milk",
			wantPoints:  12,
		},
		{
			name:        "no subject falls back",
			message:     "price trend please",
			wantSubject: "a product",
			wantPoints:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testRouter(1).Route(tt.message, tt.ctx)

			trendResp, ok := resp.(TrendResponse)
			if !ok {
				t.Fatalf("expected TrendResponse, got %T", resp)
			}
			if !strings.EqualFold(trendResp.ProductName, tt.wantSubject) {
				t.Errorf("subject = %q, want %q", trendResp.ProductName, tt.wantSubject)
			}
			if got := len(trendResp.Chart.Datasets[0].Data); got != tt.wantPoints {
				t.Errorf("data points = %d, want %d", got, tt.wantPoints)
			}
			if len(trendResp.Chart.Labels) != tt.wantPoints {
				t.Errorf("labels = %d, want %d", len(trendResp.Chart.Labels), tt.wantPoints)
			}
			if len(trendResp.TimeframeOptions) != 3 {
				t.Errorf("expected 3 timeframe options, got %d", len(trendResp.TimeframeOptions))
			}
		})
	}
}

func TestRouteAvailability(t *testing.T) {
	resp := testRouter(1).Route("Is granny smith apples available near me?", testContext())

	availResp, ok := resp.(AvailabilityResponse)
	if !ok {
		t.Fatalf("expected AvailabilityResponse, got %T", resp)
	}
	if availResp.Availability.ProductName != "granny smith apples" {
		t.Errorf("subject = %q", availResp.Availability.ProductName)
	}
	if len(availResp.Availability.Stores) != 4 {
		t.Fatalf("expected 4 stores, got %d", len(availResp.Availability.Stores))
	}
	if !strings.Contains(availResp.Text, "Checking availability") {
		t.Errorf("unexpected reply text %q", availResp.Text)
	}

	byID := make(map[string]store.Location)
	for _, s := range availResp.Availability.Stores {
		byID[s.ID] = s
	}
	if !byID["store-101"].IsAvailable {
		t.Error("granny smith apples should always be stocked at store-101")
	}
	if byID["store-104"].IsAvailable {
		t.Error("granny smith apples should never be stocked at store-104")
	}
}

func TestRouteAvailabilityQuinoa(t *testing.T) {
	resp := testRouter(7).Route("Is organic quinoa available near me?", testContext())

	availResp, ok := resp.(AvailabilityResponse)
	if !ok {
		t.Fatalf("expected AvailabilityResponse, got %T", resp)
	}

	byID := make(map[string]store.Location)
	for _, s := range availResp.Availability.Stores {
		byID[s.ID] = s
	}
	if !byID["store-102"].IsAvailable {
		t.Error("organic quinoa should always be stocked at store-102")
	}
	if byID["store-103"].IsAvailable {
		t.Error("organic quinoa should never be stocked at store-103")
	}
}

func TestRouteWhere(t *testing.T) {
	resp := testRouter(1).Route("Where can I get the milk?", testContext())

	textResp, ok := resp.(PlainTextResponse)
	if !ok {
		t.Fatalf("expected PlainTextResponse, got %T", resp)
	}
	if !strings.Contains(textResp.Text, "WallyMart Supercenter - Downtown") {
		t.Errorf("reply should name the current store, got %q", textResp.Text)
	}
}

func TestRouteDefault(t *testing.T) {
	resp := testRouter(1).Route("blargh xyzzy", testContext())

	textResp, ok := resp.(PlainTextResponse)
	if !ok {
		t.Fatalf("expected PlainTextResponse, got %T", resp)
	}
	for _, capability := range []string{
		"Finding specific products",
		"Recipe ingredients and locations",
		"Store navigation",
		"Product recommendations",
		"Price comparisons",
	} {
		if !strings.Contains(textResp.Text, capability) {
			t.Errorf("help text missing %q", capability)
		}
	}
}

func TestRouteDeterministicWithSeed(t *testing.T) {
	message := "Show me the price trend for granny smith apples"

	first := testRouter(42).Route(message, Context{}).(TrendResponse)
	second := testRouter(42).Route(message, Context{}).(TrendResponse)

	a := first.Chart.Datasets[0].Data
	b := second.Chart.Datasets[0].Data
	if len(a) != len(b) {
		t.Fatalf("series lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRouteNoStoreContext(t *testing.T) {
	resp := testRouter(1).Route("where is the bread", Context{})

	textResp, ok := resp.(PlainTextResponse)
	if !ok {
		t.Fatalf("expected PlainTextResponse, got %T", resp)
	}
	if !strings.Contains(textResp.Text, "Your local store") {
		t.Errorf("expected generic store name, got %q", textResp.Text)
	}
}
