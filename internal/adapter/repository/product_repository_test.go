package repository

import (
	"context"
	"errors"
	"testing"
)

func TestProductListSeed(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 seeded products, got %d", len(products))
	}
	for _, p := range products {
		if !p.Availability.Valid() {
			t.Errorf("product %s has invalid availability %q", p.ID, p.Availability)
		}
	}
}

func TestProductFindByID(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	p, err := repo.FindByID(ctx, "6")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Organic Eggs, 12 count" {
		t.Errorf("title = %q", p.Title)
	}
	if p.CartEligible() {
		t.Error("out-of-stock product should not be cart eligible")
	}

	if _, err := repo.FindByID(ctx, "999"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestProductSearch(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	tests := []struct {
		query string
		want  int
	}{
		{"milk", 1},
		{"dairy", 2},
		{"tide", 1},
		{"nothing matches this", 0},
		{"", 6},
	}

	for _, tt := range tests {
		got, err := repo.Search(ctx, tt.query)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("Search(%q) = %d products, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestProductOnSale(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	milk, _ := repo.FindByID(ctx, "1")
	if !milk.OnSale() {
		t.Error("discounted milk should be on sale")
	}

	bananas, _ := repo.FindByID(ctx, "2")
	if bananas.OnSale() {
		t.Error("bananas have no original price, not on sale")
	}
}
