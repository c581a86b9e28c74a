package repository

import (
	"context"
	"errors"
	"testing"
)

func TestStoreListAndCurrent(t *testing.T) {
	repo := NewStoreRepository()
	ctx := context.Background()

	stores, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 3 {
		t.Fatalf("expected 3 stores, got %d", len(stores))
	}

	current, err := repo.Current(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if current.Name != "WallyMart Supercenter - Downtown" {
		t.Errorf("current store = %q", current.Name)
	}
}

func TestStoreSetCurrent(t *testing.T) {
	repo := NewStoreRepository()
	ctx := context.Background()

	selected, err := repo.SetCurrent(ctx, "3")
	if err != nil {
		t.Fatal(err)
	}
	if selected.Name != "WallyMart Supercenter - North" {
		t.Errorf("selected = %q", selected.Name)
	}

	current, _ := repo.Current(ctx)
	if current.ID != "3" {
		t.Errorf("current = %s, want 3", current.ID)
	}

	if _, err := repo.SetCurrent(ctx, "999"); !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("err = %v, want ErrStoreNotFound", err)
	}
}
