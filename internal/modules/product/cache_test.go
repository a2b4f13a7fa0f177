package product

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"shipline/internal/types"
)

func setupTestCache(t *testing.T) *Cache {
	t.Helper()
	srv := miniredis.RunT(t)
	return NewCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
}

func TestCacheRoundTrip(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	id := types.NewID()
	desc := "desc"
	p := &Product{ID: id, Name: "Phone", Description: &desc, Price: 599.99, Quantity: 3}

	if _, ok := c.Get(ctx, id); ok {
		t.Fatal("hit on empty cache")
	}
	if err := c.Set(ctx, id, p); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok := c.Get(ctx, id)
	if !ok {
		t.Fatal("miss after set")
	}
	if got.Name != p.Name || got.Price != p.Price || got.Quantity != p.Quantity {
		t.Errorf("got = %+v, want %+v", got, p)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("description = %v, want %q", got.Description, desc)
	}
}

func TestCacheDelete(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	id := types.NewID()
	if err := c.Set(ctx, id, &Product{ID: id, Name: "Phone"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := c.Get(ctx, id); ok {
		t.Fatal("hit after delete")
	}
}
