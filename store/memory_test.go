package store

import (
	"context"
	"testing"
	"time"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

func ratingOf(v float64) *float64 { return &v }

func TestMemoryStoreCloset(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()

	ms.AddItems("u1",
		core.ClothingItem{ID: "a", OwnerID: "u1"},
		core.ClothingItem{ID: "b", OwnerID: "u1"},
	)
	ms.AddItems("u2", core.ClothingItem{ID: "c", OwnerID: "u2"})

	items, err := ms.ListItemsOwnedBy(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}

	empty, err := ms.ListItemsOwnedBy(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d items for unknown user, want 0", len(empty))
	}
}

func TestMemoryStorePreferences(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()

	// missing preferences are a normal state, not an error
	prefs, err := ms.GetPreferences(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if prefs != nil {
		t.Errorf("got %+v, want nil for missing preferences", prefs)
	}

	ms.SetPreferences("u1", &core.Preferences{Style: core.StyleFormal})
	prefs, err = ms.GetPreferences(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if prefs == nil || prefs.Style != core.StyleFormal {
		t.Errorf("got %+v, want Formal preferences", prefs)
	}
}

func TestMemoryStoreRatings(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ms.AddRatedOutfits(
		core.RatedOutfit{UserID: "u1", Rating: ratingOf(4), CreatedAt: base},
		core.RatedOutfit{UserID: "u1", Rating: nil, CreatedAt: base.Add(time.Hour)},
		core.RatedOutfit{UserID: "u2", Rating: ratingOf(5), CreatedAt: base.Add(2 * time.Hour)},
		core.RatedOutfit{UserID: "u2", Rating: ratingOf(3), CreatedAt: base.Add(3 * time.Hour)},
	)

	own, err := ms.ListRatedOutfits(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(own) != 1 {
		t.Errorf("got %d own rated outfits, want 1 (unrated excluded)", len(own))
	}

	pool, err := ms.ListAllRatedOutfits(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pool) != 2 {
		t.Fatalf("got %d pool entries, want limit 2", len(pool))
	}
	if !pool[0].CreatedAt.After(pool[1].CreatedAt) {
		t.Errorf("pool not ordered most recent first: %v then %v", pool[0].CreatedAt, pool[1].CreatedAt)
	}
}

func TestMemoryStoreKV(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if _, err := ms.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) err = %v, want store not-found", err)
	}

	if err := ms.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	got, err := ms.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v" {
		t.Errorf("Get(k) = %q, want %q", got, "v")
	}

	if err := ms.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := ms.Get(ctx, "k"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after delete err = %v, want store not-found", err)
	}
}

func TestMemoryStoreKVExpiredKey(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if err := ms.Set(ctx, "k", []byte("v"), 1); err != nil {
		t.Fatal(err)
	}

	// force the entry past its deadline instead of sleeping
	ms.mu.Lock()
	past := time.Now().Add(-time.Minute)
	ms.data["k"].ttl = &past
	ms.mu.Unlock()

	if _, err := ms.Get(ctx, "k"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(expired) err = %v, want store not-found", err)
	}
}
