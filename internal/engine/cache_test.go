package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		if CacheKey("enrich", "jane") != CacheKey("enrich", "jane") {
			t.Error("CacheKey not deterministic")
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		if CacheKey("enrich", "jane") == CacheKey("enrich", "john") {
			t.Error("different inputs produced same key")
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		if k := CacheKey("test"); !strings.HasPrefix(k, "gc:") {
			t.Errorf("expected gc: prefix, got %q", k)
		}
	})
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache("", time.Minute, 100, time.Minute)
	defer c.Close()

	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected cache miss on empty cache")
	}

	c.Set(ctx, key, []byte("hello"))

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d/%d, want 1/1", hits, misses)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache("", time.Millisecond, 100, time.Minute)
	defer c.Close()

	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"))
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache("", time.Minute, 5, time.Minute)
	defer c.Close()

	ctx := context.Background()
	for i := range 10 {
		c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"))
	}

	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count > 5 {
		t.Errorf("L1 has %d entries, want <= 5", count)
	}
	if _, ok := c.Get(ctx, "k9"); !ok {
		t.Error("most recent entry should survive eviction")
	}
}

func TestCacheJSON(t *testing.T) {
	c := NewCache("", time.Minute, 100, time.Minute)
	defer c.Close()

	ctx := context.Background()
	type payload struct {
		Name string `json:"name"`
	}
	StoreJSON(ctx, c, "p", payload{Name: "Jane"})
	got, ok := LoadJSON[payload](ctx, c, "p")
	if !ok || got.Name != "Jane" {
		t.Errorf("LoadJSON = %+v, %v", got, ok)
	}

	c.Set(ctx, "bad", []byte("{not json"))
	if _, ok := LoadJSON[payload](ctx, c, "bad"); ok {
		t.Error("expected decode failure to miss")
	}
}

func TestNilCache(t *testing.T) {
	var c *Cache
	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"))
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("nil cache should always miss")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil cache: %v", err)
	}
}
