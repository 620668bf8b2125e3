// file: internal/cache/cache_test.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7f

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New[string, string](time.Minute, 0)
	c.Set("k", "v")
	v, ok := c.Get("k")
	if !ok || v != "v" {
		t.Fatalf("expected v, got %q ok=%v", v, ok)
	}
}

func TestStructKey(t *testing.T) {
	type key struct {
		version string
		query   string
	}
	c := New[key, int](time.Minute, 0)
	c.Set(key{"v1", "CS101"}, 1)
	if _, ok := c.Get(key{"v2", "CS101"}); ok {
		t.Fatal("expected miss for a different version")
	}
	if v, ok := c.Get(key{"v1", "CS101"}); !ok || v != 1 {
		t.Fatalf("expected hit, got %d ok=%v", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	c := New[string, int](time.Millisecond, 0)
	c.Set("k", 42)
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get("k")
	if ok {
		t.Fatal("expected expired entry")
	}
}

func TestMaxEntriesEvictsClosestToExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := New[string, int](time.Minute, 2)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	now = now.Add(time.Second)
	c.Set("b", 2)
	now = now.Add(time.Second)
	c.Set("c", 3)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected a to be evicted")
	}
	for _, k := range []string{"b", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("expected %s to remain", k)
		}
	}
}

func TestMaxEntriesPrefersExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := New[string, int](time.Minute, 2)
	c.now = func() time.Time { return now }

	c.Set("long", 1)
	c.SetWithTTL("short", 2, time.Second)
	now = now.Add(2 * time.Second)
	c.Set("new", 3)

	if _, ok := c.Get("long"); !ok {
		t.Fatal("expected unexpired entry to survive")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestOverwriteDoesNotEvict(t *testing.T) {
	c := New[string, int](time.Minute, 1)
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Fatalf("expected overwritten value 2, got %d ok=%v", v, ok)
	}
}

func TestInvalidate(t *testing.T) {
	c := New[string, string](time.Minute, 0)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Invalidate("a")
	_, ok := c.Get("a")
	if ok {
		t.Fatal("expected a to be invalidated")
	}
	v, ok := c.Get("b")
	if !ok || v != "2" {
		t.Fatal("expected b to remain")
	}
}

func TestInvalidateAll(t *testing.T) {
	c := New[string, int](time.Minute, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	c.InvalidateAll()
	_, ok := c.Get("a")
	if ok {
		t.Fatal("expected all invalidated")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", c.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int](time.Minute, 16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set(base*100+j, j)
				c.Get(base*100 + j)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Fatalf("expected at most 16 entries, got %d", c.Len())
	}
}
