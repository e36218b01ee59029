package cache

import (
	"strconv"
	"sync"
	"testing"
)

// sameShard sends every key to shard 0 so eviction order is observable.
func sameShard(string) uint64 { return 0 }

func TestShardedGetSet(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get(missing) ok = true, want false")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	v, ok := c.Get("a")
	if !ok || v != 2 {
		t.Fatalf("Get(a) = %d, %v, want 2, true", v, ok)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestShardedEvictsOldest(t *testing.T) {
	c := NewSharded[string, int](2, sameShard)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b is now oldest
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestShardedGetOrCreateOnce(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	var (
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCreate("shader", func() int {
				mu.Lock()
				calls++
				mu.Unlock()
				return 7
			})
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	st := c.Stats()
	if st.Misses != 1 || st.Hits != 31 {
		t.Errorf("Stats() = %+v, want 1 miss and 31 hits", st)
	}
}

func TestShardedDelete(t *testing.T) {
	c := NewSharded[string, int](0, StringHasher)
	for i := 0; i < 10; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	if !c.Delete("3") {
		t.Error("Delete(3) = false, want true")
	}
	if c.Delete("3") {
		t.Error("second Delete(3) = true, want false")
	}
	if got := c.Len(); got != 9 {
		t.Errorf("Len() = %d, want 9", got)
	}
}
