package memory

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache()

	_, err := cache.Get(context.Background(), "missing")
	if err == nil {
		t.Error("missing key should return an error")
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "forever", []byte("v"), 0)

	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("zero-TTL entry should stay readable: %v", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); err == nil {
		t.Error("expired entry should miss")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("v"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("deleted key should miss")
	}

	if err := cache.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("deleting a missing key should be a no-op: %v", err)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("abc"), time.Minute)
	got, _ := cache.Get(ctx, "key")
	got[0] = 'X'

	again, _ := cache.Get(ctx, "key")
	if string(again) != "abc" {
		t.Errorf("cached value mutated through returned slice: %q", again)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("cancelled context should fail Get")
	}
	if err := cache.Set(ctx, "key", []byte("v"), 0); err == nil {
		t.Error("cancelled context should fail Set")
	}
}
