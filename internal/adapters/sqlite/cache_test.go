package sqlite

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache := NewCache()
	if err := cache.Open(filepath.Join(t.TempDir(), "figlens", "cache.db")); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCache_PutGetRoundtrip(t *testing.T) {
	cache := openTestCache(t)

	payload := []byte(`{"name":"Demo"}`)
	if err := cache.Put("abc123", "7", payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, version, err := cache.Get("abc123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("expected payload roundtrip, got %q", got)
	}
	if version != "7" {
		t.Errorf("expected version 7, got %q", version)
	}
}

func TestCache_MissReturnsNil(t *testing.T) {
	cache := openTestCache(t)

	payload, _, err := cache.Get("nothing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if payload != nil {
		t.Errorf("expected nil payload on miss, got %q", payload)
	}
}

func TestCache_ExpiredRowIsAMiss(t *testing.T) {
	cache := openTestCache(t)
	cache.TTL = time.Minute

	if err := cache.Put("abc123", "7", []byte("{}")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Jump the clock past the TTL.
	cache.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	payload, _, err := cache.Get("abc123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if payload != nil {
		t.Error("expected expired row to read as a miss")
	}
}

func TestCache_PutReplaces(t *testing.T) {
	cache := openTestCache(t)

	if err := cache.Put("abc123", "1", []byte("old")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.Put("abc123", "2", []byte("new")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	payload, version, err := cache.Get("abc123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(payload) != "new" || version != "2" {
		t.Errorf("expected replacement, got %q v%s", payload, version)
	}
}

func TestCache_Evict(t *testing.T) {
	cache := openTestCache(t)

	if err := cache.Put("abc123", "1", []byte("{}")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.Evict("abc123"); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}

	payload, _, err := cache.Get("abc123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if payload != nil {
		t.Error("expected evicted entry to be gone")
	}
}
