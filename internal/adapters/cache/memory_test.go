package cache

import (
	"testing"
	"time"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	m.Set("k", "v", time.Hour)

	got, ok := m.Get("k")
	if !ok {
		t.Fatal("expected hit immediately after Set")
	}
	if got != "v" {
		t.Fatalf("Get = %v, want v", got)
	}
	if !m.Has("k") {
		t.Error("Has = false, want true")
	}

	m.Delete("k")
	if _, ok := m.Get("k"); ok {
		t.Error("expected miss after Delete")
	}
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	m.Set("k", 42, time.Minute)

	if _, ok := m.Get("k"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(time.Minute + time.Second)

	if _, ok := m.Get("k"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
	// Lazy eviction removed the entry, not just hid it.
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}

func TestMemoryNonPositiveTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	m.Set("zero", 1, 0)
	m.Set("negative", 2, -time.Minute)

	// Even with the clock frozen at the Set instant, a non-positive ttl
	// is already expired.
	if _, ok := m.Get("zero"); ok {
		t.Error("ttl=0 entry is a hit, want miss")
	}
	if _, ok := m.Get("negative"); ok {
		t.Error("negative-ttl entry is a hit, want miss")
	}
}

func TestMemoryCleanup(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	m.Set("short", 1, time.Minute)
	m.Set("long", 2, time.Hour)

	now = now.Add(10 * time.Minute)

	if removed := m.Cleanup(); removed != 1 {
		t.Fatalf("Cleanup removed %d entries, want 1", removed)
	}
	if m.Has("short") {
		t.Error("expected short entry evicted")
	}
	if !m.Has("long") {
		t.Error("expected long entry to survive")
	}
}

func TestMemorySweepLifecycle(t *testing.T) {
	m := NewMemory()
	m.StartSweep(time.Millisecond)
	m.StartSweep(time.Millisecond) // second start is a no-op
	m.StopSweep()
	m.StopSweep() // idempotent
}

func TestGetAs(t *testing.T) {
	m := NewMemory()
	m.Set("n", 7, time.Hour)

	n, ok := GetAs[int](m, "n")
	if !ok || n != 7 {
		t.Fatalf("GetAs[int] = (%d, %v), want (7, true)", n, ok)
	}

	if _, ok := GetAs[string](m, "n"); ok {
		t.Error("GetAs with wrong type should miss")
	}
	if _, ok := GetAs[int](m, "absent"); ok {
		t.Error("GetAs on absent key should miss")
	}
}
