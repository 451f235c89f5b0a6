package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	if e.ttl <= 0 {
		return true
	}
	return now.Sub(e.createdAt) > e.ttl
}

// Memory is a TTL-boxed in-memory result cache. Entries are evicted
// lazily on read and by a periodic sweep; there is no size bound.
//
// Unlike the rest of the lookup pipeline, the cache is shared across
// requests, so all access is mutex-serialized. Construct one instance
// and inject it; the package exports no singleton.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time

	sweepStop chan struct{}
	sweepDone chan struct{}
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, evicting it first if its TTL
// has lapsed.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(m.now()) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl is treated as
// already expired.
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{value: value, createdAt: m.now(), ttl: ttl}
}

// Has reports whether key holds a live entry.
func (m *Memory) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key regardless of expiry.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// Cleanup scans the whole cache and evicts every expired entry,
// returning the number removed.
func (m *Memory) Cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries currently stored, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// StartSweep runs Cleanup on the given interval until StopSweep is
// called. Starting an already-running sweep is a no-op.
func (m *Memory) StartSweep(interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sweepStop != nil {
		return
	}
	m.sweepStop = make(chan struct{})
	m.sweepDone = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				m.Cleanup()
			}
		}
	}(m.sweepStop, m.sweepDone)
}

// StopSweep halts the periodic sweep and waits for it to exit.
func (m *Memory) StopSweep() {
	m.mu.Lock()
	stop, done := m.sweepStop, m.sweepDone
	m.sweepStop, m.sweepDone = nil, nil
	m.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// GetAs fetches a typed value from the cache. A live entry of the
// wrong type counts as a miss.
func GetAs[T any](m *Memory, key string) (T, bool) {
	var zero T
	v, ok := m.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
