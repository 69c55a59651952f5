package cssvar

import (
	"sort"
	"sync"
	"time"
)

// StyleSink is the single shared style target custom properties are written
// to. Injectable so tests assert against an in-memory sink and so multiple
// independent theme instances can coexist.
type StyleSink interface {
	Set(name, value string)
	Remove(name string)
	Snapshot() map[string]string
}

// MemorySink is a plain map-backed StyleSink.
type MemorySink struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMemorySink allocates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{vars: make(map[string]string)}
}

// Set writes a custom property. Last write wins.
func (s *MemorySink) Set(name, value string) {
	s.mu.Lock()
	s.vars[name] = value
	s.mu.Unlock()
}

// Remove deletes a custom property.
func (s *MemorySink) Remove(name string) {
	s.mu.Lock()
	delete(s.vars, name)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current property map.
func (s *MemorySink) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.vars))
	for name, value := range s.vars {
		out[name] = value
	}
	return out
}

// Get reads one property.
func (s *MemorySink) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.vars[name]
	return value, ok
}

// DefaultDebounce is the coalescing window sink observers wait before
// notifying, mirroring a per-frame mutation batch.
const DefaultDebounce = 16 * time.Millisecond

// ObservedSink decorates a StyleSink with change observation: every mutation
// is recorded and watchers are notified once per debounce window with the
// sorted set of names that changed since the last notification.
type ObservedSink struct {
	inner    StyleSink
	debounce time.Duration

	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	watchers []func(changed []string)
}

// NewObservedSink wraps a sink with change observation. A non-positive
// debounce flushes synchronously on every mutation.
func NewObservedSink(inner StyleSink, debounce time.Duration) *ObservedSink {
	return &ObservedSink{
		inner:    inner,
		debounce: debounce,
		pending:  make(map[string]struct{}),
	}
}

// Watch registers a callback receiving the coalesced changed-name sets.
func (s *ObservedSink) Watch(fn func(changed []string)) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

// Set writes a property and records the change.
func (s *ObservedSink) Set(name, value string) {
	s.inner.Set(name, value)
	s.record(name)
}

// Remove deletes a property and records the change.
func (s *ObservedSink) Remove(name string) {
	s.inner.Remove(name)
	s.record(name)
}

// Snapshot returns the inner sink's property map.
func (s *ObservedSink) Snapshot() map[string]string {
	return s.inner.Snapshot()
}

// Flush delivers any pending change set immediately.
func (s *ObservedSink) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

func (s *ObservedSink) record(name string) {
	s.mu.Lock()
	s.pending[name] = struct{}{}
	if s.debounce <= 0 {
		s.mu.Unlock()
		s.flush()
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, func() {
			s.mu.Lock()
			s.timer = nil
			s.mu.Unlock()
			s.flush()
		})
	}
	s.mu.Unlock()
}

func (s *ObservedSink) flush() {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return
	}
	changed := make([]string, 0, len(s.pending))
	for name := range s.pending {
		changed = append(changed, name)
	}
	s.pending = make(map[string]struct{})
	watchers := append(make([]func([]string), 0, len(s.watchers)), s.watchers...)
	s.mu.Unlock()

	sort.Strings(changed)
	for _, fn := range watchers {
		fn(changed)
	}
}
