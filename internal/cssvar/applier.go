package cssvar

import (
	"sort"
	"sync"
)

// Applier writes resolved values onto the style sink. It tracks the key-set
// of the last wholesale apply so a mode switch leaves no orphaned properties
// behind.
type Applier struct {
	sink StyleSink

	mu      sync.Mutex
	applied map[string]struct{}
}

// NewApplier creates an Applier bound to a sink.
func NewApplier(sink StyleSink) *Applier {
	return &Applier{sink: sink, applied: make(map[string]struct{})}
}

// Apply writes the given properties incrementally and returns the sorted set
// of names whose values actually changed.
func (a *Applier) Apply(vars map[string]string) []string {
	current := a.sink.Snapshot()

	a.mu.Lock()
	defer a.mu.Unlock()

	changed := make([]string, 0, len(vars))
	for name, value := range vars {
		if existing, ok := current[name]; ok && existing == value {
			a.applied[name] = struct{}{}
			continue
		}
		a.sink.Set(name, value)
		a.applied[name] = struct{}{}
		changed = append(changed, name)
	}
	sort.Strings(changed)
	return changed
}

// Remove deletes one property from the sink.
func (a *Applier) Remove(name string) {
	a.mu.Lock()
	delete(a.applied, name)
	a.mu.Unlock()
	a.sink.Remove(name)
}

// ApplyAll replaces the previously applied set wholesale: properties absent
// from the new map are removed, the rest overwritten. Returns the sorted
// names that changed (written with a new value or removed). Applying the same
// map twice is a no-op.
func (a *Applier) ApplyAll(resolved map[string]string) []string {
	current := a.sink.Snapshot()

	a.mu.Lock()
	defer a.mu.Unlock()

	changedSet := make(map[string]struct{})
	for name, value := range resolved {
		if existing, ok := current[name]; !ok || existing != value {
			a.sink.Set(name, value)
			changedSet[name] = struct{}{}
		}
	}
	for name := range a.applied {
		if _, keep := resolved[name]; !keep {
			a.sink.Remove(name)
			changedSet[name] = struct{}{}
		}
	}

	a.applied = make(map[string]struct{}, len(resolved))
	for name := range resolved {
		a.applied[name] = struct{}{}
	}

	changed := make([]string, 0, len(changedSet))
	for name := range changedSet {
		changed = append(changed, name)
	}
	sort.Strings(changed)
	return changed
}

// AppliedNames returns the sorted key-set of the last wholesale apply.
func (a *Applier) AppliedNames() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, 0, len(a.applied))
	for name := range a.applied {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
