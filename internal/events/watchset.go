package events

// VarClass classifies how a subscriber consumes a watched variable.
type VarClass int

const (
	// ClassCSSAuto marks variables consumed only through a live var()
	// reference; the CSS engine picks up changes without a re-render.
	ClassCSSAuto VarClass = iota
	// ClassNeedsReread marks variables whose derived output cannot be
	// expressed as a var() reference (computed box-shadow strings, values
	// requiring branching) and must be re-read on change.
	ClassNeedsReread
)

// WatchSet is a subscriber's declaration of the variables it depends on and
// how it consumes each. It bounds the cost of a full-palette edit fan-out:
// only ClassNeedsReread variables force a re-render.
type WatchSet struct {
	classes map[string]VarClass
}

// NewWatchSet allocates an empty watch set.
func NewWatchSet() *WatchSet {
	return &WatchSet{classes: make(map[string]VarClass)}
}

// Watch declares a dependency on a variable with its consumption class. The
// last declaration for a name wins.
func (w *WatchSet) Watch(name string, class VarClass) *WatchSet {
	w.classes[name] = class
	return w
}

// Watched reports whether the named variable is declared at all.
func (w *WatchSet) Watched(name string) bool {
	_, ok := w.classes[name]
	return ok
}

// NeedsReread decides whether a change set forces a re-render. An empty
// change set means "assume global change": re-render iff anything watched
// needs a re-read.
func (w *WatchSet) NeedsReread(changed []string) bool {
	if len(changed) == 0 {
		for _, class := range w.classes {
			if class == ClassNeedsReread {
				return true
			}
		}
		return false
	}
	for _, name := range changed {
		if class, ok := w.classes[name]; ok && class == ClassNeedsReread {
			return true
		}
	}
	return false
}
