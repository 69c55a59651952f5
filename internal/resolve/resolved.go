package resolve

import (
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/token"
)

// KitComponent is the reserved UIKit top-level key holding global/form
// properties that map onto the --ns-ui-kit-... namespace instead of a
// component.
const KitComponent = "ui-kit"

// BuildResolvedTheme walks the entire UIKit document and materializes the
// mode's resolved theme: a flat map from CSS custom-property name to literal
// value. Unresolvable leaves are skipped and reported; a single bad token
// must not take the rest of the theme down with it.
func BuildResolvedTheme(resolver *Resolver, uikit token.Document, mode token.Mode) (map[string]string, []error) {
	vars := make(map[string]string)
	var unresolved []error

	emit := func(name string, ref token.Reference) {
		value, err := resolver.Resolve(ref, mode)
		if err != nil {
			unresolved = append(unresolved, err)
			return
		}
		vars[name] = value.CSS()
	}

	for component, node := range uikit {
		branch, ok := token.AsBranch(node)
		if !ok {
			continue
		}
		if component == KitComponent {
			walkLeaves(branch, nil, func(path []string, ref token.Reference) {
				if len(path) == 0 {
					return
				}
				emit(cssvar.BuildKitName(path[0], path[1:]...), ref)
			})
			continue
		}
		walkLeaves(branch, nil, func(path []string, ref token.Reference) {
			emit(cssvar.BuildPath(component, path...), ref)
		})
	}

	return vars, unresolved
}

// walkLeaves visits every reference leaf of the branch in tree order,
// passing the path segments from the branch root.
func walkLeaves(branch token.Document, prefix []string, visit func(path []string, ref token.Reference)) {
	for key, node := range branch {
		path := append(append([]string(nil), prefix...), key)
		if child, ok := token.AsBranch(node); ok {
			walkLeaves(child, path, visit)
			continue
		}
		ref, err := token.ParseReference(node)
		if err != nil {
			continue
		}
		visit(path, ref)
	}
}

// ThemeCache memoizes the resolved theme per (store revision, mode). The
// resolved map is a pure function of the source documents; the revision
// counter stands in for their identity. Cached maps are never mutated.
type ThemeCache struct {
	mu      sync.Mutex
	entries map[cacheKey]map[string]string
}

type cacheKey struct {
	revision uint64
	mode     token.Mode
}

// NewThemeCache allocates an empty cache.
func NewThemeCache() *ThemeCache {
	return &ThemeCache{entries: make(map[cacheKey]map[string]string)}
}

// Resolved returns the cached resolved theme for the revision and mode,
// computing it with build on a miss. Older revisions are evicted: a store
// mutation invalidates every cached mode at once.
func (c *ThemeCache) Resolved(revision uint64, mode token.Mode, build func() map[string]string) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{revision: revision, mode: mode}
	if cached, ok := c.entries[key]; ok {
		return cached
	}

	for existing := range c.entries {
		if existing.revision != revision {
			delete(c.entries, existing)
		}
	}

	resolved := build()
	c.entries[key] = resolved
	return resolved
}
