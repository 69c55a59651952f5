// Package resolve walks the token reference graph. Given a reference into
// the Tokens or Theme documents it follows chains of indirection, per color
// mode, down to a concrete primitive value.
package resolve

import (
	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/token"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// MaxDepth bounds a single resolution chain. The bound is defensive: it does
// not prove the documents acyclic, it only stops runaway resolution when an
// authoring cycle slips in.
const MaxDepth = 8

// Resolver resolves references against a fixed pair of source documents plus
// a token override map layered over the Tokens document.
type Resolver struct {
	tokens    token.Document
	theme     token.Document
	overrides map[string]token.Value
}

// New creates a resolver over the given Tokens and Theme documents.
func New(tokens, theme token.Document) *Resolver {
	return &Resolver{tokens: tokens, theme: theme}
}

// WithOverrides returns a resolver that consults the override map before the
// Tokens document.
func (r *Resolver) WithOverrides(overrides map[string]token.Value) *Resolver {
	return &Resolver{tokens: r.tokens, theme: r.theme, overrides: overrides}
}

type visitKey struct {
	collection token.Collection
	name       string
}

// Resolve follows the reference down to a concrete value for the given mode.
// Missing paths, cycles, and over-deep chains come back as
// UnresolvedReferenceError; Resolve never panics or loops.
func (r *Resolver) Resolve(ref token.Reference, mode token.Mode) (token.Value, error) {
	return r.resolve(ref, mode, make(map[visitKey]struct{}), 0)
}

func (r *Resolver) resolve(ref token.Reference, mode token.Mode, visited map[visitKey]struct{}, depth int) (token.Value, error) {
	if ref.IsLiteral() {
		return ref.Literal, nil
	}
	if depth >= MaxDepth {
		return token.Value{}, apperrors.NewUnresolvedReference(string(ref.Collection()), ref.Name, apperrors.ReasonDepthExceeded)
	}

	key := visitKey{collection: ref.Collection(), name: ref.Name}
	if _, seen := visited[key]; seen {
		return token.Value{}, apperrors.NewUnresolvedReference(string(ref.Collection()), ref.Name, apperrors.ReasonCycle)
	}
	visited[key] = struct{}{}

	switch ref.Kind {
	case token.RefToken:
		return r.resolveToken(ref.Name)
	case token.RefTheme:
		return r.resolveTheme(ref.Name, mode, visited, depth)
	}
	return token.Value{}, apperrors.NewUnresolvedReference(string(ref.Collection()), ref.Name, apperrors.ReasonBadShape)
}

// resolveToken looks the path up in the override map, then the Tokens
// document. Tokens are leaves; no further indirection is possible.
func (r *Resolver) resolveToken(path string) (token.Value, error) {
	if override, ok := r.overrides[path]; ok {
		return override, nil
	}
	value, ok := r.tokens.Value(path)
	if !ok {
		return token.Value{}, apperrors.NewUnresolvedReference(string(token.CollectionTokens), path, apperrors.ReasonMissing)
	}
	return value, nil
}

func (r *Resolver) resolveTheme(path string, mode token.Mode, visited map[visitKey]struct{}, depth int) (token.Value, error) {
	branch := r.theme.ModeBranch(mode)
	if branch == nil {
		return token.Value{}, apperrors.NewUnresolvedReference(string(token.CollectionTheme), path, apperrors.ReasonMissing)
	}
	next, ok := branch.Reference(path)
	if !ok {
		return token.Value{}, apperrors.NewUnresolvedReference(string(token.CollectionTheme), path, apperrors.ReasonMissing)
	}
	return r.resolve(next, mode, visited, depth+1)
}

// ComponentPropertyPath builds the UIKit document path for a component
// property, applying the vocabulary-driven variant nesting rule: color
// properties with a known variant prefix nest as variant.<v>.<rest> under
// their layer; size properties nest variant.<v>.<rest> with no layer; flat
// properties and component-level properties stay unnested.
func ComponentPropertyPath(component, category, layer, property string) string {
	if cssvar.IsComponentLevel(property) {
		return component + "." + property
	}
	path := component + "." + category
	if category == token.CategoryColor && layer != "" {
		path += "." + layer
	}
	if variant, rest, ok := token.SplitVariant(category, property); ok {
		return path + ".variant." + variant + "." + rest
	}
	return path + "." + property
}

// ResolveComponentProperty resolves one UIKit component property to a value.
func (r *Resolver) ResolveComponentProperty(uikit token.Document, component, category, layer, property string, mode token.Mode) (token.Value, error) {
	path := ComponentPropertyPath(component, category, layer, property)
	ref, ok := uikit.Reference(path)
	if !ok {
		return token.Value{}, apperrors.NewUnresolvedReference("UIKit", path, apperrors.ReasonMissing)
	}
	return r.Resolve(ref, mode)
}
