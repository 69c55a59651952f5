package token

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Collection names a referenceable document.
type Collection string

const (
	CollectionTokens Collection = "Tokens"
	CollectionTheme  Collection = "Theme"
)

// RefKind discriminates the reference variant.
type RefKind int

const (
	RefLiteral RefKind = iota
	RefToken
	RefTheme
)

// Reference is the single tagged variant covering everything a document leaf
// can hold: a literal value, a Tokens reference, or a Theme reference. The
// source documents spell references either as {collection, name} objects or
// as bracketed "{Collection.path}" strings; both parse into this one type.
type Reference struct {
	Kind    RefKind
	Name    string
	Literal Value
}

// TokenRef builds a reference into the Tokens document.
func TokenRef(path string) Reference {
	return Reference{Kind: RefToken, Name: path}
}

// ThemeRef builds a reference into the Theme document.
func ThemeRef(path string) Reference {
	return Reference{Kind: RefTheme, Name: path}
}

// Lit wraps a concrete value as a literal reference.
func Lit(v Value) Reference {
	return Reference{Kind: RefLiteral, Literal: v}
}

// Collection reports the referenced collection name, or "" for literals.
func (r Reference) Collection() Collection {
	switch r.Kind {
	case RefToken:
		return CollectionTokens
	case RefTheme:
		return CollectionTheme
	}
	return ""
}

// IsLiteral reports whether the reference carries a concrete value.
func (r Reference) IsLiteral() bool {
	return r.Kind == RefLiteral
}

func (r Reference) String() string {
	if r.Kind == RefLiteral {
		return r.Literal.CSS()
	}
	return fmt.Sprintf("{%s.%s}", r.Collection(), r.Name)
}

// ParseReference interprets a raw document leaf as a Reference. Accepted
// shapes: bare number/string literals, typed value maps, bracketed path
// strings, and {collection, name} objects.
func ParseReference(raw any) (Reference, error) {
	switch leaf := raw.(type) {
	case Reference:
		return leaf, nil
	case string:
		if ref, ok := parseBracketPath(leaf); ok {
			return ref, nil
		}
		return Lit(StringValue(leaf)), nil
	case Document:
		return ParseReference(map[string]any(leaf))
	case map[string]any:
		if ref, ok, err := parseRefObject(leaf); ok || err != nil {
			return ref, err
		}
		if value, ok := CoerceValue(leaf); ok {
			return Lit(value), nil
		}
		return Reference{}, apperrors.NewUnresolvedReference("", fmt.Sprint(leaf), apperrors.ReasonBadShape)
	default:
		if value, ok := CoerceValue(raw); ok {
			return Lit(value), nil
		}
		return Reference{}, apperrors.NewUnresolvedReference("", fmt.Sprint(raw), apperrors.ReasonBadShape)
	}
}

// parseBracketPath handles the "{Collection.path...}" string form.
func parseBracketPath(s string) (Reference, bool) {
	if len(s) < 3 || s[0] != '{' || s[len(s)-1] != '}' {
		return Reference{}, false
	}
	inner := s[1 : len(s)-1]
	collection, path, found := strings.Cut(inner, ".")
	if !found || path == "" {
		return Reference{}, false
	}
	switch Collection(collection) {
	case CollectionTokens:
		return TokenRef(path), true
	case CollectionTheme:
		return ThemeRef(path), true
	}
	return Reference{}, false
}

func parseRefObject(leaf map[string]any) (Reference, bool, error) {
	rawCollection, hasCollection := leaf["collection"]
	rawName, hasName := leaf["name"]
	if !hasCollection && !hasName {
		return Reference{}, false, nil
	}
	collection, _ := rawCollection.(string)
	name, _ := rawName.(string)
	if name == "" {
		return Reference{}, true, apperrors.NewUnresolvedReference(collection, name, apperrors.ReasonBadShape)
	}
	switch Collection(collection) {
	case CollectionTokens:
		return TokenRef(name), true, nil
	case CollectionTheme:
		return ThemeRef(name), true, nil
	}
	return Reference{}, true, apperrors.NewUnresolvedReference(collection, name, apperrors.ReasonBadShape)
}

type refJSON struct {
	Collection string `json:"collection"`
	Name       string `json:"name"`
}

// MarshalJSON renders references in the {collection, name} object form and
// literals as their typed value form.
func (r Reference) MarshalJSON() ([]byte, error) {
	if r.Kind == RefLiteral {
		return json.Marshal(r.Literal)
	}
	return json.Marshal(refJSON{Collection: string(r.Collection()), Name: r.Name})
}

// UnmarshalJSON accepts every reference spelling the documents use.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseReference(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
