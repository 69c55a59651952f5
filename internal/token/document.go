package token

import (
	"strings"
)

// Document is a raw nested token document as decoded from JSON or YAML.
// Interior nodes are maps; leaves are literals, typed values, or references.
type Document map[string]any

// Lookup walks the document along a dotted path and returns the node found
// there. Interior nodes come back as Document. Key names may themselves
// contain dots (progression steps like "0.5x"), so the longest matching
// prefix wins before descending on the remainder.
func (d Document) Lookup(path string) (any, bool) {
	if d == nil || path == "" {
		return nil, false
	}
	node, ok := lookupNode(map[string]any(d), path)
	if !ok {
		return nil, false
	}
	if branch, ok := asMap(node); ok {
		return Document(branch), true
	}
	return node, true
}

func lookupNode(branch map[string]any, path string) (any, bool) {
	if node, ok := branch[path]; ok {
		return node, true
	}
	for cut := strings.LastIndexByte(path, '.'); cut > 0; cut = strings.LastIndexByte(path[:cut], '.') {
		next, ok := asMap(branch[path[:cut]])
		if !ok {
			continue
		}
		if node, ok := lookupNode(next, path[cut+1:]); ok {
			return node, true
		}
	}
	return nil, false
}

// Set writes a leaf at the dotted path, creating interior maps as needed.
// Existing dotted keys are written in place rather than split into branches.
func (d Document) Set(path string, value any) {
	if d == nil || path == "" {
		return
	}
	setNode(map[string]any(d), path, value)
}

func setNode(branch map[string]any, path string, value any) {
	if _, ok := branch[path]; ok || !strings.Contains(path, ".") {
		branch[path] = value
		return
	}
	for cut := strings.LastIndexByte(path, '.'); cut > 0; cut = strings.LastIndexByte(path[:cut], '.') {
		if next, ok := asMap(branch[path[:cut]]); ok {
			setNode(next, path[cut+1:], value)
			return
		}
	}
	head, rest, _ := strings.Cut(path, ".")
	next := map[string]any{}
	branch[head] = next
	setNode(next, rest, value)
}

// Delete removes the leaf at the dotted path if present.
func (d Document) Delete(path string) {
	if d == nil || path == "" {
		return
	}
	deleteNode(map[string]any(d), path)
}

func deleteNode(branch map[string]any, path string) bool {
	if _, ok := branch[path]; ok {
		delete(branch, path)
		return true
	}
	for cut := strings.LastIndexByte(path, '.'); cut > 0; cut = strings.LastIndexByte(path[:cut], '.') {
		if next, ok := asMap(branch[path[:cut]]); ok && deleteNode(next, path[cut+1:]) {
			return true
		}
	}
	return false
}

// Branch returns the sub-document at path, or nil when the path is missing or
// points at a leaf.
func (d Document) Branch(path string) Document {
	node, ok := d.Lookup(path)
	if !ok {
		return nil
	}
	branch, ok := node.(Document)
	if !ok {
		return nil
	}
	return branch
}

// ModeBranch selects the per-mode branch of a Theme document.
func (d Document) ModeBranch(mode Mode) Document {
	return d.Branch(string(mode))
}

// Value looks up a leaf and coerces it to a concrete Value.
func (d Document) Value(path string) (Value, bool) {
	node, ok := d.Lookup(path)
	if !ok {
		return Value{}, false
	}
	return CoerceValue(node)
}

// Reference looks up a leaf and parses it as a Reference. Branch nodes do not
// parse, with one exception: {collection, name} objects are leaves even though
// they decode as maps.
func (d Document) Reference(path string) (Reference, bool) {
	node, ok := d.Lookup(path)
	if !ok {
		return Reference{}, false
	}
	if branch, isBranch := node.(Document); isBranch {
		if !isReferenceObject(branch) {
			return Reference{}, false
		}
		node = map[string]any(branch)
	}
	ref, err := ParseReference(node)
	if err != nil {
		return Reference{}, false
	}
	return ref, true
}

// isReferenceObject reports whether a map node is a {collection, name}
// reference leaf rather than an interior branch.
func isReferenceObject(branch map[string]any) bool {
	_, hasCollection := branch["collection"]
	_, hasName := branch["name"]
	return hasCollection && hasName
}

// AsBranch returns the node as an interior branch. Reference objects and
// typed value maps are leaves, not branches.
func AsBranch(node any) (Document, bool) {
	branch, ok := asMap(node)
	if !ok || isReferenceObject(branch) {
		return nil, false
	}
	if _, hasKind := branch["kind"]; hasKind {
		return nil, false
	}
	return Document(branch), true
}

// Keys returns the immediate child names of the document root.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	return keys
}

// Clone performs a deep copy of the document tree.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for key, value := range d {
		out[key] = cloneNode(value)
	}
	return out
}

func cloneNode(node any) any {
	branch, ok := asMap(node)
	if !ok {
		return node
	}
	out := make(map[string]any, len(branch))
	for key, value := range branch {
		out[key] = cloneNode(value)
	}
	return out
}

func asMap(node any) (map[string]any, bool) {
	switch branch := node.(type) {
	case map[string]any:
		return branch, true
	case Document:
		return map[string]any(branch), true
	}
	return nil, false
}
