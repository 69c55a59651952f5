package token

import (
	"fmt"
	"strings"
)

// Categories used by UIKit component specs. Color entries are always
// layer-scoped; size entries are layer-independent.
const (
	CategoryColor = "color"
	CategorySize  = "size"
)

// ColorVariants is the fixed vocabulary of variant prefixes for color
// category properties. A property "solid-background" nests under
// variant.solid; a property "background" stays flat. The list is load-bearing:
// it decides which CSS variable a property resolves to.
var ColorVariants = []string{"solid", "text", "outline", "default", "primary", "ghost"}

// SizeVariants is the variant vocabulary for size category properties.
var SizeVariants = []string{"default", "small", "large"}

// StandardLayerCount is the number of numbered surface layers (layer-0..N-1).
const StandardLayerCount = 4

// AlternativeLayers are named surfaces usable wherever a numbered layer is.
var AlternativeLayers = []string{"alert", "warning", "success", "high-contrast", "primary-color"}

// LayerName renders the canonical name of a numbered layer.
func LayerName(ordinal int) string {
	return fmt.Sprintf("layer-%d", ordinal)
}

// Layers returns every known layer name, numbered layers first.
func Layers() []string {
	out := make([]string, 0, StandardLayerCount+len(AlternativeLayers))
	for i := 0; i < StandardLayerCount; i++ {
		out = append(out, LayerName(i))
	}
	out = append(out, AlternativeLayers...)
	return out
}

// SplitVariant applies the vocabulary-driven nesting rule: when a property of
// the given category starts with "<knownVariant>-", it splits into the
// variant name and the remaining property. A property that merely equals a
// variant word, or whose prefix is not in the vocabulary, stays flat.
func SplitVariant(category, property string) (variant, rest string, ok bool) {
	var vocabulary []string
	switch category {
	case CategoryColor:
		vocabulary = ColorVariants
	case CategorySize:
		vocabulary = SizeVariants
	default:
		return "", "", false
	}
	for _, candidate := range vocabulary {
		if suffix, found := strings.CutPrefix(property, candidate+"-"); found && suffix != "" {
			return candidate, suffix, true
		}
	}
	return "", "", false
}
