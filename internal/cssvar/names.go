// Package cssvar builds canonical CSS custom-property names and applies
// resolved values to an injectable style sink. The generated names are a
// public contract: adapters hard-code them, so any change to the output
// format breaks every consumer.
package cssvar

import (
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/token"
)

// Namespace is the fixed prefix of every generated custom property.
const Namespace = "ns"

// componentLevelProps are properties that live as siblings of the size/color
// categories and bypass category nesting entirely, resolving as
// components.<component>.<property>.
var componentLevelProps = map[string]struct{}{
	"border-radius": {},
	"border-width":  {},
	"opacity":       {},
	"elevation":     {},
	"gap":           {},
	"font-family":   {},
}

// IsComponentLevel reports whether a property bypasses category nesting.
func IsComponentLevel(property string) bool {
	_, ok := componentLevelProps[Normalize(property)]
	return ok
}

// Normalize folds a path segment to the canonical form: lowercase, with dots
// and whitespace runs collapsed to single hyphens. Every builder entry point
// normalizes; callers never pre-normalize.
func Normalize(segment string) string {
	segment = strings.ToLower(strings.TrimSpace(segment))
	var b strings.Builder
	b.Grow(len(segment))
	pendingHyphen := false
	for _, r := range segment {
		if r == '.' || r == ' ' || r == '\t' {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func join(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, "--"+Namespace)
	for _, segment := range segments {
		if normalized := Normalize(segment); normalized != "" {
			parts = append(parts, normalized)
		}
	}
	return strings.Join(parts, "-")
}

// BuildName maps a component property onto its custom-property name:
//
//	--ns-components-<component>-<category>-[<layer>-]<property>
//
// Component-level properties skip the category/layer segments. Properties
// with a variant prefix from the category's vocabulary gain a "variant"
// segment, so BuildName("Button", "color", "solid-background", "layer-0")
// yields --ns-components-button-color-layer-0-variant-solid-background.
func BuildName(component, category, property, layer string) string {
	property = Normalize(property)
	if IsComponentLevel(property) {
		return BuildLevelName(component, property)
	}

	category = Normalize(category)
	if variant, rest, ok := token.SplitVariant(category, property); ok {
		property = "variant-" + variant + "-" + rest
	}

	if category == token.CategorySize {
		// Size entries are layer-independent.
		return join("components", component, category, property)
	}
	if layer == "" {
		return join("components", component, category, property)
	}
	return join("components", component, category, layer, property)
}

// BuildLevelName maps a component-level property (a sibling of size/color)
// onto --ns-components-<component>-<property>.
func BuildLevelName(component, property string) string {
	return join("components", component, property)
}

// BuildPath joins arbitrary component path segments under the components
// namespace without applying category rules.
func BuildPath(component string, segments ...string) string {
	all := append([]string{"components", component}, segments...)
	return join(all...)
}

// BuildKitName maps global/form properties onto --ns-ui-kit-<category>-<path...>.
func BuildKitName(category string, path ...string) string {
	all := append([]string{"ui-kit", category}, path...)
	return join(all...)
}

// VarExpr renders an inline var() reference to a custom property, with an
// optional fallback value for consumers rendered before the variable lands.
func VarExpr(name, fallback string) string {
	if fallback == "" {
		return "var(" + name + ")"
	}
	return "var(" + name + ", " + fallback + ")"
}
