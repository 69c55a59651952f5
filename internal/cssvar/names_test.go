package cssvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNameVariantNesting(t *testing.T) {
	name := BuildName("Button", "color", "solid-background", "layer-0")
	assert.Equal(t, "--ns-components-button-color-layer-0-variant-solid-background", name)

	// Deterministic.
	assert.Equal(t, name, BuildName("Button", "color", "solid-background", "layer-0"))
}

func TestBuildNameFlatProperty(t *testing.T) {
	name := BuildName("Button", "color", "background", "layer-1")
	assert.Equal(t, "--ns-components-button-color-layer-1-background", name)
}

func TestVariantAndFlatNamesNeverCollide(t *testing.T) {
	variant := BuildName("Badge", "color", "text-background", "layer-0")
	flat := BuildName("Badge", "color", "background", "layer-0")
	assert.NotEqual(t, variant, flat)

	// A property that merely starts with a variant-like word still gains the
	// variant segment; the vocabulary rule is exact-prefix, not semantic.
	ambiguous := BuildName("Badge", "color", "default-border", "layer-0")
	assert.Equal(t, "--ns-components-badge-color-layer-0-variant-default-border", ambiguous)
}

func TestBuildNameSizeIsLayerIndependent(t *testing.T) {
	withLayer := BuildName("Slider", "size", "small-height", "layer-2")
	withoutLayer := BuildName("Slider", "size", "small-height", "")
	assert.Equal(t, withoutLayer, withLayer)
	assert.Equal(t, "--ns-components-slider-size-variant-small-height", withLayer)
}

func TestComponentLevelBypass(t *testing.T) {
	name := BuildName("Button", "color", "border-radius", "layer-0")
	assert.Equal(t, "--ns-components-button-border-radius", name)
	assert.Equal(t, name, BuildLevelName("Button", "border-radius"))
}

func TestNormalizeFoldsDotsAndWhitespace(t *testing.T) {
	assert.Equal(t, "color-gray-900", Normalize("Color.Gray.900"))
	assert.Equal(t, "font-family", Normalize("  Font Family "))

	// Callers never pre-normalize; builder entry points do it.
	assert.Equal(t,
		BuildName("Button", "Color", "Solid Background", "Layer.0"),
		BuildName("button", "color", "solid-background", "layer-0"))
}

func TestBuildKitName(t *testing.T) {
	assert.Equal(t, "--ns-ui-kit-form-input-border", BuildKitName("form", "input", "border"))
}

func TestBuildPath(t *testing.T) {
	assert.Equal(t, "--ns-components-accordion-header-icon", BuildPath("Accordion", "header", "icon"))
}
