package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/token"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func testDocuments() (token.Document, token.Document) {
	tokens := token.Document{
		"color": map[string]any{"gray": map[string]any{"900": "#111827"}},
		"size":  map[string]any{"default": map[string]any{"kind": "number", "value": 8.0, "unit": "px"}},
	}
	theme := token.Document{
		"light": map[string]any{
			"surface":    map[string]any{"collection": "Tokens", "name": "color.gray.900"},
			"background": map[string]any{"collection": "Theme", "name": "surface"},
		},
		"dark": map[string]any{
			"surface":    "#0b1120",
			"background": map[string]any{"collection": "Theme", "name": "surface"},
		},
	}
	return tokens, theme
}

func TestResolveTokenLeaf(t *testing.T) {
	tokens, theme := testDocuments()
	r := New(tokens, theme)

	value, err := r.Resolve(token.TokenRef("size.default"), token.ModeLight)
	require.NoError(t, err)
	assert.Equal(t, "8px", value.CSS())
}

func TestResolveDottedLeafName(t *testing.T) {
	tokens := token.Document{"size": map[string]any{
		"none": 0.0, "0.5x": map[string]any{"kind": "number", "value": 4.0, "unit": "px"}, "default": 8.0,
	}}
	r := New(tokens, token.Document{"light": map[string]any{}, "dark": map[string]any{}})

	value, err := r.Resolve(token.TokenRef("size.0.5x"), token.ModeLight)
	require.NoError(t, err)
	assert.Equal(t, "4px", value.CSS())
}

func TestResolveThemeChainPerMode(t *testing.T) {
	tokens, theme := testDocuments()
	r := New(tokens, theme)

	light, err := r.Resolve(token.ThemeRef("background"), token.ModeLight)
	require.NoError(t, err)
	assert.Equal(t, "#111827", light.CSS())

	dark, err := r.Resolve(token.ThemeRef("background"), token.ModeDark)
	require.NoError(t, err)
	assert.Equal(t, "#0b1120", dark.CSS())
}

func TestResolveIsDeterministic(t *testing.T) {
	tokens, theme := testDocuments()
	r := New(tokens, theme)

	first, err1 := r.Resolve(token.ThemeRef("background"), token.ModeLight)
	second, err2 := r.Resolve(token.ThemeRef("background"), token.ModeLight)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestResolveMissingPath(t *testing.T) {
	tokens, theme := testDocuments()
	r := New(tokens, theme)

	_, err := r.Resolve(token.TokenRef("color.red.500"), token.ModeLight)
	var unresolved *apperrors.UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, apperrors.ReasonMissing, unresolved.Reason)
}

func TestResolveCycleIsBounded(t *testing.T) {
	tokens := token.Document{}
	theme := token.Document{
		"light": map[string]any{
			"a": map[string]any{"collection": "Theme", "name": "b"},
			"b": map[string]any{"collection": "Theme", "name": "a"},
		},
		"dark": map[string]any{},
	}
	r := New(tokens, theme)

	_, err := r.Resolve(token.ThemeRef("a"), token.ModeLight)
	var unresolved *apperrors.UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, apperrors.ReasonCycle, unresolved.Reason)
}

func TestResolveDepthBound(t *testing.T) {
	light := map[string]any{}
	for i := 0; i < 20; i++ {
		light[entryName(i)] = map[string]any{"collection": "Theme", "name": entryName(i + 1)}
	}
	light[entryName(20)] = "#ffffff"
	theme := token.Document{"light": light, "dark": map[string]any{}}
	r := New(token.Document{}, theme)

	_, err := r.Resolve(token.ThemeRef(entryName(0)), token.ModeLight)
	var unresolved *apperrors.UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, apperrors.ReasonDepthExceeded, unresolved.Reason)
}

func entryName(i int) string {
	return "entry-" + string(rune('a'+i%26)) + string(rune('a'+i/26))
}

func TestOverridesWinOverDocument(t *testing.T) {
	tokens, theme := testDocuments()
	r := New(tokens, theme).WithOverrides(map[string]token.Value{
		"color.gray.900": token.StringValue("#000000"),
	})

	value, err := r.Resolve(token.ThemeRef("surface"), token.ModeLight)
	require.NoError(t, err)
	assert.Equal(t, "#000000", value.CSS())
}

func TestComponentPropertyPathNesting(t *testing.T) {
	assert.Equal(t, "Button.color.layer-0.variant.solid.background",
		ComponentPropertyPath("Button", "color", "layer-0", "solid-background"))
	assert.Equal(t, "Button.color.layer-0.background",
		ComponentPropertyPath("Button", "color", "layer-0", "background"))
	assert.Equal(t, "Button.size.variant.small.height",
		ComponentPropertyPath("Button", "size", "layer-0", "small-height"))
	assert.Equal(t, "Button.border-radius",
		ComponentPropertyPath("Button", "color", "layer-0", "border-radius"))
}

func TestResolveComponentProperty(t *testing.T) {
	tokens, theme := testDocuments()
	uikit := token.Document{
		"Button": map[string]any{
			"color": map[string]any{
				"layer-0": map[string]any{
					"variant": map[string]any{"solid": map[string]any{
						"background": map[string]any{"collection": "Theme", "name": "surface"},
					}},
				},
			},
		},
	}
	r := New(tokens, theme)

	value, err := r.ResolveComponentProperty(uikit, "Button", "color", "layer-0", "solid-background", token.ModeLight)
	require.NoError(t, err)
	assert.Equal(t, "#111827", value.CSS())
}

func TestBuildResolvedTheme(t *testing.T) {
	tokens, theme := testDocuments()
	uikit := token.Document{
		"Button": map[string]any{
			"color": map[string]any{
				"layer-0": map[string]any{
					"variant": map[string]any{"solid": map[string]any{
						"background": map[string]any{"collection": "Theme", "name": "surface"},
					}},
					"border": map[string]any{"collection": "Tokens", "name": "color.gray.900"},
				},
			},
			"size": map[string]any{"height": map[string]any{"collection": "Tokens", "name": "size.default"}},
		},
		"ui-kit": map[string]any{
			"form": map[string]any{"input": map[string]any{
				"border": map[string]any{"collection": "Tokens", "name": "color.gray.900"},
			}},
		},
	}
	r := New(tokens, theme)

	vars, unresolved := BuildResolvedTheme(r, uikit, token.ModeLight)
	assert.Empty(t, unresolved)
	assert.Equal(t, "#111827", vars["--ns-components-button-color-layer-0-variant-solid-background"])
	assert.Equal(t, "#111827", vars["--ns-components-button-color-layer-0-border"])
	assert.Equal(t, "8px", vars["--ns-components-button-size-height"])
	assert.Equal(t, "#111827", vars["--ns-ui-kit-form-input-border"])
}

func TestBuildResolvedThemeReportsUnresolved(t *testing.T) {
	uikit := token.Document{
		"Badge": map[string]any{"color": map[string]any{"layer-0": map[string]any{
			"background": map[string]any{"collection": "Tokens", "name": "color.missing"},
		}}},
	}
	r := New(token.Document{}, token.Document{"light": map[string]any{}, "dark": map[string]any{}})

	vars, unresolved := BuildResolvedTheme(r, uikit, token.ModeLight)
	assert.Empty(t, vars)
	assert.Len(t, unresolved, 1)
}

func TestThemeCacheMemoizesPerRevisionAndMode(t *testing.T) {
	cache := NewThemeCache()
	builds := 0
	build := func() map[string]string {
		builds++
		return map[string]string{"--ns-a": "1px"}
	}

	first := cache.Resolved(1, token.ModeLight, build)
	second := cache.Resolved(1, token.ModeLight, build)
	assert.Equal(t, 1, builds)
	assert.Equal(t, first, second)

	cache.Resolved(1, token.ModeDark, build)
	assert.Equal(t, 2, builds)

	// A new revision invalidates every mode.
	cache.Resolved(2, token.ModeLight, build)
	cache.Resolved(2, token.ModeLight, build)
	assert.Equal(t, 3, builds)
}
