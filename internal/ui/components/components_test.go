package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/token"
)

func lightTheme(t *testing.T) Theme {
	t.Helper()
	st, err := store.Open(store.Options{})
	require.NoError(t, err)
	engine := theme.New(theme.Options{Store: st})
	return NewTheme(token.ModeLight, engine.ResolvedVars(token.ModeLight))
}

func TestThemeLookups(t *testing.T) {
	th := lightTheme(t)

	require.Equal(t, token.ModeLight, th.Mode())
	require.Equal(t, "#2563eb", th.Var("--ns-components-button-color-layer-0-variant-solid-background"))
	require.Equal(t, 6, th.PxInt("--ns-components-button-border-radius"))
	require.Zero(t, th.PxInt("--ns-missing"))
	require.False(t, th.Has("--ns-missing"))
}

func TestButtonReadsVariantVariables(t *testing.T) {
	button := NewButton("Save")

	require.Equal(t,
		"--ns-components-button-color-layer-0-variant-solid-background",
		button.colorVar("background"))

	button.WithVariant(VariantOutline).WithLayer("layer-1")
	require.Equal(t,
		"--ns-components-button-color-layer-1-variant-outline-border",
		button.colorVar("border"))
}

func TestButtonRendersLabel(t *testing.T) {
	th := lightTheme(t)

	view := NewButton("Save").View(th)
	require.Contains(t, view, "Save")

	outline := NewButton("Cancel").WithVariant(VariantOutline).View(th)
	require.Contains(t, outline, "Cancel")
}

func TestGhostVariantFallsBackToFlatBackground(t *testing.T) {
	th := lightTheme(t)
	button := NewButton("Menu").WithVariant(VariantGhost)

	require.False(t, th.Has(button.colorVar("background")),
		"ghost defines no background of its own")
	require.True(t, th.Has("--ns-components-button-color-layer-0-background"),
		"the flat layer background backs it up")
	require.Contains(t, button.View(th), "Menu")
}

func TestButtonCSSDeclarations(t *testing.T) {
	th := lightTheme(t)

	decls := NewButton("Save").CSSDeclarations(th)
	require.Contains(t, decls,
		"background: var(--ns-components-button-color-layer-0-variant-solid-background, #2563eb)")
	require.Contains(t, decls,
		"border-radius: var(--ns-components-button-border-radius, 6px)")

	ghost := NewButton("Menu").WithVariant(VariantGhost).CSSDeclarations(th)
	require.Contains(t, ghost,
		"background: var(--ns-components-button-color-layer-0-background, #f9fafb)",
		"ghost falls back to the flat layer background")
}

func TestBadgeWarningLayer(t *testing.T) {
	th := lightTheme(t)
	badge := NewBadge("3").WithLayer("warning")

	require.Equal(t, "#f59e0b", th.Var("--ns-components-badge-color-warning-background"))
	require.Contains(t, badge.View(th), "3")
}

func TestSliderProportions(t *testing.T) {
	th := lightTheme(t)

	view := NewSlider(0.5).WithWidth(10).View(th)
	require.Equal(t, 5, strings.Count(view, "━"))
	require.Equal(t, 1, strings.Count(view, "●"))
	require.Equal(t, 5, strings.Count(view, "─"))

	full := NewSlider(2).WithWidth(4).View(th)
	require.Equal(t, 4, strings.Count(full, "━"))
}

func TestAppliersRunAfterThemeStyling(t *testing.T) {
	th := lightTheme(t)
	applied := false

	NewButton("Go").WithAppliers(func(style lipgloss.Style, _ Theme) lipgloss.Style {
		applied = true
		return style
	}).View(th)

	require.True(t, applied)
}
