package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
)

// Color variant names shared by the themed components. These mirror the
// variant vocabulary of the UIKit document.
const (
	VariantSolid   = "solid"
	VariantOutline = "outline"
	VariantGhost   = "ghost"
)

// Size variant names.
const (
	SizeDefault = "default"
	SizeSmall   = "small"
	SizeLarge   = "large"
)

// Button renders a themed button. All colors and spacing come from the
// resolved theme snapshot at render time.
type Button struct {
	BaseComponent
	label    string
	variant  string
	layer    string
	size     string
	disabled bool
	active   bool
}

// NewButton creates a solid layer-0 button.
func NewButton(label string) *Button {
	return &Button{label: label, variant: VariantSolid, layer: "layer-0", size: SizeDefault}
}

// WithVariant sets the color variant (solid, outline, ghost).
func (b *Button) WithVariant(variant string) *Button {
	b.variant = variant
	return b
}

// WithLayer sets the surface layer (layer-0..3, alert, success, ...).
func (b *Button) WithLayer(layer string) *Button {
	b.layer = layer
	return b
}

// WithSize sets the size variant.
func (b *Button) WithSize(size string) *Button {
	b.size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers appends theme-aware style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// VarNames returns the custom-property names the button reads for its current
// variant and layer, in render order. Editing surfaces use this to know which
// variables to watch.
func (b *Button) VarNames() []string {
	return []string{
		b.colorVar("background"),
		b.colorVar("text"),
		b.colorVar("border"),
		cssvar.BuildName("button", "size", b.size+"-height", ""),
		cssvar.BuildName("button", "size", "padding", ""),
		cssvar.BuildLevelName("button", "border-radius"),
		cssvar.BuildLevelName("button", "border-width"),
	}
}

// colorVar builds the variant property name, falling back to the flat layer
// property when the variant does not define one.
func (b *Button) colorVar(property string) string {
	if b.variant != "" {
		return cssvar.BuildName("button", "color", b.variant+"-"+property, b.layer)
	}
	return cssvar.BuildName("button", "color", property, b.layer)
}

// CSSDeclarations renders the declaration list a web embedding would inline
// on the element: each value is a var() reference with the currently resolved
// value as its fallback, so styling updates live without a re-render.
func (b *Button) CSSDeclarations(theme Theme) []string {
	var decls []string

	for _, p := range []struct{ css, property string }{
		{"background", "background"},
		{"color", "text"},
		{"border-color", "border"},
	} {
		name := b.colorVar(p.property)
		if !theme.Has(name) {
			name = cssvar.BuildName("button", "color", p.property, b.layer)
		}
		if !theme.Has(name) {
			continue
		}
		decls = append(decls, p.css+": "+cssvar.VarExpr(name, theme.Var(name)))
	}

	for _, p := range []struct{ css, name string }{
		{"height", cssvar.BuildName("button", "size", b.size+"-height", "")},
		{"padding", cssvar.BuildName("button", "size", "padding", "")},
		{"border-radius", cssvar.BuildLevelName("button", "border-radius")},
		{"border-width", cssvar.BuildLevelName("button", "border-width")},
	} {
		if theme.Has(p.name) {
			decls = append(decls, p.css+": "+cssvar.VarExpr(p.name, theme.Var(p.name)))
		}
	}

	return decls
}

// View renders the button with the given theme.
func (b *Button) View(theme Theme) string {
	style := lipgloss.NewStyle().Padding(0, paddingCells(theme.PxInt(cssvar.BuildName("button", "size", "padding", ""))))

	if name := b.colorVar("background"); theme.Has(name) {
		style = style.Background(theme.Color(name))
	} else if flat := cssvar.BuildName("button", "color", "background", b.layer); theme.Has(flat) {
		style = style.Background(theme.Color(flat))
	}
	if name := b.colorVar("text"); theme.Has(name) {
		style = style.Foreground(theme.Color(name))
	} else if flat := cssvar.BuildName("button", "color", "text", b.layer); theme.Has(flat) {
		style = style.Foreground(theme.Color(flat))
	}
	if b.variant == VariantOutline {
		style = style.Border(lipgloss.NormalBorder())
		if name := b.colorVar("border"); theme.Has(name) {
			style = style.BorderForeground(theme.Color(name))
		}
	}

	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true)
	}

	return b.finish(style, theme).Render(b.label)
}

// paddingCells maps a pixel padding onto terminal cells.
func paddingCells(px int) int {
	if px <= 0 {
		return 0
	}
	cells := px / 4
	if cells < 1 {
		cells = 1
	}
	return cells
}
