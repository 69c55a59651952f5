package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
)

// Badge is a small status indicator driven by the badge variables.
type Badge struct {
	BaseComponent
	text    string
	variant string
	layer   string
}

// NewBadge creates a flat layer-0 badge.
func NewBadge(text string) *Badge {
	return &Badge{text: text, layer: "layer-0"}
}

// WithVariant sets the color variant.
func (b *Badge) WithVariant(variant string) *Badge {
	b.variant = variant
	return b
}

// WithLayer sets the surface layer. The warning layer gives the amber badge.
func (b *Badge) WithLayer(layer string) *Badge {
	b.layer = layer
	return b
}

// WithAppliers appends theme-aware style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

func (b *Badge) colorVar(property string) string {
	if b.variant != "" {
		return cssvar.BuildName("badge", "color", b.variant+"-"+property, b.layer)
	}
	return cssvar.BuildName("badge", "color", property, b.layer)
}

// View renders the badge with the given theme.
func (b *Badge) View(theme Theme) string {
	style := lipgloss.NewStyle().Padding(0, paddingCells(theme.PxInt(cssvar.BuildName("badge", "size", "padding", ""))))

	if name := b.colorVar("background"); theme.Has(name) {
		style = style.Background(theme.Color(name))
	} else if flat := cssvar.BuildName("badge", "color", "background", b.layer); theme.Has(flat) {
		style = style.Background(theme.Color(flat))
	}
	if name := b.colorVar("text"); theme.Has(name) {
		style = style.Foreground(theme.Color(name))
	} else if flat := cssvar.BuildName("badge", "color", "text", b.layer); theme.Has(flat) {
		style = style.Foreground(theme.Color(flat))
	}

	return b.finish(style, theme).Render(b.text)
}
