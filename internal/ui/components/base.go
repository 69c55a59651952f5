package components

import "github.com/charmbracelet/lipgloss"

// StyleFunc transforms a lipgloss style using data from a Theme. It is the
// extension point for callers that want styling beyond what the resolved
// variables provide.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent provides the shared style pipeline. Embed it in component
// structs; the component's own variable-driven style runs first, then any
// caller-supplied appliers in order.
type BaseComponent struct {
	appliers []StyleFunc
}

// AddAppliers appends style appliers to the pipeline.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers, appliers...)
}

// finish runs the caller-supplied appliers over the computed style.
func (b *BaseComponent) finish(style lipgloss.Style, theme Theme) lipgloss.Style {
	for _, apply := range b.appliers {
		style = apply(style, theme)
	}
	return style
}
