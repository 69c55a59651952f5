package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/token"
)

// Theme is an immutable snapshot of resolved custom properties for one mode.
// Components look their colors and sizes up by variable name, so a component
// rendered twice with different themes produces different output without any
// global state.
type Theme struct {
	mode token.Mode
	vars map[string]string
}

// NewTheme wraps a resolved variable map. The map is not copied; callers hand
// over snapshots they no longer mutate.
func NewTheme(mode token.Mode, vars map[string]string) Theme {
	return Theme{mode: mode, vars: vars}
}

// Mode returns the mode the snapshot was resolved for.
func (t Theme) Mode() token.Mode {
	return t.mode
}

// Var returns the raw value of a custom property, or "" when absent.
func (t Theme) Var(name string) string {
	return t.vars[name]
}

// Has reports whether the property resolved.
func (t Theme) Has(name string) bool {
	_, ok := t.vars[name]
	return ok
}

// Color adapts a resolved color property for lipgloss. Absent properties
// yield the zero color, which lipgloss treats as unset.
func (t Theme) Color(name string) lipgloss.Color {
	return lipgloss.Color(t.vars[name])
}

// PxInt parses a resolved pixel value ("8px") into an integer, returning 0
// for absent or non-pixel values.
func (t Theme) PxInt(name string) int {
	value, ok := t.vars[name]
	if !ok {
		return 0
	}
	value = strings.TrimSuffix(value, "px")
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return int(parsed)
}
