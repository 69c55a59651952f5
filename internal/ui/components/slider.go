package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
)

// Slider renders a horizontal value bar using the slider track/fill/thumb
// variables.
type Slider struct {
	BaseComponent
	value float64
	width int
}

// NewSlider creates a slider at the given position, clamped to [0, 1].
func NewSlider(value float64) *Slider {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	return &Slider{value: value, width: 20}
}

// WithWidth sets the bar width in cells.
func (s *Slider) WithWidth(width int) *Slider {
	if width > 0 {
		s.width = width
	}
	return s
}

// Value returns the slider position.
func (s *Slider) Value() float64 {
	return s.value
}

// View renders the slider with the given theme.
func (s *Slider) View(theme Theme) string {
	filled := int(s.value * float64(s.width))
	if filled > s.width {
		filled = s.width
	}

	fillStyle := lipgloss.NewStyle().Foreground(theme.Color(cssvar.BuildName("slider", "color", "fill", "layer-0")))
	trackStyle := lipgloss.NewStyle().Foreground(theme.Color(cssvar.BuildName("slider", "color", "track", "layer-0")))
	thumbStyle := lipgloss.NewStyle().Foreground(theme.Color(cssvar.BuildName("slider", "color", "thumb", "layer-0")))

	var b strings.Builder
	b.WriteString(fillStyle.Render(strings.Repeat("━", filled)))
	b.WriteString(thumbStyle.Render("●"))
	if remaining := s.width - filled; remaining > 0 {
		b.WriteString(trackStyle.Render(strings.Repeat("─", remaining)))
	}

	return s.finish(lipgloss.NewStyle(), theme).Render(b.String())
}
