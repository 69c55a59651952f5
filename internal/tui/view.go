package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// maxListedVars bounds the variable listing so the preview stays readable.
const maxListedVars = 12

// View renders the preview.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := titleStyle.Render(fmt.Sprintf("Themekit • %s mode", m.Mode()))
	sections = append(sections, title)

	sections = append(sections, sectionStyle.Render("Components"), m.renderComponents())

	sections = append(sections, sectionStyle.Render("Variables"), m.filter.View(), m.renderVars())

	if m.lastEvent != "" {
		line := eventStyle.Render(m.lastEvent)
		if m.needsRead {
			line += " " + warnStyle.Render("(re-read required)")
		}
		sections = append(sections, line)
	}

	sections = append(sections, helpStyle.Render("m mode · r reset palette · / filter · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderComponents() string {
	theme := m.snapshot

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewButton("Save").View(theme), " ",
		components.NewButton("Cancel").WithVariant(components.VariantOutline).View(theme), " ",
		components.NewButton("More").WithVariant(components.VariantGhost).View(theme), " ",
		components.NewButton("Delete").WithVariant(components.VariantSolid).WithLayer("alert").View(theme),
	)
	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewBadge("new").WithVariant(components.VariantSolid).View(theme), " ",
		components.NewBadge("3 pending").WithLayer("warning").View(theme),
	)
	slider := components.NewSlider(0.6).WithWidth(24).View(theme)

	return lipgloss.JoinVertical(lipgloss.Left, buttons, badges, slider)
}

func (m *Model) renderVars() string {
	filter := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	names := make([]string, 0, maxListedVars)
	all := m.engine.ResolvedVars(m.Mode())
	for name := range all {
		if filter == "" || strings.Contains(name, filter) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	total := len(names)
	if total > maxListedVars {
		names = names[:maxListedVars]
	}

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf(" %s %s", name, mutedStyle.Render(all[name])))
	}
	if total > maxListedVars {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf(" … %d more", total-maxListedVars)))
	}
	if len(lines) == 0 {
		lines = append(lines, mutedStyle.Render(" no variables match"))
	}
	return strings.Join(lines, "\n")
}
