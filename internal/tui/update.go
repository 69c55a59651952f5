package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/token"
)

// Update handles Bubbletea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case VarsChangedMsg:
		if msg.Reset {
			m.lastEvent = fmt.Sprintf("%d variables reset", len(msg.Names))
		} else {
			m.lastEvent = fmt.Sprintf("%d variables updated", len(msg.Names))
		}
		// Changes to var()-consumed variables restyle through the snapshot
		// refresh; NeedsReread flags the ones that would force a full
		// re-render in an embedding surface, so set it after the refresh
		// clears the previous flag.
		m.resnapshot()
		m.needsRead = m.watch.NeedsReread(msg.Names)
		return m, m.nextEvent()

	case SinkChangedMsg:
		m.lastEvent = fmt.Sprintf("sink batch of %d names", len(msg.Names))
		m.resnapshot()
		return m, m.nextEvent()

	case PaletteResetMsg:
		m.lastEvent = "palette reset"
		m.resnapshot()
		return m, m.nextEvent()

	case ClosePanelsMsg:
		m.lastEvent = "panels dismissed"
		m.filter.Blur()
		return m, m.nextEvent()

	case tea.KeyMsg:
		if m.filter.Focused() {
			switch msg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.filter.Blur()
				return m, nil
			case tea.KeyCtrlC:
				m.quitting = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "m":
			if m.engine.Mode() == token.ModeLight {
				m.engine.SetMode(token.ModeDark)
			} else {
				m.engine.SetMode(token.ModeLight)
			}
			m.resnapshot()
			return m, nil
		case "r":
			m.engine.ResetPalette()
			return m, nil
		case "/":
			return m, m.filter.Focus()
		}
	}

	return m, nil
}
