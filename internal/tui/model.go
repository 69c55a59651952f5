package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/elevation"
	"github.com/alexisbeaulieu97/themekit/internal/events"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/token"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// VarsChangedMsg carries variable names that changed on the live theme.
type VarsChangedMsg struct {
	Names []string
	Reset bool
}

// PaletteResetMsg reports that the palette was reseeded.
type PaletteResetMsg struct{}

// ClosePanelsMsg asks editing surfaces to dismiss.
type ClosePanelsMsg struct{}

// SinkChangedMsg carries a coalesced change set observed on the style sink.
type SinkChangedMsg struct {
	Names []string
}

// Model is the Bubbletea state for the theme preview: live component
// renderings plus a filterable listing of the resolved variables.
type Model struct {
	engine *theme.Engine
	filter textinput.Model

	msgs  chan tea.Msg
	subs  []events.Subscription
	watch *events.WatchSet

	snapshot  components.Theme
	lastEvent string
	needsRead bool
	quitting  bool
}

// NewModel wires a preview over a running engine. The returned model owns bus
// subscriptions; call Close when the program exits.
func NewModel(engine *theme.Engine) *Model {
	filter := textinput.New()
	filter.Placeholder = "filter variables"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	m := &Model{
		engine: engine,
		filter: filter,
		msgs:   make(chan tea.Msg, 16),
		watch:  events.NewWatchSet(),
	}

	// Computed box-shadow strings and typography cannot be consumed through a
	// live var() reference; plain color variables restyle automatically.
	for level := 0; level <= elevation.MaxLevel; level++ {
		m.watch.Watch(theme.ShadowVarName(level), events.ClassNeedsReread)
	}
	m.watch.Watch("--ns-ui-kit-typography-family", events.ClassNeedsReread)
	for _, name := range components.NewButton("").VarNames() {
		m.watch.Watch(name, events.ClassCSSAuto)
	}

	bus := engine.Bus()
	m.subs = append(m.subs,
		bus.Subscribe(events.TypeCSSVarsUpdated, func(event events.Event) {
			m.push(VarsChangedMsg{Names: event.(events.CSSVarsUpdated).CSSVars})
		}),
		bus.Subscribe(events.TypeCSSVarsReset, func(event events.Event) {
			m.push(VarsChangedMsg{Names: event.(events.CSSVarsReset).CSSVars, Reset: true})
		}),
		bus.Subscribe(events.TypePaletteReset, func(events.Event) {
			m.push(PaletteResetMsg{})
		}),
		bus.Subscribe(events.TypeCloseAllPickersAndPanels, func(events.Event) {
			m.push(ClosePanelsMsg{})
		}),
	)

	m.resnapshot()
	return m
}

// ObserveSink registers the preview on an observed sink, so debounced
// low-level mutations surface alongside the bus events.
func (m *Model) ObserveSink(sink *cssvar.ObservedSink) {
	sink.Watch(func(changed []string) {
		m.push(SinkChangedMsg{Names: changed})
	})
}

// push hands a bus event to the Bubbletea loop without blocking the
// publisher.
func (m *Model) push(msg tea.Msg) {
	select {
	case m.msgs <- msg:
	default:
	}
}

// Close releases the bus subscriptions.
func (m *Model) Close() {
	for _, sub := range m.subs {
		sub.Unsubscribe()
	}
	m.subs = nil
}

// Init starts listening for theme events.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.nextEvent())
}

func (m *Model) nextEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgs
	}
}

// Mode returns the previewed mode.
func (m *Model) Mode() token.Mode {
	return m.engine.Mode()
}

// Snapshot returns the theme snapshot components render with.
func (m *Model) Snapshot() components.Theme {
	return m.snapshot
}

func (m *Model) resnapshot() {
	mode := m.engine.Mode()
	m.snapshot = components.NewTheme(mode, m.engine.ResolvedVars(mode))
	m.needsRead = false
}
