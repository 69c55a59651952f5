package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/token"
)

func newPreview(t *testing.T) (*Model, *theme.Engine) {
	t.Helper()
	st, err := store.Open(store.Options{})
	require.NoError(t, err)
	engine := theme.New(theme.Options{Store: st})
	model := NewModel(engine)
	t.Cleanup(model.Close)
	return model, engine
}

func TestViewRendersComponentsAndVars(t *testing.T) {
	model, _ := newPreview(t)

	view := model.View()
	require.Contains(t, view, "light mode")
	require.Contains(t, view, "Save")
	require.Contains(t, view, "Cancel")
	require.Contains(t, view, "--ns-components-")
}

func TestModeKeyTogglesEngineMode(t *testing.T) {
	model, engine := newPreview(t)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	model = updated.(*Model)

	require.Equal(t, token.ModeDark, engine.Mode())
	require.Contains(t, model.View(), "dark mode")
}

func TestBusEventsReachTheLoop(t *testing.T) {
	model, engine := newPreview(t)

	engine.SetTokenOverride("size.corner", token.NumberValue(12, "px"))

	select {
	case msg := <-model.msgs:
		changed, ok := msg.(VarsChangedMsg)
		require.True(t, ok)
		require.Contains(t, changed.Names, "--ns-components-button-border-radius")

		updated, _ := model.Update(changed)
		model = updated.(*Model)
		require.Contains(t, model.View(), "variables updated")
	case <-time.After(time.Second):
		t.Fatal("no message arrived from the bus")
	}
}

func TestResetKeyPublishesPaletteReset(t *testing.T) {
	model, _ := newPreview(t)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(*Model)

	var sawReset bool
	deadline := time.After(time.Second)
	for !sawReset {
		select {
		case msg := <-model.msgs:
			if _, ok := msg.(PaletteResetMsg); ok {
				sawReset = true
			}
		case <-deadline:
			t.Fatal("palette reset never arrived")
		}
	}
}

func TestFilterNarrowsVariableListing(t *testing.T) {
	model, _ := newPreview(t)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model = updated.(*Model)
	for _, r := range "badge" {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		model = updated.(*Model)
	}

	view := model.View()
	require.Contains(t, view, "--ns-components-badge-")
	require.NotContains(t, view, "--ns-components-slider-")
}

func TestObservedSinkFeedsTheLoop(t *testing.T) {
	st, err := store.Open(store.Options{})
	require.NoError(t, err)
	// A long debounce keeps the timer from firing on its own; Flush delivers
	// the whole coalesced batch in one deterministic message.
	observed := cssvar.NewObservedSink(cssvar.NewMemorySink(), time.Minute)
	engine := theme.New(theme.Options{Store: st, Sink: observed})

	model := NewModel(engine)
	t.Cleanup(model.Close)
	model.ObserveSink(observed)

	engine.SetToken("size.corner", token.NumberValue(10, "px"))
	observed.Flush()

	var sawSinkBatch bool
	deadline := time.After(time.Second)
	for !sawSinkBatch {
		select {
		case msg := <-model.msgs:
			if batch, ok := msg.(SinkChangedMsg); ok {
				require.Contains(t, batch.Names, "--ns-components-button-border-radius")
				sawSinkBatch = true
			}
		case <-deadline:
			t.Fatal("no sink batch arrived")
		}
	}
}

func TestNeedsRereadFlagsTypographyChange(t *testing.T) {
	model, _ := newPreview(t)

	updated, _ := model.Update(VarsChangedMsg{Names: []string{"--ns-ui-kit-typography-family"}})
	model = updated.(*Model)
	require.True(t, model.needsRead)

	updated, _ = model.Update(VarsChangedMsg{Names: []string{"--ns-components-button-color-layer-0-variant-solid-background"}})
	model = updated.(*Model)
	require.False(t, model.needsRead)
}
