package theme

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/cssvar"
	"github.com/alexisbeaulieu97/themekit/internal/elevation"
	"github.com/alexisbeaulieu97/themekit/internal/events"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/resolve"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/token"
)

// Options configures the engine. Store is required; a nil Sink defaults to an
// in-memory sink and a nil Bus to a fresh one.
type Options struct {
	Store  *store.Store
	Sink   cssvar.StyleSink
	Bus    *events.Bus
	Logger *logger.Logger
	Mode   token.Mode
}

// Engine is the composition root: it resolves the UIKit document against the
// current mode, derives elevation shadows, pushes the result through the
// applier, and publishes change events. Updates are synchronous; by the time
// a mutator returns, the sink and every subscriber have seen the change.
type Engine struct {
	store     *store.Store
	elevation *elevation.Engine
	bus       *events.Bus
	applier   *cssvar.Applier
	cache     *resolve.ThemeCache
	log       *logger.Logger

	mu   sync.Mutex
	mode token.Mode
}

// New wires an engine and applies the initial theme for the configured mode.
func New(opts Options) *Engine {
	log := opts.Logger.WithComponent("theme")
	sink := opts.Sink
	if sink == nil {
		sink = cssvar.NewMemorySink()
	}
	bus := opts.Bus
	if bus == nil {
		bus = events.NewBus(opts.Logger)
	}
	mode := opts.Mode
	if !mode.Valid() {
		mode = token.ModeLight
	}

	e := &Engine{
		store:     opts.Store,
		elevation: elevation.New(opts.Store, opts.Logger),
		bus:       bus,
		applier:   cssvar.NewApplier(sink),
		cache:     resolve.NewThemeCache(),
		log:       log,
		mode:      mode,
	}
	e.mu.Lock()
	e.reapply()
	e.mu.Unlock()
	return e
}

// Bus exposes the event bus for subscribers.
func (e *Engine) Bus() *events.Bus { return e.bus }

// Elevation exposes the shadow engine.
func (e *Engine) Elevation() *elevation.Engine { return e.elevation }

// Store exposes the backing store.
func (e *Engine) Store() *store.Store { return e.store }

// Mode returns the active mode.
func (e *Engine) Mode() token.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetMode switches the active mode and reapplies the full resolved theme,
// removing variables the new mode no longer produces.
func (e *Engine) SetMode(mode token.Mode) {
	if !mode.Valid() {
		return
	}
	e.mu.Lock()
	if mode == e.mode {
		e.mu.Unlock()
		return
	}
	e.mode = mode
	changed := e.reapply()
	e.mu.Unlock()

	e.publishUpdated(changed)
}

// Refresh recomputes the resolved theme for the active mode and applies any
// difference, publishing the changed variable names.
func (e *Engine) Refresh() {
	e.mu.Lock()
	changed := e.reapply()
	e.mu.Unlock()

	e.publishUpdated(changed)
}

// ResolvedVars returns the resolved variable map for a mode without touching
// the sink.
func (e *Engine) ResolvedVars(mode token.Mode) map[string]string {
	return e.resolved(mode)
}

// Shadow returns the computed shadow for a level in the active mode.
func (e *Engine) Shadow(level int) (elevation.Shadow, error) {
	return e.elevation.GetShadow(e.Mode(), level)
}

// SetTokenOverride layers a single token override and propagates it.
func (e *Engine) SetTokenOverride(name string, value token.Value) {
	e.store.SetOverride(name, value)
	e.bus.Publish(events.TokenOverridesChanged{Name: name, Value: value.CSS()})
	e.Refresh()
}

// ClearTokenOverrides drops every override and propagates.
func (e *Engine) ClearTokenOverrides() {
	e.store.ClearOverrides()
	e.bus.Publish(events.TokenOverridesChanged{All: true})
	e.Refresh()
}

// SetToken writes a concrete token value and propagates it.
func (e *Engine) SetToken(path string, value token.Value) {
	e.store.SetToken(path, value)
	e.Refresh()
}

// ResetPalette reseeds the palette, dismisses editing surfaces, and
// propagates the resulting variable changes.
func (e *Engine) ResetPalette() {
	e.store.ResetPalette()
	e.bus.Publish(events.PaletteReset{})
	e.bus.Publish(events.CloseAllPickersAndPanels{})
	e.Refresh()
}

// RevertElevation restores the given levels of the active mode to their
// derived defaults and publishes the reverted variable names.
func (e *Engine) RevertElevation(levels ...int) error {
	mode := e.Mode()
	if err := e.elevation.Revert(mode, levels...); err != nil {
		return err
	}

	e.mu.Lock()
	changed := e.reapply()
	e.mu.Unlock()

	if len(changed) > 0 {
		e.bus.Publish(events.CSSVarsReset{CSSVars: changed})
	}
	return nil
}

// reapply pushes the active mode's resolved theme through the applier and
// returns the names that actually changed. Callers hold e.mu.
func (e *Engine) reapply() []string {
	return e.applier.ApplyAll(e.resolved(e.mode))
}

func (e *Engine) publishUpdated(changed []string) {
	if len(changed) == 0 {
		return
	}
	e.bus.Publish(events.CSSVarsUpdated{CSSVars: changed})
}

// resolved memoizes the full variable map per (store revision, mode): the
// UIKit walk plus the per-level shadow variables.
func (e *Engine) resolved(mode token.Mode) map[string]string {
	return e.cache.Resolved(e.store.Revision(), mode, func() map[string]string {
		resolver := resolve.New(e.store.Tokens(), e.store.Theme()).WithOverrides(e.store.Overrides())
		vars, unresolved := resolve.BuildResolvedTheme(resolver, e.store.UIKit(), mode)
		for _, err := range unresolved {
			e.log.Warn(fmt.Sprintf("skipping unresolved theme entry: %v", err))
		}

		for level := 0; level <= elevation.MaxLevel; level++ {
			shadow, err := e.elevation.GetShadow(mode, level)
			if err != nil {
				e.log.Warn(fmt.Sprintf("skipping elevation level %d: %v", level, err))
				continue
			}
			vars[ShadowVarName(level)] = shadow.CSS()
		}
		return vars
	})
}

// ShadowVarName is the CSS variable carrying the box shadow for a level.
func ShadowVarName(level int) string {
	return cssvar.BuildKitName("elevation", fmt.Sprintf("level-%d", level))
}
