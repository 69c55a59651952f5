// Package events is the change-notification fabric between the token
// resolution engine and its consumers. Dispatch is synchronous: within one
// update cycle, sink writes happen before publish, and publish returns only
// after every subscriber ran.
package events

// Event type names. Together with the sink observer these are the entire
// public event surface of the engine.
const (
	TypeCSSVarsUpdated           = "cssVarsUpdated"
	TypeCSSVarsReset             = "cssVarsReset"
	TypePaletteReset             = "paletteReset"
	TypeTokenOverridesChanged    = "tokenOverridesChanged"
	TypeCloseAllPickersAndPanels = "closeAllPickersAndPanels"
)

// Event is a notification with a typed payload.
type Event interface {
	EventType() string
}

// CSSVarsUpdated reports a bulk or partial variable write. CSSVars lists
// exactly the names changed; an empty list means "assume a global change,
// re-check everything".
type CSSVarsUpdated struct {
	CSSVars []string
}

func (CSSVarsUpdated) EventType() string { return TypeCSSVarsUpdated }

// CSSVarsReset reports variables reverted to their derived defaults.
type CSSVarsReset struct {
	CSSVars []string
}

func (CSSVarsReset) EventType() string { return TypeCSSVarsReset }

// PaletteReset reports that user palette bindings were cleared.
type PaletteReset struct{}

func (PaletteReset) EventType() string { return TypePaletteReset }

// TokenOverridesChanged reports a token override mutation. All marks a
// wholesale replacement; otherwise Name/Value describe the single entry.
type TokenOverridesChanged struct {
	All   bool
	Name  string
	Value string
}

func (TokenOverridesChanged) EventType() string { return TypeTokenOverridesChanged }

// CloseAllPickersAndPanels asks every open editing surface to dismiss.
type CloseAllPickersAndPanels struct{}

func (CloseAllPickersAndPanels) EventType() string { return TypeCloseAllPickersAndPanels }
