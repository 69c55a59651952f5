package elevation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/resolve"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/token"
)

// MaxLevel is the highest shadow level. Level 0 is the flat baseline.
const MaxLevel = 4

// sizeGroup is the Tokens branch the auto-scale progression is built from.
const sizeGroup = "size"

// ScaleFlags selects which shadow properties auto-scale with the level.
// Blur scales by default; the others track their bound token verbatim.
type ScaleFlags struct {
	Blur    bool
	Spread  bool
	OffsetX bool
	OffsetY bool
}

// DefaultScaleFlags returns the out-of-the-box scaling behavior.
func DefaultScaleFlags() ScaleFlags {
	return ScaleFlags{Blur: true}
}

// Engine derives per-level box shadows from the store: token bindings seeded
// from the Theme document, optional raw-magnitude overrides, palette role and
// selection precedence, and progression-based auto-scaling.
type Engine struct {
	store *store.Store
	log   *logger.Logger

	mu    sync.RWMutex
	scale map[store.ElevationKey]ScaleFlags
}

// New builds an engine over the store.
func New(st *store.Store, log *logger.Logger) *Engine {
	return &Engine{
		store: st,
		log:   log.WithComponent("elevation"),
		scale: make(map[store.ElevationKey]ScaleFlags),
	}
}

// Scale returns the scale flags for a level.
func (e *Engine) Scale(mode token.Mode, level int) ScaleFlags {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if flags, ok := e.scale[store.ElevationKey{Mode: mode, Level: level}]; ok {
		return flags
	}
	return DefaultScaleFlags()
}

// SetScale replaces the scale flags for a level.
func (e *Engine) SetScale(mode token.Mode, level int, flags ScaleFlags) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scale[store.ElevationKey{Mode: mode, Level: level}] = flags
}

// GetShadow computes the shadow for a level in a mode. Level 0 is always the
// zero shadow.
func (e *Engine) GetShadow(mode token.Mode, level int) (Shadow, error) {
	if level <= 0 {
		return Shadow{}, nil
	}
	if level > MaxLevel {
		return Shadow{}, fmt.Errorf("elevation level %d out of range [0,%d]", level, MaxLevel)
	}

	tokens := e.store.Tokens()
	resolver := resolve.New(tokens, e.store.Theme()).WithOverrides(e.store.Overrides())

	bindings, err := e.bindings(mode, level)
	if err != nil {
		return Shadow{}, err
	}
	baseline, err := e.bindings(mode, 0)
	if err != nil {
		return Shadow{}, err
	}

	var shadow Shadow
	if override, ok := e.store.ElevationOverride(mode, level); ok {
		shadow.BlurPx = override.Blur
		shadow.SpreadPx = override.Spread
		shadow.OffsetXPx = override.OffsetX
		shadow.OffsetYPx = override.OffsetY
	} else {
		flags := e.Scale(mode, level)
		progression := token.ProgressionFromGroup(tokens, sizeGroup)

		shadow.BlurPx, err = e.magnitude(resolver, progression, level, bindings.Blur, baseline.Blur, flags.Blur)
		if err != nil {
			return Shadow{}, err
		}
		shadow.SpreadPx, err = e.magnitude(resolver, progression, level, bindings.Spread, baseline.Spread, flags.Spread)
		if err != nil {
			return Shadow{}, err
		}
		shadow.OffsetXPx, err = e.magnitude(resolver, progression, level, bindings.OffsetX, baseline.OffsetX, flags.OffsetX)
		if err != nil {
			return Shadow{}, err
		}
		shadow.OffsetYPx, err = e.magnitude(resolver, progression, level, bindings.OffsetY, baseline.OffsetY, flags.OffsetY)
		if err != nil {
			return Shadow{}, err
		}
	}

	if bindings.XDirection == "left" {
		shadow.OffsetXPx = -shadow.OffsetXPx
	}
	if bindings.YDirection == "up" {
		shadow.OffsetYPx = -shadow.OffsetYPx
	}

	shadow.ColorHex, err = e.color(resolver, mode, level, bindings)
	if err != nil {
		return Shadow{}, err
	}
	shadow.Alpha, err = e.alpha(resolver, mode, bindings)
	if err != nil {
		return Shadow{}, err
	}
	return shadow, nil
}

// magnitude resolves one size property. When scaling is enabled and the
// level's token still matches the level-0 baseline token, the value advances
// through the size progression instead of reading the token directly.
func (e *Engine) magnitude(resolver *resolve.Resolver, progression token.Progression, level int, path, baselinePath string, scaled bool) (float64, error) {
	if path == "" {
		return 0, nil
	}
	if scaled && path == baselinePath {
		if short, ok := strings.CutPrefix(path, sizeGroup+"."); ok {
			if step, ok := progression.Advance(short, level); ok {
				return step.Value.Float(), nil
			}
		}
	}
	value, err := resolver.Resolve(token.TokenRef(path), "")
	if err != nil {
		return 0, err
	}
	return value.Float(), nil
}

// color applies precedence: explicit palette selection for the level, then a
// palette role matching the bound color token, then the token itself.
func (e *Engine) color(resolver *resolve.Resolver, mode token.Mode, level int, bindings store.ElevationTokens) (string, error) {
	palette := e.store.Palette()

	if selection, ok := palette.Selection(selectionKey(mode, level)); ok {
		value, err := resolver.Resolve(token.TokenRef("color."+selection.Family+"."+selection.Shade), mode)
		if err != nil {
			return "", err
		}
		return value.CSS(), nil
	}
	if role, ok := strings.CutPrefix(bindings.Color, "color."); ok {
		if hexValue, ok := palette.Role(role); ok {
			return hexValue, nil
		}
	}
	value, err := resolver.Resolve(token.TokenRef(bindings.Color), mode)
	if err != nil {
		return "", err
	}
	return value.CSS(), nil
}

// alpha prefers a palette opacity role over the bound opacity token.
func (e *Engine) alpha(resolver *resolve.Resolver, mode token.Mode, bindings store.ElevationTokens) (float64, error) {
	if role, ok := strings.CutPrefix(bindings.Opacity, "opacity."); ok {
		if alpha, ok := e.store.Palette().Opacity(role); ok {
			return alpha, nil
		}
	}
	value, err := resolver.Resolve(token.TokenRef(bindings.Opacity), mode)
	if err != nil {
		return 0, err
	}
	return value.Float(), nil
}

// selectionKey is the palette-selection key an elevation level's color picker
// writes under.
func selectionKey(mode token.Mode, level int) string {
	return fmt.Sprintf("elevation.%s.%d", mode, level)
}

// bindings returns the recorded token bindings for a level, deriving and
// recording them from the Theme document on first access. Level 0 shares the
// elevation-1 bindings; it is the progression baseline, not a visible shadow.
func (e *Engine) bindings(mode token.Mode, level int) (store.ElevationTokens, error) {
	if bindings, ok := e.store.ElevationTokens(mode, level); ok {
		return bindings, nil
	}
	bindings, err := e.deriveBindings(mode, level)
	if err != nil {
		return store.ElevationTokens{}, err
	}
	e.store.SetElevationTokens(mode, level, bindings)
	return bindings, nil
}

// deriveBindings reads elevation-<level> from the current mode branch of the
// Theme document.
func (e *Engine) deriveBindings(mode token.Mode, level int) (store.ElevationTokens, error) {
	themeLevel := level
	if themeLevel == 0 {
		themeLevel = 1
	}
	branch := e.store.Theme().ModeBranch(mode)
	if branch == nil {
		return store.ElevationTokens{}, fmt.Errorf("theme has no %q branch", mode)
	}
	node := branch.Branch(fmt.Sprintf("elevation-%d", themeLevel))
	if node == nil {
		return store.ElevationTokens{}, fmt.Errorf("theme %s branch has no elevation-%d entry", mode, themeLevel)
	}

	bindings := store.ElevationTokens{
		Blur:       tokenPath(node, "blur"),
		Spread:     tokenPath(node, "spread"),
		OffsetX:    tokenPath(node, "offset-x"),
		OffsetY:    tokenPath(node, "offset-y"),
		Color:      tokenPath(node, "color"),
		Opacity:    tokenPath(node, "opacity"),
		XDirection: "right",
		YDirection: "down",
	}
	if direction, ok := node.Value("x-direction"); ok {
		bindings.XDirection = direction.CSS()
	}
	if direction, ok := node.Value("y-direction"); ok {
		bindings.YDirection = direction.CSS()
	}
	return bindings, nil
}

// tokenPath extracts the Tokens path a theme shadow property references.
func tokenPath(node token.Document, key string) string {
	ref, ok := node.Reference(key)
	if !ok || ref.Kind != token.RefToken {
		return ""
	}
	return ref.Name
}

// Revert restores the given levels of a mode to their Theme-derived defaults:
// the raw-magnitude override and any repointed bindings are dropped, scale
// flags reset, and the resolved default magnitudes are written back into the
// Tokens document so every level sharing those tokens renders consistently.
func (e *Engine) Revert(mode token.Mode, levels ...int) error {
	// Default magnitudes resolve against the bundled documents: the point of
	// revert is to undo user edits to the shared tokens, not to re-read them.
	defaults := resolve.New(store.DefaultTokens(), store.DefaultTheme())

	for _, level := range levels {
		if level <= 0 || level > MaxLevel {
			continue
		}
		e.store.DeleteElevationOverride(mode, level)
		e.store.DeleteElevationTokens(mode, level)

		e.mu.Lock()
		delete(e.scale, store.ElevationKey{Mode: mode, Level: level})
		e.mu.Unlock()

		bindings, err := e.deriveBindings(mode, level)
		if err != nil {
			return err
		}
		e.store.SetElevationTokens(mode, level, bindings)
		e.log.Debug(fmt.Sprintf("reverted %s elevation level %d to theme defaults", mode, level))

		for _, path := range []string{bindings.Blur, bindings.Spread, bindings.OffsetX, bindings.OffsetY} {
			if path == "" {
				continue
			}
			value, err := defaults.Resolve(token.TokenRef(path), mode)
			if err != nil {
				return err
			}
			e.store.DeleteOverride(path)
			e.store.SetToken(path, value)
		}
	}
	return nil
}
