package store

import (
	"encoding/json"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/token"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Persisted slot keys. Four data slots plus two version keys; nothing else
// touches durable storage.
const (
	keyTokens         = "tokens.json"
	keyTheme          = "theme.json"
	keyUIKit          = "uikit.json"
	keyPalette        = "palette.json"
	keyVersion        = "version"
	keyPaletteVersion = "palette.version"
)

// Options configures Open.
type Options struct {
	// Dir is the backing directory for durable storage. Empty means
	// in-memory only.
	Dir string
	// KV overrides the backing store entirely; used by tests.
	KV KV
	// Logger may be nil.
	Logger *logger.Logger
}

// Store owns the three source documents, the token override map, the palette
// sub-state, and the elevation sub-state. Every mutation bumps the revision
// counter, which downstream caches use as their memoization key.
type Store struct {
	mu  sync.RWMutex
	log *logger.Logger
	kv  KV

	revision uint64

	tokens token.Document
	theme  token.Document
	uikit  token.Document

	overrides map[string]token.Value
	palette   Palette

	elevationTokens    map[ElevationKey]ElevationTokens
	elevationOverrides map[ElevationKey]ElevationOverride
}

// Open loads persisted state, reseeding from the bundled defaults when the
// version hash differs or the persisted copy is unreadable. When the backing
// directory rejects writes the store runs in memory for the session.
func Open(opts Options) (*Store, error) {
	log := opts.Logger.WithComponent("store")

	kv := opts.KV
	if kv == nil {
		if opts.Dir == "" {
			kv = NewMemoryKV()
		} else {
			fileKV, err := NewFileKV(opts.Dir)
			switch {
			case err != nil || !fileKV.Probe():
				log.Warn("durable storage unavailable, running in memory for this session")
				kv = NewMemoryKV()
			default:
				kv = fileKV
			}
		}
	}

	s := &Store{
		log:                log,
		kv:                 kv,
		overrides:          make(map[string]token.Value),
		elevationTokens:    make(map[ElevationKey]ElevationTokens),
		elevationOverrides: make(map[ElevationKey]ElevationOverride),
	}
	s.load()
	return s, nil
}

// load fills the documents and palette from the kv store, reseeding on
// version mismatch or corruption.
func (s *Store) load() {
	wantVersion := DocumentsHash()
	gotVersion, hasVersion, _ := s.kv.Get(keyVersion)

	reseed := !hasVersion || string(gotVersion) != wantVersion
	if !reseed {
		tokens, okTokens := s.loadDocument(keyTokens)
		theme, okTheme := s.loadDocument(keyTheme)
		uikit, okUIKit := s.loadDocument(keyUIKit)
		if okTokens && okTheme && okUIKit {
			s.tokens, s.theme, s.uikit = tokens, theme, uikit
		} else {
			s.log.Warn("persisted documents unreadable, reseeding from bundled defaults")
			reseed = true
		}
	}
	if reseed {
		s.tokens = DefaultTokens()
		s.theme = DefaultTheme()
		s.uikit = DefaultUIKit()
		s.persistDocument(keyTokens, s.tokens)
		s.persistDocument(keyTheme, s.theme)
		s.persistDocument(keyUIKit, s.uikit)
		_ = s.kv.Set(keyVersion, []byte(wantVersion))
	}

	// Palette versions independently of the document trio.
	wantPalette := PaletteHash()
	gotPalette, hasPalette, _ := s.kv.Get(keyPaletteVersion)
	if hasPalette && string(gotPalette) == wantPalette {
		if data, ok, _ := s.kv.Get(keyPalette); ok {
			var p Palette
			if err := json.Unmarshal(data, &p); err == nil {
				s.palette = p
				return
			}
			s.log.Warn("persisted palette unreadable, reseeding")
		}
	}
	s.palette = DefaultPalette()
	s.persistPalette()
	_ = s.kv.Set(keyPaletteVersion, []byte(wantPalette))
}

func (s *Store) loadDocument(key string) (token.Document, bool) {
	data, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return nil, false
	}
	var doc token.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	return doc, true
}

func (s *Store) persistDocument(key string, doc token.Document) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.log.Error(err, "failed to marshal document")
		return
	}
	if err := s.kv.Set(key, data); err != nil {
		s.log.Error(apperrors.NewStorageError(key, err), "failed to persist document")
	}
}

func (s *Store) persistPalette() {
	data, err := json.MarshalIndent(s.palette, "", "  ")
	if err != nil {
		s.log.Error(err, "failed to marshal palette")
		return
	}
	if err := s.kv.Set(keyPalette, data); err != nil {
		s.log.Error(apperrors.NewStorageError(keyPalette, err), "failed to persist palette")
	}
}

// Revision returns the current mutation counter.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) bump() {
	s.revision++
}

// Tokens returns a deep copy of the Tokens document.
func (s *Store) Tokens() token.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Clone()
}

// Theme returns a deep copy of the Theme document.
func (s *Store) Theme() token.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme.Clone()
}

// UIKit returns a deep copy of the UIKit document.
func (s *Store) UIKit() token.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uikit.Clone()
}

// TokenValue reads a token leaf, override-aware.
func (s *Store) TokenValue(path string) (token.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if override, ok := s.overrides[path]; ok {
		return override, true
	}
	return s.tokens.Value(path)
}

// SetToken writes a concrete value into the Tokens document and persists.
func (s *Store) SetToken(path string, value token.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens.Set(path, value)
	s.bump()
	s.persistDocument(keyTokens, s.tokens)
}

// SetThemeEntry writes a leaf into the mode branch of the Theme document.
func (s *Store) SetThemeEntry(mode token.Mode, path string, leaf any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme.Set(string(mode)+"."+path, leaf)
	s.bump()
	s.persistDocument(keyTheme, s.theme)
}

// SetUIKitEntry writes a leaf into the UIKit document.
func (s *Store) SetUIKitEntry(path string, leaf any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uikit.Set(path, leaf)
	s.bump()
	s.persistDocument(keyUIKit, s.uikit)
}

// Overrides returns a copy of the token override map.
func (s *Store) Overrides() map[string]token.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]token.Value, len(s.overrides))
	for name, value := range s.overrides {
		out[name] = value
	}
	return out
}

// SetOverride layers a value over the Tokens document without mutating it.
func (s *Store) SetOverride(name string, value token.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[name] = value
	s.bump()
}

// DeleteOverride removes one override.
func (s *Store) DeleteOverride(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, name)
	s.bump()
}

// ClearOverrides removes every override.
func (s *Store) ClearOverrides() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[string]token.Value)
	s.bump()
}

// Palette returns a copy of the palette state.
func (s *Store) Palette() Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette.Clone()
}

// SetPaletteRole binds a role to a hex value and persists.
func (s *Store) SetPaletteRole(role, hexValue string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.palette.Roles == nil {
		s.palette.Roles = make(map[string]string)
	}
	s.palette.Roles[role] = hexValue
	s.bump()
	s.persistPalette()
}

// SetPaletteOpacity binds an opacity role and persists.
func (s *Store) SetPaletteOpacity(role string, alpha float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.palette.Opacities == nil {
		s.palette.Opacities = make(map[string]float64)
	}
	s.palette.Opacities[role] = alpha
	s.bump()
	s.persistPalette()
}

// SetPaletteSelection records a family/shade selection under a consumer key.
func (s *Store) SetPaletteSelection(key string, selection PaletteSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.palette.Selections == nil {
		s.palette.Selections = make(map[string]PaletteSelection)
	}
	s.palette.Selections[key] = selection
	s.bump()
	s.persistPalette()
}

// DeletePaletteSelection removes a selection.
func (s *Store) DeletePaletteSelection(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.palette.Selections, key)
	s.bump()
	s.persistPalette()
}

// ResetPalette reseeds the palette from the bundled defaults.
func (s *Store) ResetPalette() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.palette = DefaultPalette()
	s.bump()
	s.persistPalette()
}
