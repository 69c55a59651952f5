package store

import "github.com/alexisbeaulieu97/themekit/internal/token"

// ElevationKey addresses the per-mode, per-level shadow state. Level 0 is
// the zero baseline and never carries an override.
type ElevationKey struct {
	Mode  token.Mode
	Level int
}

// ElevationTokens records which token each shadow property of a level is
// currently bound to, plus the offset directions. The engine seeds these
// from the Theme document and users may repoint individual properties.
type ElevationTokens struct {
	Blur    string `json:"blur"`
	Spread  string `json:"spread"`
	OffsetX string `json:"offsetX"`
	OffsetY string `json:"offsetY"`
	Color   string `json:"color"`
	Opacity string `json:"opacity"`

	// XDirection is "left" or "right"; YDirection is "up" or "down".
	XDirection string `json:"xDirection"`
	YDirection string `json:"yDirection"`
}

// ElevationOverride pins raw pixel magnitudes for one level, bypassing token
// derivation entirely. Magnitudes are unsigned; direction is applied on read.
type ElevationOverride struct {
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// ElevationTokens returns the token bindings recorded for a level, if any.
func (s *Store) ElevationTokens(mode token.Mode, level int) (ElevationTokens, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bindings, ok := s.elevationTokens[ElevationKey{Mode: mode, Level: level}]
	return bindings, ok
}

// SetElevationTokens records the token bindings for a level.
func (s *Store) SetElevationTokens(mode token.Mode, level int, bindings ElevationTokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elevationTokens[ElevationKey{Mode: mode, Level: level}] = bindings
	s.bump()
}

// DeleteElevationTokens drops the recorded bindings so the next read
// re-derives them from the Theme document.
func (s *Store) DeleteElevationTokens(mode token.Mode, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.elevationTokens, ElevationKey{Mode: mode, Level: level})
	s.bump()
}

// ElevationOverride returns the raw-magnitude override for a level, if any.
func (s *Store) ElevationOverride(mode token.Mode, level int) (ElevationOverride, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	override, ok := s.elevationOverrides[ElevationKey{Mode: mode, Level: level}]
	return override, ok
}

// SetElevationOverride pins raw magnitudes for a level.
func (s *Store) SetElevationOverride(mode token.Mode, level int, override ElevationOverride) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elevationOverrides[ElevationKey{Mode: mode, Level: level}] = override
	s.bump()
}

// DeleteElevationOverride removes the override for a level.
func (s *Store) DeleteElevationOverride(mode token.Mode, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.elevationOverrides, ElevationKey{Mode: mode, Level: level})
	s.bump()
}
