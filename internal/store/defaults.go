package store

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"

	"github.com/alexisbeaulieu97/themekit/internal/token"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

func defaultBytes(name string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + name)
	if err != nil {
		// The defaults are compiled in; a missing file is a build defect.
		panic(err)
	}
	return data
}

// DocumentsHash is the content hash of the three bundled default documents
// concatenated. A shipped-defaults change produces a new hash, which
// invalidates stale persisted state on load.
func DocumentsHash() string {
	sum := sha256.New()
	sum.Write(defaultBytes("tokens.json"))
	sum.Write(defaultBytes("theme.json"))
	sum.Write(defaultBytes("uikit.json"))
	return hex.EncodeToString(sum.Sum(nil))
}

// PaletteHash is the content hash of the bundled palette defaults. The
// palette slot versions independently: reseeding tokens must not wipe user
// palette selections.
func PaletteHash() string {
	sum := sha256.Sum256(defaultBytes("palette.json"))
	return hex.EncodeToString(sum[:])
}

func defaultDocument(name string) token.Document {
	var doc token.Document
	if err := json.Unmarshal(defaultBytes(name), &doc); err != nil {
		panic(err)
	}
	return doc
}

// DefaultTokens returns a fresh copy of the bundled Tokens document.
func DefaultTokens() token.Document { return defaultDocument("tokens.json") }

// DefaultTheme returns a fresh copy of the bundled Theme document.
func DefaultTheme() token.Document { return defaultDocument("theme.json") }

// DefaultUIKit returns a fresh copy of the bundled UIKit document.
func DefaultUIKit() token.Document { return defaultDocument("uikit.json") }

// DefaultPalette returns a fresh copy of the bundled palette state.
func DefaultPalette() Palette {
	var p Palette
	if err := json.Unmarshal(defaultBytes("palette.json"), &p); err != nil {
		panic(err)
	}
	return p
}
