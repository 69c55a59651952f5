package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/token"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// DocumentSet is one complete trio of source documents.
type DocumentSet struct {
	Tokens token.Document
	Theme  token.Document
	UIKit  token.Document
}

// Document file basenames a set is assembled from; the extension picks the
// codec.
const (
	TokensFile = "tokens"
	ThemeFile  = "theme"
	UIKitFile  = "uikit"
)

var extensions = []string{".json", ".yaml", ".yml"}

// Loader reads token documents from disk in JSON or YAML form.
type Loader struct {
	log *logger.Logger
}

// NewLoader creates a loader.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log.WithComponent("source")}
}

// LoadDocument reads a single document, dispatching on the file extension.
func (l *Loader) LoadDocument(ctx context.Context, path string) (token.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, err)
	}
	doc, err := decode(path, data)
	if err != nil {
		return nil, err
	}

	l.log.Debug(fmt.Sprintf("loaded document %s", path))
	return doc, nil
}

// LoadSet reads tokens, theme, and uikit documents from a directory and
// validates them as a unit. Each document may use either codec independently.
func (l *Loader) LoadSet(ctx context.Context, dir string) (DocumentSet, error) {
	var set DocumentSet
	for _, slot := range []struct {
		name string
		doc  *token.Document
	}{
		{TokensFile, &set.Tokens},
		{ThemeFile, &set.Theme},
		{UIKitFile, &set.UIKit},
	} {
		path, err := findDocument(dir, slot.name)
		if err != nil {
			return DocumentSet{}, err
		}
		*slot.doc, err = l.LoadDocument(ctx, path)
		if err != nil {
			return DocumentSet{}, err
		}
	}

	if err := token.ValidateDocuments(set.Tokens, set.Theme, set.UIKit); err != nil {
		return DocumentSet{}, err
	}
	return set, nil
}

// findDocument locates <dir>/<name> with any of the supported extensions.
func findDocument(dir, name string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", apperrors.NewParseError(filepath.Join(dir, name), os.ErrNotExist)
}

// decode unmarshals the document using the codec matching the extension.
func decode(path string, data []byte) (token.Document, error) {
	var doc token.Document
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, apperrors.NewParseError(path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, apperrors.NewParseError(path, err)
		}
	default:
		return nil, apperrors.NewParseError(path, fmt.Errorf("unsupported document extension %q", ext))
	}
	return doc, nil
}
