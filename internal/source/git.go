package source

import (
	"context"
	"fmt"
	"io"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/themekit/internal/token"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// GitSource reads a document set from a revision of a local git repository
// without touching the working tree, so a theme editor can diff the live
// documents against any committed version.
type GitSource struct {
	repoPath string
	loader   *Loader
}

// NewGitSource opens a source over the repository at repoPath.
func NewGitSource(repoPath string, loader *Loader) *GitSource {
	return &GitSource{repoPath: repoPath, loader: loader}
}

// LoadSet reads the document trio from the named revision (branch, tag, or
// hash). Documents live at the repository root under the standard basenames.
func (g *GitSource) LoadSet(ctx context.Context, revision string) (DocumentSet, error) {
	if err := ctx.Err(); err != nil {
		return DocumentSet{}, err
	}

	repo, err := git.PlainOpen(g.repoPath)
	if err != nil {
		return DocumentSet{}, apperrors.NewStorageError(g.repoPath, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return DocumentSet{}, apperrors.NewStorageError(g.repoPath, fmt.Errorf("resolve revision %q: %w", revision, err))
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return DocumentSet{}, apperrors.NewStorageError(g.repoPath, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return DocumentSet{}, apperrors.NewStorageError(g.repoPath, err)
	}

	var set DocumentSet
	for _, slot := range []struct {
		name string
		doc  *token.Document
	}{
		{TokensFile, &set.Tokens},
		{ThemeFile, &set.Theme},
		{UIKitFile, &set.UIKit},
	} {
		*slot.doc, err = readTreeDocument(tree, slot.name)
		if err != nil {
			return DocumentSet{}, err
		}
	}

	if err := token.ValidateDocuments(set.Tokens, set.Theme, set.UIKit); err != nil {
		return DocumentSet{}, err
	}
	return set, nil
}

// readTreeDocument finds <name>.<ext> in the tree and decodes it.
func readTreeDocument(tree *object.Tree, name string) (token.Document, error) {
	for _, ext := range extensions {
		path := name + ext
		file, err := tree.File(path)
		if err != nil {
			continue
		}
		reader, err := file.Reader()
		if err != nil {
			return nil, apperrors.NewParseError(path, err)
		}
		data, err := io.ReadAll(reader)
		closeErr := reader.Close()
		if err != nil {
			return nil, apperrors.NewParseError(path, err)
		}
		if closeErr != nil {
			return nil, apperrors.NewParseError(path, closeErr)
		}
		return decode(path, data)
	}
	return nil, apperrors.NewParseError(name, object.ErrFileNotFound)
}
