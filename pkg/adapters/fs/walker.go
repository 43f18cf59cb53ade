package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is returned for exclude globs doublestar cannot compile.
var ErrBadPattern = errors.New("invalid exclude pattern")

// DefaultExtensions is the document filter used when none is configured.
var DefaultExtensions = []string{".md"}

// Entry is one document found by the Walker.
type Entry struct {
	// Path is absolute.
	Path string
	// RelPath is relative to the walked root, slash separated.
	RelPath string
}

// Walker enumerates documents under a root directory.
type Walker struct {
	extensions []string
	exclude    []string
}

// NewWalker creates a Walker. Empty extensions fall back to DefaultExtensions.
// Exclude patterns are doublestar globs matched against the relative path.
func NewWalker(extensions, exclude []string) (*Walker, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	for _, p := range exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, p)
		}
	}
	return &Walker{
		extensions: slices.Clone(extensions),
		exclude:    slices.Clone(exclude),
	}, nil
}

// Walk returns every matching document below root in lexical order.
// A missing root yields no entries and no error: an absent language tree holds zero documents.
// Any other filesystem error aborts the walk, since partial results would skew comparisons.
func (w *Walker) Walk(ctx context.Context, root string) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	var entries []Entry
	err = filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == abs {
			return nil
		}

		relPath, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if w.excluded(relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(w.extensions, filepath.Ext(d.Name())) {
			return nil
		}
		if d.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return err
			}
			if !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		entries = append(entries, Entry{Path: path, RelPath: relPath})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", abs, err)
	}

	return entries, nil
}

func (w *Walker) excluded(relPath string) bool {
	for _, p := range w.exclude {
		// Patterns are validated in NewWalker.
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
	}
	return false
}
