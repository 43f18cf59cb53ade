package fs

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/contentlint/pkg/core"
)

// Config holds the configuration for one language tree.
type Config struct {
	Path       string
	Extensions []string // e.g. ".md"; empty means DefaultExtensions
	Exclude    []string // doublestar globs relative to Path
	Logger     *slog.Logger
	Parser     Parser // defaults to FrontmatterParser
}

// Repository reads the documents of one language tree.
// It never writes to the tree.
type Repository struct {
	Path   string
	walker *Walker
	parser Parser
	logger *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) (*Repository, error) {
	walker, err := NewWalker(config.Extensions, config.Exclude)
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	parser := config.Parser
	if parser == nil {
		parser = NewFrontmatterParser()
	}

	return &Repository{
		Path:   config.Path,
		walker: walker,
		parser: parser,
		logger: logger,
	}, nil
}

// List walks the tree and parses every document.
//
// Strategy:
//  1. Walk the tree (missing root means zero documents, other I/O errors abort).
//  2. Parse each document's header and body.
//  3. A document that fails to read or parse is logged, recorded as a LoadError and
//     still returned with empty metadata, so one bad file never hides the rest.
func (r *Repository) List(ctx context.Context) ([]core.Document, []core.LoadError, error) {
	entries, err := r.walker.Walk(ctx, r.Path)
	if err != nil {
		return nil, nil, err
	}

	docs := make([]core.Document, 0, len(entries))
	var failures []core.LoadError

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		doc, err := r.Get(e)
		if err != nil {
			r.logger.Error("failed to read document", "path", e.Path, "error", err)
			failures = append(failures, core.LoadError{Path: e.Path, RelPath: e.RelPath, Err: err})
			doc = core.Document{Path: e.Path, RelPath: e.RelPath, Metadata: make(core.Metadata)}
		}
		docs = append(docs, doc)
	}

	r.logger.Debug("listed documents", "path", r.Path, "count", len(docs), "failed", len(failures))
	return docs, failures, nil
}

// Get reads and parses a single entry.
func (r *Repository) Get(e Entry) (core.Document, error) {
	f, err := os.Open(e.Path)
	if err != nil {
		return core.Document{}, err
	}
	defer f.Close()

	meta, body, err := r.parser.Parse(f)
	if err != nil {
		return core.Document{}, err
	}

	return core.Document{
		Path:     e.Path,
		RelPath:  e.RelPath,
		Metadata: meta,
		Content:  body,
	}, nil
}
