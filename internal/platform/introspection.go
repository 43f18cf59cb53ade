package platform

import (
	"github.com/aretw0/introspection"
)

// LinterState exposes the resolved configuration for observability.
type LinterState struct {
	Root               string   `json:"root"`
	ContentDir         string   `json:"content_dir"`
	Languages          []string `json:"languages"`
	Extensions         []string `json:"extensions"`
	Exclude            []string `json:"exclude,omitempty"`
	AllowDuplicateKeys bool     `json:"allow_duplicate_keys"`
	Trees              []any    `json:"trees"`
}

// State implements introspection.Introspectable.
func (l *Linter) State() any {
	langs := make([]string, 0, len(l.trees))
	trees := make([]any, 0, len(l.trees))
	for _, t := range l.trees {
		langs = append(langs, t.lang.Code)
		trees = append(trees, t.repo.State())
	}

	return LinterState{
		Root:               l.root,
		ContentDir:         l.contentDir,
		Languages:          langs,
		Extensions:         l.opts.extensions,
		Exclude:            l.opts.exclude,
		AllowDuplicateKeys: l.opts.allowDuplicateKeys,
		Trees:              trees,
	}
}

// ComponentType implements introspection.Component.
func (l *Linter) ComponentType() string {
	return "linter"
}

var _ introspection.Introspectable = (*Linter)(nil)
var _ introspection.Component = (*Linter)(nil)
