package platform

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/contentlint/pkg/adapters/fs"
	"github.com/aretw0/contentlint/pkg/check"
	"github.com/aretw0/contentlint/pkg/core"
)

// Check names accepted by Linter.Run.
const (
	CheckNeedsReview     = "needs-review"
	CheckTranslationKeys = "translation-keys"
)

// Checks lists every check in the order "all" runs them.
var Checks = []string{CheckNeedsReview, CheckTranslationKeys}

// tree is one language directory and the repository that reads it.
type tree struct {
	lang core.Language
	dir  string // display prefix, e.g. content/en
	repo *fs.Repository
}

// Linter runs content checks over the language trees of one site.
type Linter struct {
	root       string
	contentDir string
	trees      []tree
	checkOpts  []check.Option
	logger     *slog.Logger
	opts       *options
}

// New creates a Linter for the site rooted at siteRoot.
// Invalid language codes and exclude patterns are reported here, before any file is read.
func New(siteRoot string, opts ...Option) (*Linter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	root, err := filepath.Abs(siteRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site root: %w", err)
	}

	langs, err := core.ParseLanguages(o.languages)
	if err != nil {
		return nil, err
	}

	contentDir := o.contentDir
	if !filepath.IsAbs(contentDir) {
		contentDir = filepath.Join(root, contentDir)
	}

	l := &Linter{
		root:       root,
		contentDir: contentDir,
		logger:     logger,
		opts:       o,
	}
	if o.allowDuplicateKeys {
		l.checkOpts = append(l.checkOpts, check.WithAllowDuplicateKeys(true))
	}

	for _, lang := range langs {
		path := filepath.Join(contentDir, lang.Code)
		repo, err := fs.NewRepository(fs.Config{
			Path:       path,
			Extensions: o.extensions,
			Exclude:    o.exclude,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		l.trees = append(l.trees, tree{lang: lang, dir: l.display(path), repo: repo})
	}

	return l, nil
}

// display renders path relative to the site root when it lies inside it.
func (l *Linter) display(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Load reads every language tree. Per-document failures are recorded in the sets;
// only traversal failures abort.
func (l *Linter) Load(ctx context.Context) ([]check.LanguageSet, error) {
	sets := make([]check.LanguageSet, 0, len(l.trees))
	for _, t := range l.trees {
		docs, failures, err := t.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s content: %w", t.lang.Name, err)
		}
		sets = append(sets, check.LanguageSet{
			Language:  t.lang,
			Dir:       t.dir,
			Documents: docs,
			Failures:  failures,
		})
	}
	return sets, nil
}

// NeedsReview loads the site and runs the needs-review check.
func (l *Linter) NeedsReview(ctx context.Context) (check.Report, error) {
	return l.Run(ctx, CheckNeedsReview)
}

// TranslationKeys loads the site and runs the translation-key check.
func (l *Linter) TranslationKeys(ctx context.Context) (check.Report, error) {
	return l.Run(ctx, CheckTranslationKeys)
}

// Run loads the site and runs the named check.
func (l *Linter) Run(ctx context.Context, name string) (check.Report, error) {
	var run func([]check.LanguageSet) check.Report
	switch name {
	case CheckNeedsReview:
		run = check.NeedsReview
	case CheckTranslationKeys:
		run = func(sets []check.LanguageSet) check.Report {
			return check.TranslationKeys(sets, l.checkOpts...)
		}
	default:
		return check.Report{}, fmt.Errorf("unknown check: %s", name)
	}

	sets, err := l.Load(ctx)
	if err != nil {
		return check.Report{}, err
	}

	r := run(sets)
	l.logger.Debug("check finished", "check", name, "errors", r.Errors(), "warnings", r.Warnings())
	return r, nil
}
