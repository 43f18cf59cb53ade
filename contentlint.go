package contentlint

import (
	"log/slog"

	"github.com/aretw0/contentlint/internal/platform"
	"github.com/aretw0/contentlint/pkg/check"
)

// Version exposes the version of the tool.
var Version = "0.1.0"

// --- Types ---

// Linter runs content checks over the language trees of one site.
type Linter = platform.Linter

// Report is the structured result of one check run.
type Report = check.Report

// --- Configuration ---

// Option defines a functional option for configuring a Linter.
type Option = platform.Option

// WithLogger sets the logger used for read failures and debug output.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithContentDir sets the content directory, relative to the site root or absolute.
func WithContentDir(dir string) Option {
	return platform.WithContentDir(dir)
}

// WithLanguages sets the language codes to compare.
func WithLanguages(codes ...string) Option {
	return platform.WithLanguages(codes...)
}

// WithExtensions sets which file extensions count as documents.
func WithExtensions(exts ...string) Option {
	return platform.WithExtensions(exts...)
}

// WithExclude adds doublestar globs to skip inside each language directory.
func WithExclude(patterns ...string) Option {
	return platform.WithExclude(patterns...)
}

// WithAllowDuplicateKeys reports duplicate translation keys as warnings.
func WithAllowDuplicateKeys(allow bool) Option {
	return platform.WithAllowDuplicateKeys(allow)
}

// --- Factory ---

// New creates a Linter for the site rooted at siteRoot.
func New(siteRoot string, opts ...Option) (*Linter, error) {
	return platform.New(siteRoot, opts...)
}

// FindRoot looks upwards from dir for the first directory holding contentDir
// or a site root indicator, falling back to dir itself.
// An empty contentDir means "content".
func FindRoot(dir, contentDir string) (string, error) {
	return platform.ResolveRoot(dir, contentDir)
}
