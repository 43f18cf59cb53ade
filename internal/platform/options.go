package platform

import (
	"log/slog"
)

// options holds the internal configuration for the Linter.
type options struct {
	logger             *slog.Logger
	contentDir         string
	languages          []string
	extensions         []string
	exclude            []string
	allowDuplicateKeys bool
}

// Option defines a functional option for configuring the Linter.
type Option func(*options)

// defaultOptions returns the default configuration: content/{en,fr}/**/*.md.
func defaultOptions() *options {
	return &options{
		logger:     nil,
		contentDir: DefaultContentDir,
		languages:  []string{"en", "fr"},
		extensions: []string{".md"},
	}
}

// WithLogger sets the logger used for read failures and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithContentDir sets the content directory, relative to the site root or absolute.
// Defaults to "content".
func WithContentDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.contentDir = dir
		}
	}
}

// WithLanguages sets the language codes, each one a subdirectory of the content directory.
// Defaults to en and fr.
func WithLanguages(codes ...string) Option {
	return func(o *options) {
		if len(codes) > 0 {
			o.languages = codes
		}
	}
}

// WithExtensions sets which file extensions count as documents. Defaults to ".md".
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		if len(exts) > 0 {
			o.extensions = exts
		}
	}
}

// WithExclude adds doublestar globs, relative to each language directory, to skip.
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithAllowDuplicateKeys reports duplicate translation keys as warnings instead of errors.
func WithAllowDuplicateKeys(allow bool) Option {
	return func(o *options) {
		o.allowDuplicateKeys = allow
	}
}
