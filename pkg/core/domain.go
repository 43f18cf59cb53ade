// Package core holds the content model shared by every check.
package core

import (
	"fmt"
	"strings"
)

// Well-known front matter keys.
const (
	KeyDraft          = "draft"
	KeyTranslationKey = "translationKey"
)

// Metadata represents the key-value pairs parsed from a document header.
type Metadata map[string]any

// Draft reports whether the document is marked as unpublished.
// Only a boolean true or the exact string "true" count; every other value is false.
func (m Metadata) Draft() bool {
	switch v := m[KeyDraft].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// TranslationKey returns the cross-language identity of the document.
// Empty strings, zero numbers and false mean "no key"; true is the key "true".
// Lists, maps and other types also mean "no key", since they cannot match across languages.
func (m Metadata) TranslationKey() (string, bool) {
	switch v := m[KeyTranslationKey].(type) {
	case string:
		return v, v != ""
	case bool:
		return fmt.Sprint(v), v
	case int:
		return fmt.Sprint(v), v != 0
	case int64:
		return fmt.Sprint(v), v != 0
	case uint64:
		return fmt.Sprint(v), v != 0
	case float64:
		return fmt.Sprint(v), v != 0
	default:
		return "", false
	}
}

// Document is one content file: a metadata header and a body.
type Document struct {
	// Path is the absolute filesystem path.
	Path string
	// RelPath is slash separated and relative to the language root.
	RelPath  string
	Metadata Metadata
	Content  string
}

// IsDraft is a shortcut for d.Metadata.Draft().
func (d Document) IsDraft() bool {
	return d.Metadata.Draft()
}

// TranslationKey is a shortcut for d.Metadata.TranslationKey().
func (d Document) TranslationKey() (string, bool) {
	return d.Metadata.TranslationKey()
}

// LoadError records a document that could not be read or parsed.
type LoadError struct {
	Path    string
	RelPath string
	Err     error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e LoadError) Unwrap() error {
	return e.Err
}

// DisplayPath joins a display prefix (e.g. "content/en") and a relative path.
func DisplayPath(prefix, rel string) string {
	if prefix == "" {
		return rel
	}
	return strings.TrimSuffix(prefix, "/") + "/" + rel
}
