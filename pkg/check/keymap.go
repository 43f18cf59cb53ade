package check

import "github.com/aretw0/contentlint/pkg/core"

// KeyMap indexes one language's published documents by translation key.
// A later document with the same key replaces the earlier one; keys keep
// the position of their first insertion.
type KeyMap struct {
	docs  map[string]core.Document
	order []string
}

// NewKeyMap creates an empty KeyMap.
func NewKeyMap() *KeyMap {
	return &KeyMap{docs: make(map[string]core.Document)}
}

// Set stores doc under key and returns the document it replaced, if any.
func (m *KeyMap) Set(key string, doc core.Document) (core.Document, bool) {
	prev, ok := m.docs[key]
	if !ok {
		m.order = append(m.order, key)
	}
	m.docs[key] = doc
	return prev, ok
}

// Get returns the document currently held for key.
func (m *KeyMap) Get(key string) (core.Document, bool) {
	doc, ok := m.docs[key]
	return doc, ok
}

// Has reports whether key is present.
func (m *KeyMap) Has(key string) bool {
	_, ok := m.docs[key]
	return ok
}

// Keys returns the keys in first-insertion order.
func (m *KeyMap) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of distinct keys.
func (m *KeyMap) Len() int {
	return len(m.docs)
}
