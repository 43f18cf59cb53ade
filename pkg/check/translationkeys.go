package check

import (
	"fmt"

	"github.com/aretw0/contentlint/pkg/core"
)

type options struct {
	allowDuplicateKeys bool
}

// Option configures a check.
type Option func(*options)

// WithAllowDuplicateKeys downgrades duplicate translation keys within one language
// from errors to warnings.
func WithAllowDuplicateKeys(allow bool) Option {
	return func(o *options) {
		o.allowDuplicateKeys = allow
	}
}

type displaced struct {
	key string
	doc core.Document
}

// TranslationKeys verifies that every published document has a translation key and
// that keys match one to one across languages.
//
// Per language, drafts are set aside as warnings, documents without a key are errors
// and the rest are indexed in a KeyMap. Then, for every ordered pair of languages
// (A, B), each key of A absent from B is reported as missing in B.
func TranslationKeys(sets []LanguageSet, opts ...Option) Report {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	r := Report{
		Check:       "translation-keys",
		Title:       "Translation Key Checker",
		PassMessage: "All translation keys match!",
		FailMessage: "Translation key mismatches found!",
	}

	maps := make([]*KeyMap, len(sets))
	var drafts, unreadable, dups, missing []Bucket

	for i, s := range sets {
		r.Languages = append(r.Languages, s.summary())

		draft := Bucket{
			Category: CategoryDraft,
			Lang:     s.Language.Code,
			Title:    s.Language.Name + " drafts:",
			Label:    upper(s.Language) + " draft files",
			Severity: SeverityWarning,
			Keyed:    true,
		}
		noKey := Bucket{
			Category: CategoryMissingKey,
			Lang:     s.Language.Code,
			Title:    s.Language.Name + " files missing translationKey:",
			Label:    upper(s.Language) + " files without key",
			Severity: SeverityError,
		}
		dup := Bucket{
			Category: CategoryDuplicateKey,
			Lang:     s.Language.Code,
			Title:    s.Language.Name + " files sharing a translationKey:",
			Label:    upper(s.Language) + " duplicate keys",
			Severity: SeverityError,
			Keyed:    true,
		}
		if o.allowDuplicateKeys {
			dup.Severity = SeverityWarning
		}

		km := NewKeyMap()
		var lost []displaced
		for _, doc := range s.Documents {
			key, hasKey := doc.TranslationKey()
			if doc.IsDraft() {
				f := Finding{Lang: s.Language.Code, Path: s.display(doc.RelPath)}
				if hasKey {
					f.Key = key
				}
				draft.Findings = append(draft.Findings, f)
				continue
			}
			if !hasKey {
				noKey.Findings = append(noKey.Findings, Finding{Lang: s.Language.Code, Path: s.display(doc.RelPath)})
				continue
			}
			if prev, replaced := km.Set(key, doc); replaced {
				lost = append(lost, displaced{key: key, doc: prev})
			}
		}

		for _, d := range lost {
			kept, _ := km.Get(d.key)
			dup.Findings = append(dup.Findings, Finding{
				Lang:    s.Language.Code,
				Path:    s.display(d.doc.RelPath),
				Key:     d.key,
				Related: s.display(kept.RelPath),
			})
		}

		maps[i] = km
		drafts = append(drafts, draft)
		unreadable = append(unreadable, s.unreadable())
		dups = append(dups, dup)
		missing = append(missing, noKey)
	}

	byTarget := make([]Bucket, len(sets))
	for b, target := range sets {
		title := "Translation keys missing in " + target.Language.Name + ":"
		if len(sets) == 2 {
			title = "Translation keys in " + sets[1-b].Language.Name + " but missing in " + target.Language.Name + ":"
		}
		bucket := Bucket{
			Category: CategoryMissingIn,
			Lang:     target.Language.Code,
			Title:    title,
			Label:    "Keys missing in " + upper(target.Language),
			Severity: SeverityError,
			Keyed:    true,
		}
		for a, source := range sets {
			if a == b {
				continue
			}
			for _, key := range maps[a].Keys() {
				if maps[b].Has(key) {
					continue
				}
				doc, _ := maps[a].Get(key)
				bucket.Findings = append(bucket.Findings, Finding{
					Lang: source.Language.Code,
					Path: source.display(doc.RelPath),
					Key:  key,
				})
			}
		}
		byTarget[b] = bucket
	}

	// Buckets follow source order: with en,fr the keys missing in fr come first.
	var mismatches []Bucket
	emitted := make([]bool, len(sets))
	for a := range sets {
		for b := range sets {
			if b != a && !emitted[b] {
				emitted[b] = true
				mismatches = append(mismatches, byTarget[b])
			}
		}
	}

	r.Buckets = concat(drafts, unreadable, dups, missing, mismatches)

	if len(maps) > 0 {
		r.PassDetail = passDetail(maps[0].Len(), len(sets))
	}
	return r
}

func passDetail(keys, langs int) string {
	scope := "all languages"
	if langs == 2 {
		scope = "both languages"
	}
	return fmt.Sprintf("%d translation key(s) found in %s.", keys, scope)
}
