package check_test

import (
	"errors"
	"testing"

	"github.com/aretw0/contentlint/pkg/check"
	"github.com/aretw0/contentlint/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(k string) core.Metadata {
	return core.Metadata{"translationKey": k}
}

func TestTranslationKeys_Match(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english, doc("about.md", key("about-page"), "")),
		set(french, doc("a-propos.md", key("about-page"), "")),
	})

	assert.False(t, r.Failed())
	assert.Equal(t, 0, r.ExitCode())
	assert.Equal(t, "1 translation key(s) found in both languages.", r.PassDetail)
}

func TestTranslationKeys_MissingInFrench(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english, doc("contact.md", key("contact"), "")),
		set(french),
	})

	assert.True(t, r.Failed())
	assert.Equal(t, 1, r.ExitCode())

	missing, ok := r.Bucket(check.CategoryMissingIn, "fr")
	require.True(t, ok)
	require.Len(t, missing.Findings, 1)
	assert.Equal(t, "contact", missing.Findings[0].Key)
	assert.Equal(t, "content/en/contact.md", missing.Findings[0].Path)
	assert.Equal(t, "en", missing.Findings[0].Lang)
	assert.Equal(t, "Translation keys in English but missing in French:", missing.Title)

	inEnglish, _ := r.Bucket(check.CategoryMissingIn, "en")
	assert.True(t, inEnglish.Empty())
}

func TestTranslationKeys_MissingInEnglish(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english),
		set(french, doc("nouvelles.md", key("news"), "")),
	})

	missing, _ := r.Bucket(check.CategoryMissingIn, "en")
	require.Len(t, missing.Findings, 1)
	assert.Equal(t, "news", missing.Findings[0].Key)
	assert.Equal(t, "content/fr/nouvelles.md", missing.Findings[0].Path)
}

func TestTranslationKeys_MissingKey(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english, doc("a.md", nil, ""), doc("b.md", core.Metadata{"translationKey": ""}, "")),
		set(french),
	})

	assert.True(t, r.Failed())
	b, _ := r.Bucket(check.CategoryMissingKey, "en")
	assert.Equal(t, []string{"content/en/a.md", "content/en/b.md"}, paths(b))
}

func TestTranslationKeys_DraftsAreExcluded(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english,
			doc("wip.md", core.Metadata{"draft": true, "translationKey": "wip"}, ""),
			doc("nokey.md", core.Metadata{"draft": "true"}, ""),
		),
		set(french),
	})

	assert.False(t, r.Failed(), "drafts never fail the run")
	drafts, _ := r.Bucket(check.CategoryDraft, "en")
	require.Len(t, drafts.Findings, 2)
	assert.Equal(t, "wip", drafts.Findings[0].Key)
	assert.Empty(t, drafts.Findings[1].Key)
	assert.True(t, drafts.Keyed)
}

func TestTranslationKeys_DuplicateKeys(t *testing.T) {
	sets := []check.LanguageSet{
		set(english,
			doc("first.md", key("home"), ""),
			doc("second.md", key("home"), ""),
		),
		set(french, doc("accueil.md", key("home"), "")),
	}

	t.Run("Reported as error", func(t *testing.T) {
		r := check.TranslationKeys(sets)

		assert.True(t, r.Failed())
		dup, _ := r.Bucket(check.CategoryDuplicateKey, "en")
		require.Len(t, dup.Findings, 1)
		assert.Equal(t, "content/en/first.md", dup.Findings[0].Path)
		assert.Equal(t, "content/en/second.md", dup.Findings[0].Related, "the later document is retained")
		assert.Equal(t, "home", dup.Findings[0].Key)

		// The key still matches across languages.
		missing, _ := r.Bucket(check.CategoryMissingIn, "fr")
		assert.True(t, missing.Empty())
	})

	t.Run("Allowed as warning", func(t *testing.T) {
		r := check.TranslationKeys(sets, check.WithAllowDuplicateKeys(true))

		assert.False(t, r.Failed())
		dup, _ := r.Bucket(check.CategoryDuplicateKey, "en")
		assert.Equal(t, check.SeverityWarning, dup.Severity)
		assert.Len(t, dup.Findings, 1)
	})
}

func TestTranslationKeys_DuplicateKeysRetainLastWrite(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english,
			doc("a.md", key("home"), ""),
			doc("b.md", key("home"), ""),
			doc("c.md", key("home"), ""),
		),
		set(french),
	}, check.WithAllowDuplicateKeys(true))

	missing, _ := r.Bucket(check.CategoryMissingIn, "fr")
	require.Len(t, missing.Findings, 1)
	assert.Equal(t, "content/en/c.md", missing.Findings[0].Path)

	dup, _ := r.Bucket(check.CategoryDuplicateKey, "en")
	assert.Equal(t, []string{"content/en/a.md", "content/en/b.md"}, paths(dup))
	for _, f := range dup.Findings {
		assert.Equal(t, "content/en/c.md", f.Related)
	}
}

func TestTranslationKeys_UnreadableDocumentHasNoKey(t *testing.T) {
	en := set(english, doc("broken.md", nil, ""))
	en.Failures = []core.LoadError{{Path: "/site/broken.md", RelPath: "broken.md", Err: errors.New("bad header")}}

	r := check.TranslationKeys([]check.LanguageSet{en, set(french)})

	noKey, _ := r.Bucket(check.CategoryMissingKey, "en")
	assert.Equal(t, []string{"content/en/broken.md"}, paths(noKey))
	unreadable, _ := r.Bucket(check.CategoryUnreadable, "en")
	assert.Len(t, unreadable.Findings, 1)
}

func TestTranslationKeys_ThreeLanguages(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english, doc("a.md", key("a"), ""), doc("b.md", key("b"), "")),
		set(french, doc("a.md", key("a"), "")),
		set(german, doc("a.md", key("a"), ""), doc("c.md", key("c"), "")),
	})

	assert.True(t, r.Failed())

	fr, _ := r.Bucket(check.CategoryMissingIn, "fr")
	require.Len(t, fr.Findings, 2)
	assert.Equal(t, "b", fr.Findings[0].Key)
	assert.Equal(t, "en", fr.Findings[0].Lang)
	assert.Equal(t, "c", fr.Findings[1].Key)
	assert.Equal(t, "de", fr.Findings[1].Lang)
	assert.Equal(t, "Translation keys missing in French:", fr.Title)

	en, _ := r.Bucket(check.CategoryMissingIn, "en")
	require.Len(t, en.Findings, 1)
	assert.Equal(t, "c", en.Findings[0].Key)

	de, _ := r.Bucket(check.CategoryMissingIn, "de")
	require.Len(t, de.Findings, 1)
	assert.Equal(t, "b", de.Findings[0].Key)
}

func TestTranslationKeys_EmptyLanguageSurfacesAllKeys(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english),
		set(french, doc("a.md", key("a"), ""), doc("b.md", key("b"), "")),
	})

	missing, _ := r.Bucket(check.CategoryMissingIn, "en")
	assert.Len(t, missing.Findings, 2)
	noKey, _ := r.Bucket(check.CategoryMissingKey, "en")
	assert.True(t, noKey.Empty(), "an absent tree is not an error by itself")
}

func TestTranslationKeys_MissingInFollowsSourceOrder(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english, doc("contact.md", key("contact"), "")),
		set(french, doc("nouvelles.md", key("news"), "")),
	})

	var order []string
	for _, b := range r.Buckets {
		if b.Category == check.CategoryMissingIn {
			order = append(order, b.Lang)
		}
	}
	assert.Equal(t, []string{"fr", "en"}, order)
}

func TestTranslationKeys_MissingInOrderWithThreeLanguages(t *testing.T) {
	r := check.TranslationKeys([]check.LanguageSet{
		set(english), set(french), set(german),
	})

	var order []string
	for _, b := range r.Buckets {
		if b.Category == check.CategoryMissingIn {
			order = append(order, b.Lang)
		}
	}
	assert.Equal(t, []string{"fr", "de", "en"}, order)
}
