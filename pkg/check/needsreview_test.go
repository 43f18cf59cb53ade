package check_test

import (
	"errors"
	"testing"

	"github.com/aretw0/contentlint/pkg/check"
	"github.com/aretw0/contentlint/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsReview_PublishedMarkerFails(t *testing.T) {
	r := check.NeedsReview([]check.LanguageSet{
		set(english, doc("index.md", nil, "Hello")),
		set(french, doc("index.md", nil, "Bonjour {{< needs-review >}}")),
	})

	assert.True(t, r.Failed())
	assert.Equal(t, 1, r.ExitCode())

	fr, ok := r.Bucket(check.CategoryNeedsReview, "fr")
	require.True(t, ok)
	assert.Equal(t, []string{"content/fr/index.md"}, paths(fr))

	en, ok := r.Bucket(check.CategoryNeedsReview, "en")
	require.True(t, ok)
	assert.True(t, en.Empty())

	assert.False(t, mentions(r, "content/en/index.md"), "unmarked documents are never reported")
}

func TestNeedsReview_DraftMarkerWarnsOnly(t *testing.T) {
	r := check.NeedsReview([]check.LanguageSet{
		set(english, doc("wip.md", core.Metadata{"draft": true}, "{{% needs_review %}}")),
		set(french, doc("wip.md", core.Metadata{"draft": "true"}, "{{<NEEDS-REVIEW>}}")),
	})

	assert.False(t, r.Failed())
	assert.Equal(t, 0, r.ExitCode())
	assert.Equal(t, 2, r.Warnings())
	assert.Equal(t, 0, r.Errors())

	en, _ := r.Bucket(check.CategoryDraft, "en")
	assert.Equal(t, []string{"content/en/wip.md"}, paths(en))
	fr, _ := r.Bucket(check.CategoryDraft, "fr")
	assert.Equal(t, []string{"content/fr/wip.md"}, paths(fr))
}

func TestNeedsReview_NonBooleanDraftIsPublished(t *testing.T) {
	r := check.NeedsReview([]check.LanguageSet{
		set(english, doc("a.md", core.Metadata{"draft": "yes"}, "{{< needs-review >}}")),
	})

	assert.True(t, r.Failed())
	en, _ := r.Bucket(check.CategoryNeedsReview, "en")
	assert.Equal(t, []string{"content/en/a.md"}, paths(en))
}

func TestNeedsReview_EmptyLanguage(t *testing.T) {
	r := check.NeedsReview([]check.LanguageSet{
		set(english, doc("a.md", nil, "clean")),
		set(french),
	})

	assert.False(t, r.Failed())
	require.Len(t, r.Languages, 2)
	assert.Equal(t, 1, r.Languages[0].Files)
	assert.Equal(t, 0, r.Languages[1].Files)
}

func TestNeedsReview_UnreadableIsWarning(t *testing.T) {
	s := set(english, doc("broken.md", nil, ""))
	s.Failures = []core.LoadError{{Path: "/site/broken.md", RelPath: "broken.md", Err: errors.New("bad header")}}

	r := check.NeedsReview([]check.LanguageSet{s})

	assert.False(t, r.Failed())
	b, ok := r.Bucket(check.CategoryUnreadable, "en")
	require.True(t, ok)
	require.Len(t, b.Findings, 1)
	assert.Equal(t, "content/en/broken.md", b.Findings[0].Path)
	assert.Equal(t, "bad header", b.Findings[0].Reason)
}
