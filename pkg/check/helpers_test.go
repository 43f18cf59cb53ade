package check_test

import (
	"github.com/aretw0/contentlint/pkg/check"
	"github.com/aretw0/contentlint/pkg/core"
)

var (
	english = core.Language{Code: "en", Name: "English"}
	french  = core.Language{Code: "fr", Name: "French"}
	german  = core.Language{Code: "de", Name: "German"}
)

func doc(rel string, meta core.Metadata, body string) core.Document {
	if meta == nil {
		meta = core.Metadata{}
	}
	return core.Document{
		Path:     "/site/" + rel,
		RelPath:  rel,
		Metadata: meta,
		Content:  body,
	}
}

func set(lang core.Language, docs ...core.Document) check.LanguageSet {
	return check.LanguageSet{
		Language:  lang,
		Dir:       "content/" + lang.Code,
		Documents: docs,
	}
}

func paths(b check.Bucket) []string {
	out := make([]string, 0, len(b.Findings))
	for _, f := range b.Findings {
		out = append(out, f.Path)
	}
	return out
}

func mentions(r check.Report, path string) bool {
	for _, b := range r.Buckets {
		for _, f := range b.Findings {
			if f.Path == path || f.Related == path {
				return true
			}
		}
	}
	return false
}
