package check

import (
	"strings"

	"github.com/aretw0/contentlint/pkg/core"
)

// LanguageSet is the loaded content of one language tree.
type LanguageSet struct {
	Language core.Language
	// Dir is the display prefix for paths, e.g. content/en.
	Dir       string
	Documents []core.Document
	Failures  []core.LoadError
}

func (s LanguageSet) display(rel string) string {
	return core.DisplayPath(s.Dir, rel)
}

func (s LanguageSet) summary() LanguageSummary {
	return LanguageSummary{
		Lang:  s.Language.Code,
		Name:  s.Language.Name,
		Dir:   s.Dir,
		Files: len(s.Documents),
	}
}

// unreadable lists documents that were validated with empty metadata.
func (s LanguageSet) unreadable() Bucket {
	b := Bucket{
		Category: CategoryUnreadable,
		Lang:     s.Language.Code,
		Title:    s.Language.Name + " files:",
		Label:    upper(s.Language) + " unreadable files",
		Severity: SeverityWarning,
	}
	for _, f := range s.Failures {
		b.Findings = append(b.Findings, Finding{
			Lang:   s.Language.Code,
			Path:   s.display(f.RelPath),
			Reason: f.Err.Error(),
		})
	}
	return b
}

func upper(l core.Language) string {
	return strings.ToUpper(l.Code)
}
