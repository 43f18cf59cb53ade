package check

// NeedsReview reports published documents that still carry a needs-review marker.
// Drafts with a marker are listed as warnings and never fail the run.
func NeedsReview(sets []LanguageSet) Report {
	r := Report{
		Check:       "needs-review",
		Title:       "Needs Review Checker",
		PassMessage: "No files with needs-review shortcode found!",
		FailMessage: "Files with needs-review shortcode found!",
	}

	var drafts, unreadable, errs []Bucket
	for _, s := range sets {
		r.Languages = append(r.Languages, s.summary())

		draft := Bucket{
			Category: CategoryDraft,
			Lang:     s.Language.Code,
			Title:    s.Language.Name + " drafts:",
			Label:    upper(s.Language) + " draft files with needs-review shortcode",
			Severity: SeverityWarning,
		}
		published := Bucket{
			Category: CategoryNeedsReview,
			Lang:     s.Language.Code,
			Title:    s.Language.Name + " files containing needs-review shortcode:",
			Label:    upper(s.Language) + " files with needs-review shortcode",
			Severity: SeverityError,
		}

		for _, doc := range s.Documents {
			if !HasNeedsReview(doc.Content) {
				continue
			}
			f := Finding{Lang: s.Language.Code, Path: s.display(doc.RelPath)}
			if doc.IsDraft() {
				draft.Findings = append(draft.Findings, f)
			} else {
				published.Findings = append(published.Findings, f)
			}
		}

		drafts = append(drafts, draft)
		unreadable = append(unreadable, s.unreadable())
		errs = append(errs, published)
	}

	r.Buckets = concat(drafts, unreadable, errs)
	return r
}

func concat(groups ...[]Bucket) []Bucket {
	var out []Bucket
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
