// Package contentlint is the Composition Root for the content checks.
//
// It wires the filesystem adapter (walk + front matter parsing) to the check
// policies and exposes them as a Linter.
//
// Checks:
//
//   - **needs-review**: no published page may still carry a needs-review shortcode.
//   - **translation-keys**: every published page has a translationKey, and keys match
//     one to one across languages.
//
// Both checks are pure functions of the content tree at the time of the call. Drafts
// are reported as warnings and never fail a run; a document that cannot be parsed is
// logged and validated as if it had no metadata.
//
// Usage:
//
//	linter, err := contentlint.New("./site",
//		contentlint.WithLanguages("en", "fr"),
//		contentlint.WithLogger(logger),
//	)
//
//	report, err := linter.TranslationKeys(ctx)
//	os.Exit(report.ExitCode())
package contentlint
