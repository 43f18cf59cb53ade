package check

import "regexp"

// needsReviewPattern matches the needs-review shortcode in either Hugo delimiter family:
// {{< needs-review >}} and {{% needs_review %}}, in any case.
var needsReviewPattern = regexp.MustCompile(`(?i)\{\{[<%]\s*needs[-_]review\s*[%>]\}\}`)

// HasNeedsReview reports whether body still carries a needs-review marker.
func HasNeedsReview(body string) bool {
	return needsReviewPattern.MatchString(body)
}
