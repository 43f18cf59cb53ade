package check

// Severity tells whether a bucket fails the run.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Category names a kind of finding.
type Category string

const (
	CategoryDraft        Category = "drafts"
	CategoryUnreadable   Category = "unreadable"
	CategoryNeedsReview  Category = "needs-review"
	CategoryMissingKey   Category = "missing-key"
	CategoryMissingIn    Category = "missing-in"
	CategoryDuplicateKey Category = "duplicate-key"
)

// Finding is one reported document.
type Finding struct {
	Lang string `json:"lang"`
	// Path is the display path, e.g. content/fr/about.md.
	Path string `json:"path"`
	Key  string `json:"key,omitempty"`
	// Related is the document kept in the key map when Path was displaced by a duplicate.
	Related string `json:"related,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Bucket is a named collection of findings of one category for one language.
type Bucket struct {
	Category Category `json:"category"`
	// Lang is the language the findings belong to. For missing-in buckets it is the
	// language the key is missing from.
	Lang     string    `json:"lang"`
	Title    string    `json:"title"`
	Label    string    `json:"label"`
	Severity Severity  `json:"severity"`
	Keyed    bool      `json:"keyed,omitempty"`
	Findings []Finding `json:"findings"`
}

// Empty reports whether the bucket holds no findings.
func (b Bucket) Empty() bool {
	return len(b.Findings) == 0
}

// LanguageSummary records how many documents one language tree holds.
type LanguageSummary struct {
	Lang  string `json:"lang"`
	Name  string `json:"name"`
	Dir   string `json:"dir"`
	Files int    `json:"files"`
}

// Report is the complete, structured result of one check run.
type Report struct {
	Check       string            `json:"check"`
	Title       string            `json:"title"`
	Languages   []LanguageSummary `json:"languages"`
	Buckets     []Bucket          `json:"buckets"`
	PassMessage string            `json:"pass_message"`
	PassDetail  string            `json:"pass_detail,omitempty"`
	FailMessage string            `json:"fail_message"`
}

// Errors counts findings in error buckets.
func (r Report) Errors() int {
	return r.count(SeverityError)
}

// Warnings counts findings in warning buckets.
func (r Report) Warnings() int {
	return r.count(SeverityWarning)
}

func (r Report) count(s Severity) int {
	n := 0
	for _, b := range r.Buckets {
		if b.Severity == s {
			n += len(b.Findings)
		}
	}
	return n
}

// Failed reports whether any error bucket is non-empty. Warnings never fail a run.
func (r Report) Failed() bool {
	return r.Errors() > 0
}

// ExitCode maps the outcome to a process status: 0 pass, 1 fail.
func (r Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Bucket returns the bucket for a category and language.
func (r Report) Bucket(c Category, lang string) (Bucket, bool) {
	for _, b := range r.Buckets {
		if b.Category == c && b.Lang == lang {
			return b, true
		}
	}
	return Bucket{}, false
}
