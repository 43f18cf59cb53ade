package report

import (
	"encoding/json"
	"io"

	"github.com/aretw0/contentlint/pkg/check"
)

type jsonReport struct {
	check.Report
	Passed   bool `json:"passed"`
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
}

func wrap(r check.Report) jsonReport {
	return jsonReport{
		Report:   r,
		Passed:   !r.Failed(),
		Errors:   r.Errors(),
		Warnings: r.Warnings(),
	}
}

// JSON writes the structured report, including empty buckets, as indented JSON.
func JSON(w io.Writer, r check.Report) error {
	return encode(w, wrap(r))
}

// JSONList writes several reports as one indented JSON array.
func JSONList(w io.Writer, reports []check.Report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, wrap(r))
	}
	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
