// Package report renders check results for humans and machines.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/contentlint/pkg/check"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options controls text rendering.
type Options struct {
	// Color enables ANSI styling. Styling is also dropped when w is not a terminal.
	Color bool
}

type styles struct {
	banner, pass, fail, warn, count, key, lang, bullet, warnBullet lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		banner:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		pass:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		fail:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warn:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		count:      r.NewStyle().Foreground(lipgloss.Color("4")),
		key:        r.NewStyle().Foreground(lipgloss.Color("5")),
		lang:       r.NewStyle().Foreground(lipgloss.Color("4")),
		bullet:     r.NewStyle().Foreground(lipgloss.Color("1")),
		warnBullet: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

var warningHeadings = map[check.Category]string{
	check.CategoryDraft:        "Draft files (excluded from validation):",
	check.CategoryUnreadable:   "Unreadable files (validated with empty metadata):",
	check.CategoryDuplicateKey: "Duplicate translation keys (allowed):",
}

var warningSummaries = map[check.Category]string{
	check.CategoryDraft:        "Draft files: %d (warning)",
	check.CategoryUnreadable:   "Unreadable files: %d (warning)",
	check.CategoryDuplicateKey: "Duplicate keys: %d (warning)",
}

var warningNotes = map[check.Category]string{
	check.CategoryDraft:        "%d draft file(s) excluded from validation.",
	check.CategoryUnreadable:   "%d file(s) could not be read.",
	check.CategoryDuplicateKey: "%d duplicate translation key(s) allowed.",
}

// Text writes the human-readable report: banner, file counts, warnings, one section per
// non-empty error bucket and a final pass or fail summary.
func Text(w io.Writer, r check.Report, opts Options) error {
	st := newStyles(w, opts.Color)
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", st.banner.Render("=== "+r.Title+" ==="))
	for _, l := range r.Languages {
		fmt.Fprintf(&b, "Found %s files in %s\n", st.count.Render(fmt.Sprint(l.Files)), st.count.Render(l.Dir))
	}
	b.WriteString("\n")

	groups, totals := warningGroups(r)
	for _, g := range groups {
		fmt.Fprintf(&b, "%s\n", st.warn.Render("⚠ "+heading(g[0].Category)))
		for _, bucket := range g {
			fmt.Fprintf(&b, "  %s\n", st.lang.Render(bucket.Title))
			for _, f := range bucket.Findings {
				writeFinding(&b, st, bucket, f, "    ", st.warnBullet)
			}
		}
		b.WriteString("\n")
	}

	for _, bucket := range r.Buckets {
		if bucket.Severity != check.SeverityError || bucket.Empty() {
			continue
		}
		fmt.Fprintf(&b, "%s\n", st.fail.Render("✗ "+bucket.Title))
		for _, f := range bucket.Findings {
			writeFinding(&b, st, bucket, f, "  ", st.bullet)
		}
		b.WriteString("\n")
	}

	if !r.Failed() {
		fmt.Fprintf(&b, "%s\n", st.pass.Render("✓ "+r.PassMessage))
		if r.PassDetail != "" {
			fmt.Fprintf(&b, "  %s\n", r.PassDetail)
		}
		for _, g := range groups {
			c := g[0].Category
			if note, ok := warningNotes[c]; ok {
				fmt.Fprintf(&b, "  %s\n", st.warnBullet.Render(fmt.Sprintf(note, totals[c])))
			}
		}
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "%s\n\n", st.fail.Render("✗ "+r.FailMessage))
		b.WriteString("Summary:\n")
		for _, bucket := range r.Buckets {
			if bucket.Severity == check.SeverityError {
				fmt.Fprintf(&b, "  • %s: %d\n", bucket.Label, len(bucket.Findings))
			}
		}
		for _, g := range groups {
			c := g[0].Category
			if line, ok := warningSummaries[c]; ok {
				fmt.Fprintf(&b, "  • %s\n", st.warnBullet.Render(fmt.Sprintf(line, totals[c])))
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// warningGroups collects non-empty warning buckets by category, in report order.
func warningGroups(r check.Report) ([][]check.Bucket, map[check.Category]int) {
	var groups [][]check.Bucket
	index := make(map[check.Category]int)
	totals := make(map[check.Category]int)

	for _, bucket := range r.Buckets {
		if bucket.Severity != check.SeverityWarning || bucket.Empty() {
			continue
		}
		i, ok := index[bucket.Category]
		if !ok {
			i = len(groups)
			index[bucket.Category] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], bucket)
		totals[bucket.Category] += len(bucket.Findings)
	}
	return groups, totals
}

func heading(c check.Category) string {
	if h, ok := warningHeadings[c]; ok {
		return h
	}
	return string(c) + ":"
}

func writeFinding(b *strings.Builder, st styles, bucket check.Bucket, f check.Finding, indent string, bullet lipgloss.Style) {
	switch bucket.Category {
	case check.CategoryMissingIn:
		fmt.Fprintf(b, "%s%s %s\n", indent, bullet.Render("•"), st.key.Render(f.Key))
		fmt.Fprintf(b, "%s  %s: %s\n", indent, strings.ToUpper(f.Lang), f.Path)
	case check.CategoryDuplicateKey:
		fmt.Fprintf(b, "%s%s %s\n", indent, bullet.Render("•"), st.key.Render(f.Key))
		fmt.Fprintf(b, "%s  %s (replaced by %s)\n", indent, f.Path, f.Related)
	case check.CategoryUnreadable:
		fmt.Fprintf(b, "%s%s %s: %s\n", indent, bullet.Render("•"), f.Path, f.Reason)
	default:
		suffix := ""
		if bucket.Keyed {
			if f.Key != "" {
				suffix = " (key: " + st.key.Render(f.Key) + ")"
			} else {
				suffix = " " + st.warnBullet.Render("(no key)")
			}
		}
		fmt.Fprintf(b, "%s%s %s%s\n", indent, bullet.Render("•"), f.Path, suffix)
	}
}
