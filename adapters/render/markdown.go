package render

import (
	"fmt"
	"strings"

	"cognia/domain/report"
)

// Markdown lays a report out as GitHub-flavored markdown: section headings,
// narrative paragraphs, pipe tables, and plot references.
func Markdown(r *report.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "**Generated:** %s  \n", r.GeneratedAt.String())
	fmt.Fprintf(&b, "**Fingerprint:** `%s`\n\n", r.Fingerprint.String())

	for i, section := range r.Sections {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, section.Title)

		for _, narrative := range section.Narratives {
			fmt.Fprintf(&b, "%s\n\n", narrative)
		}
		for _, tbl := range section.Tables {
			writeTable(&b, tbl)
		}
		for _, plot := range section.Plots {
			if plot.Column != "" {
				fmt.Fprintf(&b, "![%s %s](%s)\n\n", plot.Column, plot.Kind, plot.Ref)
			} else {
				fmt.Fprintf(&b, "![%s](%s)\n\n", plot.Kind, plot.Ref)
			}
		}
	}

	return b.String()
}

func writeTable(b *strings.Builder, tbl report.Table) {
	if len(tbl.Rows) == 0 {
		return
	}
	if tbl.Title != "" {
		fmt.Fprintf(b, "### %s\n\n", tbl.Title)
	}
	b.WriteString("| " + strings.Join(escapeCells(tbl.Columns), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(tbl.Columns)) + "\n")
	for _, row := range tbl.Rows {
		b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
	b.WriteString("\n")
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = strings.ReplaceAll(cell, "|", "\\|")
	}
	return out
}
