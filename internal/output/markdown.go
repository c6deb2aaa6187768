package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/avgate/avgate/pkg/types"
)

// MarkdownFormatter renders reports as a Markdown table suitable for pasting
// into docs, issues, or pull-request descriptions.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, reports []types.ScanReport) error {
	fmt.Fprintln(w, "| File | Status | Detail |")
	fmt.Fprintln(w, "|------|--------|--------|")

	var infected, failed int
	for _, r := range reports {
		var status, detail string
		switch {
		case r.Error != "":
			failed++
			status, detail = "**ERROR**", r.Error
		case r.Verdict != nil && r.Verdict.Infected:
			infected++
			status, detail = "**INFECTED**", r.Verdict.Signature
		default:
			status = "OK"
		}
		fmt.Fprintf(w, "| %s | %s | %s |\n", escapeMarkdown(r.Path), status, escapeMarkdown(detail))
	}

	fmt.Fprintf(w, "\n**Summary:** %d scanned, %d infected, %d failed\n", len(reports), infected, failed)
	return nil
}

// escapeMarkdown escapes pipe characters that would break Markdown tables.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
