package output

import (
	"fmt"
	"io"

	"github.com/avgate/avgate/pkg/types"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders reports as a colored terminal table.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, reports []types.ScanReport) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Status", "Detail"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("│")

	var infected, failed int
	for _, r := range reports {
		status, detail := renderStatus(r)
		switch {
		case r.Error != "":
			failed++
		case r.Verdict != nil && r.Verdict.Infected:
			infected++
		}
		table.Append([]string{r.Path, status, detail})
	}

	table.Render()

	fmt.Fprintf(w, "  Summary: %d scanned, %d infected, %d failed\n", len(reports), infected, failed)
	return nil
}

// renderStatus maps one report to a colored status cell plus detail text.
func renderStatus(r types.ScanReport) (string, string) {
	switch {
	case r.Error != "":
		return color.YellowString("ERROR"), r.Error
	case r.Verdict != nil && r.Verdict.Infected:
		return color.RedString("INFECTED"), r.Verdict.Signature
	default:
		return color.GreenString("OK"), ""
	}
}
