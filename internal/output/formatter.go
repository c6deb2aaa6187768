package output

import (
	"fmt"
	"io"

	"github.com/avgate/avgate/pkg/types"
)

// Formatter renders scan reports to a writer.
type Formatter interface {
	Format(w io.Writer, reports []types.ScanReport) error
}

// GetFormatter returns the appropriate formatter for the given format string.
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown":
		return &MarkdownFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, markdown)", format)
	}
}
