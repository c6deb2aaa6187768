package output

import (
	"encoding/json"
	"io"

	"github.com/avgate/avgate/pkg/types"
)

// JSONFormatter renders reports as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, reports []types.ScanReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reports)
}
