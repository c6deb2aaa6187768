package api

import (
	"net/http"
	"time"

	"github.com/avgate/avgate/internal/scanner"
	"github.com/avgate/avgate/pkg/types"
)

// Handlers holds dependencies for the REST API handlers.
type Handlers struct {
	Registry *scanner.DefaultRegistry
}

// NewHandlers creates API handlers resolving strategies from the given registry.
func NewHandlers(registry *scanner.DefaultRegistry) *Handlers {
	return &Handlers{Registry: registry}
}

// ScanFile handles POST /api/v1/scan. The scan runs synchronously and the
// response carries the full report. A failed scan is an error payload with a
// 502 — it is never presented as a clean verdict.
func (h *Handlers) ScanFile(w http.ResponseWriter, r *http.Request) {
	req, err := decodeScanRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report := types.ScanReport{Path: req.Path, StartedAt: time.Now()}

	verdict, err := scanner.NewScan(req.Path, h.Registry).Result(r.Context())
	report.CompletedAt = time.Now()
	if err != nil {
		report.Error = err.Error()
		writeJSON(w, http.StatusBadGateway, report)
		return
	}

	report.Verdict = &verdict
	writeJSON(w, http.StatusOK, report)
}
