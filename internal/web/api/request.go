package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avgate/avgate/pkg/types"
)

// ScanRequest is the JSON body for POST /api/v1/scan.
type ScanRequest struct {
	Path string `json:"path"`
}

// decodeScanRequest reads and validates the request body.
func decodeScanRequest(r *http.Request) (*ScanRequest, error) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	path, err := types.ParsePath(req.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	req.Path = path

	return &req, nil
}
