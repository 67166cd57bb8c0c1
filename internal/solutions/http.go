package solutions

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/anshul-garg27/interview-practice-platform1-sub001/pkg/http/errors"
)

// HTTPHandler serves the solutions manifest. The directory is rescanned per
// request; the manifest only lists file names, so the scan is cheap.
type HTTPHandler struct {
	dir    string
	logger zerolog.Logger
}

func NewHTTPHandler(dir string, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		dir:    dir,
		logger: logger.With().Str("component", "solutions_http").Logger(),
	}
}

// HandleManifest responds with the problemId → solution files mapping.
// Route: GET /v1/solutions/manifest
func (h *HTTPHandler) HandleManifest(w http.ResponseWriter, r *http.Request) {
	manifest, err := BuildManifest(h.dir)
	if err != nil {
		h.logger.Error().Err(err).Str("dir", h.dir).Msg("manifest scan failed")
		httperrors.RespondInternalError(w, "failed to scan solutions directory")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(manifest); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
