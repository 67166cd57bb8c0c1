package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	httperrors "github.com/anshul-garg27/interview-practice-platform1-sub001/pkg/http/errors"
)

// HTTPHandler exposes REST endpoints for the question catalog.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a catalog HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "catalog_http").Logger(),
	}
}

// HandleSearch responds with the filtered, popularity-sorted catalog.
// Route: GET /v1/questions?round=all&category=all&q=
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := Query{
		Round:    params.Get("round"),
		Category: params.Get("category"),
		Search:   params.Get("q"),
	}
	if query.Round == "" {
		query.Round = RoundAll
	}
	if query.Category == "" {
		query.Category = CategoryAll
	}

	questions, err := h.svc.Search(r.Context(), query)
	if err != nil {
		h.logger.Error().Err(err).Msg("catalog search failed")
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeCatalogUnavailable, "question catalog is not loaded")
		return
	}
	if questions == nil {
		questions = []Question{}
	}

	writeJSON(w, map[string]interface{}{
		"round":       query.Round,
		"category":    query.Category,
		"query":       query.Search,
		"total":       len(questions),
		"questions":   questions,
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleStats responds with the dataset summary and top-questions leaderboard.
// Route: GET /v1/questions/stats
func (h *HTTPHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("catalog stats fetch failed")
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeCatalogUnavailable, "question catalog is not loaded")
		return
	}
	writeJSON(w, stats)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
