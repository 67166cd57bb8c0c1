package experience

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	httperrors "github.com/anshul-garg27/interview-practice-platform1-sub001/pkg/http/errors"
)

// DocProvider hands out the loaded per-company experience documents.
type DocProvider interface {
	Companies() []string
	CompanyDoc(name string) (CompanyDoc, bool)
}

// HTTPHandler exposes REST endpoints for browsing experiences.
type HTTPHandler struct {
	docs   DocProvider
	logger zerolog.Logger
}

// NewHTTPHandler constructs an experiences HTTP handler.
func NewHTTPHandler(docs DocProvider, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		docs:   docs,
		logger: logger.With().Str("component", "experience_http").Logger(),
	}
}

// HandleListCompanies responds with the companies that have experience data.
// Route: GET /v1/companies
func (h *HTTPHandler) HandleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies := h.docs.Companies()
	if companies == nil {
		companies = []string{}
	}
	writeJSON(w, map[string]interface{}{
		"companies":   companies,
		"total":       len(companies),
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleListExperiences responds with one company's normalized experience
// records. An optional outcome parameter keeps records whose normalized
// outcome contains the value, case-insensitively.
// Route: GET /v1/companies/{company}/experiences?outcome=
func (h *HTTPHandler) HandleListExperiences(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	doc, ok := h.docs.CompanyDoc(company)
	if !ok {
		httperrors.RespondNotFound(w, httperrors.ErrCodeCompanyNotFound, "no experience data for company")
		return
	}

	outcomeFilter := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("outcome")))

	records := make([]NormalizedRecord, 0, len(doc.Experiences))
	for _, rec := range doc.Experiences {
		normalized := Normalize(rec)
		if outcomeFilter != "" && !strings.Contains(strings.ToLower(normalized.Outcome), outcomeFilter) {
			continue
		}
		records = append(records, normalized)
	}

	writeJSON(w, map[string]interface{}{
		"company":     company,
		"generatedAt": doc.GeneratedAt,
		"stats":       doc.Stats,
		"total":       len(records),
		"experiences": records,
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
