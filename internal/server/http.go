package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/catalog"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/config"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/experience"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/solutions"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/store"
)

// NewHTTPServer wires all routes for the API service.
func NewHTTPServer(
	cfg *config.App,
	logger zerolog.Logger,
	st *store.Store,
	catalogHandler *catalog.HTTPHandler,
	experienceHandler *experience.HTTPHandler,
	solutionsHandler *solutions.HTTPHandler,
) *http.Server {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/questions", catalogHandler.HandleSearch)
		r.Get("/questions/stats", catalogHandler.HandleStats)
		r.Get("/companies", experienceHandler.HandleListCompanies)
		r.Get("/companies/{company}/experiences", experienceHandler.HandleListExperiences)
		r.Get("/problems", handleProblems(st))
		r.Get("/solutions/manifest", solutionsHandler.HandleManifest)
	})

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}

// handleProblems serves the generated-problem id list. The list is empty
// when the index failed to load; clients treat that as "no generated
// problems available", never as an error.
func handleProblems(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := st.ProblemIDs()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"problems":    ids,
			"total":       len(ids),
			"retrievedAt": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
