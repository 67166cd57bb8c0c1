package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/catalog"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/experience"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/store"
)

// The indexer rebuilds the questions dataset from the raw per-company
// experience documents: it buckets question occurrences by round, classifies
// common vs unique patterns, and precomputes the top-questions leaderboard.
// The API server only ever reads the dataset this tool writes.
func main() {
	var (
		dataDir = flag.String("data", "data", "Directory containing the experiences/ documents")
		out     = flag.String("out", "", "Output path for the questions dataset (default <data>/questions.json)")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join(*dataDir, "questions.json")
	}

	docs, err := store.ReadCompanyDocs(filepath.Join(*dataDir, "experiences"))
	if err != nil {
		log.Fatal().Err(err).Str("data", *dataDir).Msg("failed to read experience documents")
	}
	for company, readErr := range docs.Broken {
		log.Warn().Err(readErr).Str("company", company).Msg("experience document skipped")
	}
	if len(docs.ByCompany) == 0 {
		log.Fatal().Str("data", *dataDir).Msg("no experience documents found")
	}

	ordered := make([]experience.CompanyDoc, 0, len(docs.ByCompany))
	for _, company := range sortedCompanies(docs.ByCompany) {
		ordered = append(ordered, docs.ByCompany[company])
	}

	dataset := catalog.BuildDataset(ordered, time.Now())

	payload, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode dataset")
	}
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		log.Fatal().Err(err).Str("out", outPath).Msg("failed to write dataset")
	}

	log.Info().
		Str("out", outPath).
		Int("companies", len(ordered)).
		Int("experiences", dataset.TotalExperiences).
		Int("questions", dataset.Stats.TotalQuestions).
		Msg("questions dataset written")
}

func sortedCompanies(docs map[string]experience.CompanyDoc) []string {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
