package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/catalog"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/experience"
)

// Data directory layout.
const (
	questionsFile  = "questions.json"
	problemsFile   = "generated_problems.json"
	experiencesDir = "experiences"
)

var (
	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dataset_load_duration_seconds",
		Help:    "Time spent rebuilding the data snapshot.",
		Buckets: prometheus.DefBuckets,
	})
	loadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_loaded_timestamp_seconds",
		Help: "Unix time of the last successful snapshot swap.",
	})
)

// Snapshot is an immutable view of every loaded dataset. Queries run against
// a snapshot for the lifetime of a request; a reload swaps in a fresh one and
// never mutates an existing snapshot.
type Snapshot struct {
	Questions   *catalog.QuestionsDataset
	Experiences map[string]experience.CompanyDoc
	Problems    map[string]struct{}
	LoadedAt    time.Time

	// Err is set when the primary questions dataset failed to load. The
	// catalog is then unavailable; experiences and problems may still be
	// served.
	Err error
}

// Store loads the static JSON datasets and hands out immutable snapshots.
type Store struct {
	dataDir  string
	logger   zerolog.Logger
	validate *validator.Validate

	mu   sync.RWMutex
	snap *Snapshot
}

// New builds a store rooted at dataDir. Call Load before serving.
func New(dataDir string, logger zerolog.Logger) *Store {
	return &Store{
		dataDir:  dataDir,
		logger:   logger.With().Str("component", "store").Logger(),
		validate: validator.New(),
		snap:     &Snapshot{Err: fmt.Errorf("dataset not loaded yet")},
	}
}

// Load rebuilds the snapshot from disk and swaps it in atomically. A failed
// questions dataset is recorded on the snapshot rather than returned, so the
// server keeps running and reports the catalog as unavailable; experience and
// problem data degrade independently.
func (s *Store) Load() {
	started := time.Now()
	snap := &Snapshot{LoadedAt: started}

	ds, err := s.loadQuestions()
	if err != nil {
		s.logger.Error().Err(err).Msg("questions dataset load failed")
		snap.Err = err
	} else {
		snap.Questions = ds
	}

	snap.Experiences = s.loadExperiences()
	snap.Problems = s.loadProblems()

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	loadDuration.Observe(time.Since(started).Seconds())
	loadTimestamp.SetToCurrentTime()

	s.logger.Info().
		Int("companies", len(snap.Experiences)).
		Int("problems", len(snap.Problems)).
		Bool("catalog_ok", snap.Err == nil).
		Dur("took", time.Since(started)).
		Msg("data snapshot loaded")
}

// Snapshot returns the current immutable snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// QuestionsDataset implements catalog.DatasetProvider.
func (s *Store) QuestionsDataset() (*catalog.QuestionsDataset, error) {
	snap := s.Snapshot()
	if snap.Err != nil {
		return nil, snap.Err
	}
	return snap.Questions, nil
}

// Companies implements experience.DocProvider.
func (s *Store) Companies() []string {
	snap := s.Snapshot()
	names := make([]string, 0, len(snap.Experiences))
	for name := range snap.Experiences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CompanyDoc implements experience.DocProvider.
func (s *Store) CompanyDoc(name string) (experience.CompanyDoc, bool) {
	snap := s.Snapshot()
	doc, ok := snap.Experiences[strings.ToLower(name)]
	return doc, ok
}

// ProblemIDs returns the generated-problem membership set as a sorted list.
// The set is empty, never an error, when the index failed to load.
func (s *Store) ProblemIDs() []string {
	snap := s.Snapshot()
	ids := make([]string, 0, len(snap.Problems))
	for id := range snap.Problems {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasProblem reports whether a generated problem exists for the id.
func (s *Store) HasProblem(id string) bool {
	_, ok := s.Snapshot().Problems[id]
	return ok
}

func (s *Store) loadQuestions() (*catalog.QuestionsDataset, error) {
	path := filepath.Join(s.dataDir, questionsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions dataset: %w", err)
	}
	var ds catalog.QuestionsDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode questions dataset: %w", err)
	}
	if err := s.validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("validate questions dataset: %w", err)
	}
	return &ds, nil
}

// loadExperiences reads every per-company document. A single broken file is
// logged and skipped so one bad company never hides the rest.
func (s *Store) loadExperiences() map[string]experience.CompanyDoc {
	docs, err := ReadCompanyDocs(filepath.Join(s.dataDir, experiencesDir))
	if err != nil {
		s.logger.Warn().Err(err).Msg("experiences directory unavailable")
		return map[string]experience.CompanyDoc{}
	}
	for name, err := range docs.Broken {
		s.logger.Warn().Err(err).Str("company", name).Msg("experience document skipped")
	}
	return docs.ByCompany
}

// loadProblems builds the generated-problem membership set. Failure here is
// swallowed: the set only gates an optional affordance and must never block
// the catalog.
func (s *Store) loadProblems() map[string]struct{} {
	set := make(map[string]struct{})
	data, err := os.ReadFile(filepath.Join(s.dataDir, problemsFile))
	if err != nil {
		s.logger.Warn().Err(err).Msg("generated problems index unavailable")
		return set
	}
	var index struct {
		Problems []struct {
			ID string `json:"id"`
		} `json:"problems"`
	}
	if err := json.Unmarshal(data, &index); err != nil {
		s.logger.Warn().Err(err).Msg("generated problems index unreadable")
		return set
	}
	for _, p := range index.Problems {
		if p.ID != "" {
			set[p.ID] = struct{}{}
		}
	}
	return set
}

// CompanyDocs is the result of reading an experiences directory.
type CompanyDocs struct {
	ByCompany map[string]experience.CompanyDoc
	Broken    map[string]error
}

// ReadCompanyDocs decodes every *.json document under dir, keyed by the
// lowercased file base name. Shared with cmd/indexer, which rebuilds the
// questions dataset from the same documents.
func ReadCompanyDocs(dir string) (CompanyDocs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return CompanyDocs{}, fmt.Errorf("read experiences dir: %w", err)
	}

	docs := CompanyDocs{
		ByCompany: make(map[string]experience.CompanyDoc),
		Broken:    make(map[string]error),
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		company := strings.ToLower(strings.TrimSuffix(name, ".json"))

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			docs.Broken[company] = err
			continue
		}
		var doc experience.CompanyDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			docs.Broken[company] = err
			continue
		}
		if doc.Company == "" {
			doc.Company = company
		}
		docs.ByCompany[company] = doc
	}
	return docs, nil
}
