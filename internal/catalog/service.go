package catalog

import (
	"context"

	"github.com/rs/zerolog"
)

// DatasetProvider hands out the current immutable questions dataset. The
// returned error marks the catalog as unavailable, not merely empty.
type DatasetProvider interface {
	QuestionsDataset() (*QuestionsDataset, error)
}

// QueryCache caches query results (implemented by the Redis-backed Cache).
type QueryCache interface {
	Get(ctx context.Context, q Query) ([]Question, error)
	Set(ctx context.Context, q Query, questions []Question) error
}

// Service answers catalog queries over the loaded dataset, consulting the
// cache first when one is configured.
type Service struct {
	data   DatasetProvider
	cache  QueryCache
	logger zerolog.Logger
}

// StatsView is the dataset summary served alongside the catalog.
type StatsView struct {
	GeneratedAt      string        `json:"generatedAt"`
	TotalExperiences int           `json:"totalExperiences"`
	Categories       []string      `json:"categories"`
	TopQuestions     []TopQuestion `json:"topQuestions"`
	Stats            GlobalStats   `json:"stats"`
}

// NewService builds a catalog service. cache may be nil, which disables
// caching entirely.
func NewService(data DatasetProvider, cache QueryCache, logger zerolog.Logger) *Service {
	return &Service{
		data:   data,
		cache:  cache,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Search runs the query against the current dataset. Cache errors are logged
// and fall through to a fresh computation; only a missing dataset is an
// error to the caller.
func (s *Service) Search(ctx context.Context, q Query) ([]Question, error) {
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, q); err == nil && hit != nil {
			return hit, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("query cache read failed")
		}
	}

	ds, err := s.data.QuestionsDataset()
	if err != nil {
		return nil, err
	}

	result := Apply(ds, q)

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, result); err != nil {
			s.logger.Warn().Err(err).Msg("query cache write failed")
		}
	}
	return result, nil
}

// Stats returns the dataset's precomputed summary block.
func (s *Service) Stats(ctx context.Context) (StatsView, error) {
	ds, err := s.data.QuestionsDataset()
	if err != nil {
		return StatsView{}, err
	}
	return StatsView{
		GeneratedAt:      ds.GeneratedAt,
		TotalExperiences: ds.TotalExperiences,
		Categories:       ds.Categories,
		TopQuestions:     ds.TopQuestions,
		Stats:            ds.Stats,
	}, nil
}
