package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHandleSearchRespondsWithCatalog(t *testing.T) {
	svc := NewService(&stubProvider{dataset: testDataset()}, nil, zerolog.New(io.Discard))
	handler := NewHTTPHandler(svc, zerolog.New(io.Discard))

	req := httptest.NewRequest(http.MethodGet, "/v1/questions?round=all&q=tree", nil)
	rec := httptest.NewRecorder()

	handler.HandleSearch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Round     string     `json:"round"`
		Total     int        `json:"total"`
		Questions []Question `json:"questions"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "all", body.Round)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "Validate Stack Sequence", body.Questions[0].Name)
}

func TestHandleSearchDefaultsRoundAndCategory(t *testing.T) {
	svc := NewService(&stubProvider{dataset: testDataset()}, nil, zerolog.New(io.Discard))
	handler := NewHTTPHandler(svc, zerolog.New(io.Discard))

	req := httptest.NewRequest(http.MethodGet, "/v1/questions", nil)
	rec := httptest.NewRecorder()

	handler.HandleSearch(rec, req)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "all", body["round"])
	assert.Equal(t, "all", body["category"])
}

func TestHandleSearchUnavailableCatalogIs503(t *testing.T) {
	svc := NewService(&stubProvider{err: errors.New("not loaded")}, nil, zerolog.New(io.Discard))
	handler := NewHTTPHandler(svc, zerolog.New(io.Discard))

	req := httptest.NewRequest(http.MethodGet, "/v1/questions", nil)
	rec := httptest.NewRecorder()

	handler.HandleSearch(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_unavailable")
}

func TestHandleStats(t *testing.T) {
	ds := testDataset()
	ds.TotalExperiences = 7

	svc := NewService(&stubProvider{dataset: ds}, nil, zerolog.New(io.Discard))
	handler := NewHTTPHandler(svc, zerolog.New(io.Discard))

	req := httptest.NewRequest(http.MethodGet, "/v1/questions/stats", nil)
	rec := httptest.NewRecorder()

	handler.HandleStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats StatsView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 7, stats.TotalExperiences)
}
