package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/experience"
)

func occurrence(id, name, category, sourceID, roundName string) experience.Occurrence {
	return experience.Occurrence{
		ID:        id,
		Name:      name,
		Category:  category,
		SourceID:  sourceID,
		RoundName: roundName,
	}
}

func buildDocs() []experience.CompanyDoc {
	rounds := []experience.Round{
		{Number: 1, Name: "Round 1"},
		{Number: 2, Name: "Round 2"},
	}
	return []experience.CompanyDoc{
		{
			Company: "acme",
			Experiences: []experience.Record{
				{
					ID:     "exp-1",
					Rounds: rounds,
					CodingQuestions: []experience.Occurrence{
						occurrence("q1", "Two Sum", "DSA/Arrays", "exp-1", "Round 1"),
						occurrence("q2", "LRU Cache", "DSA/Design", "exp-1", "Round 2"),
					},
				},
				{
					ID:     "exp-2",
					Rounds: rounds,
					CodingQuestions: []experience.Occurrence{
						occurrence("q1", "Two Sum", "DSA/Arrays", "exp-2", "Round 2"),
					},
				},
			},
		},
	}
}

func TestBuildDatasetClassifiesCommonAndUnique(t *testing.T) {
	ds := BuildDataset(buildDocs(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 2, ds.TotalExperiences)
	assert.Equal(t, 2, ds.Stats.TotalQuestions)

	round1 := ds.Rounds["1"]
	assert.Equal(t, 1, round1.TotalQuestions)
	assert.Equal(t, 1, round1.CommonPatterns, "q1 also appears in round 2")
	assert.Equal(t, 0, round1.UniqueQuestions)

	round2 := ds.Rounds["2"]
	assert.Equal(t, 2, round2.TotalQuestions)
	assert.Equal(t, 1, round2.CommonPatterns)
	assert.Equal(t, 1, round2.UniqueQuestions, "q2 only appears in round 2")

	_, hasRound3 := ds.Rounds["3"]
	assert.False(t, hasRound3, "rounds without questions stay absent")
}

func TestBuildDatasetTopQuestionsRankedByCount(t *testing.T) {
	ds := BuildDataset(buildDocs(), time.Now())

	assert.NotEmpty(t, ds.TopQuestions)
	top := ds.TopQuestions[0]
	assert.Equal(t, "q1", top.ID)
	assert.Equal(t, 2, top.Count)
	assert.Equal(t, []string{"1", "2"}, top.Rounds)
}

func TestBuildDatasetCollectsSortedCategories(t *testing.T) {
	ds := BuildDataset(buildDocs(), time.Now())

	assert.Equal(t, []string{"DSA/Arrays", "DSA/Design"}, ds.Categories)
}

func TestBuildDatasetFallsBackToRecordIDForSource(t *testing.T) {
	docs := []experience.CompanyDoc{{
		Company: "acme",
		Experiences: []experience.Record{{
			ID: "exp-9",
			CodingQuestions: []experience.Occurrence{
				occurrence("q1", "Two Sum", "DSA/Arrays", "", "Round 2 - Coding"),
			},
		}},
	}}

	ds := BuildDataset(docs, time.Now())

	bucket, ok := ds.Rounds["2"]
	assert.True(t, ok, "round digit embedded in the name places the occurrence")
	assert.Equal(t, "exp-9", bucket.Questions[0].Sources[0].SourceID)
}

func TestBuildDatasetDropsUnplaceableOccurrences(t *testing.T) {
	docs := []experience.CompanyDoc{{
		Company: "acme",
		Experiences: []experience.Record{{
			ID: "exp-1",
			CodingQuestions: []experience.Occurrence{
				occurrence("q1", "Two Sum", "DSA/Arrays", "exp-1", "Onsite Finale"),
			},
		}},
	}}

	ds := BuildDataset(docs, time.Now())

	assert.Empty(t, ds.Rounds)
	assert.Equal(t, 0, ds.Stats.TotalQuestions)
}
