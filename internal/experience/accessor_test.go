package experience

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeOfAcceptsBothShapes(t *testing.T) {
	structured := Record{Outcome: json.RawMessage(`{"result":"Rejected","stage":"onsite"}`)}
	legacy := Record{Outcome: json.RawMessage(`"accepted"`)}

	assert.Equal(t, "Rejected", OutcomeOf(structured))
	assert.Equal(t, "accepted", OutcomeOf(legacy))

	// The case-insensitive substring filter used by the experiences endpoint
	// must match the structured record only.
	needle := "reject"
	assert.True(t, strings.Contains(strings.ToLower(OutcomeOf(structured)), needle))
	assert.False(t, strings.Contains(strings.ToLower(OutcomeOf(legacy)), needle))
}

func TestOutcomeOfDegradesToUnknown(t *testing.T) {
	assert.Equal(t, UnknownValue, OutcomeOf(Record{}))
	assert.Equal(t, UnknownValue, OutcomeOf(Record{Outcome: json.RawMessage(`""`)}))
	assert.Equal(t, UnknownValue, OutcomeOf(Record{Outcome: json.RawMessage(`{}`)}))
	assert.Equal(t, UnknownValue, OutcomeOf(Record{Outcome: json.RawMessage(`{"result":""}`)}))
	assert.Equal(t, UnknownValue, OutcomeOf(Record{Outcome: json.RawMessage(`42`)}))
	assert.Equal(t, UnknownValue, OutcomeOf(Record{Outcome: json.RawMessage(`{broken`)}))
}

func TestLevelAndPostTypeDefaults(t *testing.T) {
	assert.Equal(t, UnknownValue, LevelOf(Record{}))
	assert.Equal(t, UnknownValue, PostTypeOf(Record{}))

	rec := Record{Metadata: &Metadata{Level: "SDE2", PostType: "full-interview"}}
	assert.Equal(t, "SDE2", LevelOf(rec))
	assert.Equal(t, "full-interview", PostTypeOf(rec))
}

func TestTitlePrecedence(t *testing.T) {
	rec := Record{
		ID:         "exp-42",
		Folder:     "2025-05-amazon-sde2",
		Metadata:   &Metadata{Title: "Amazon SDE2 Onsite"},
		SourceMeta: &SourceMeta{Title: "My Amazon interview story"},
	}
	assert.Equal(t, "Amazon SDE2 Onsite", TitleOf(rec))

	rec.Metadata.Title = ""
	assert.Equal(t, "My Amazon interview story", TitleOf(rec))

	rec.SourceMeta.Title = "  "
	assert.Equal(t, "2025-05-amazon-sde2", TitleOf(rec))

	rec.Folder = ""
	assert.Equal(t, "exp-42", TitleOf(rec))

	rec.ID = ""
	assert.Equal(t, UntitledExperience, TitleOf(rec))
}

func TestDateOfPrefersMetadata(t *testing.T) {
	rec := Record{
		Metadata:   &Metadata{Date: "2025-05-01"},
		SourceMeta: &SourceMeta{Date: "2025-04-01"},
	}
	assert.Equal(t, "2025-05-01", DateOf(rec))

	rec.Metadata = nil
	assert.Equal(t, "2025-04-01", DateOf(rec))

	rec.SourceMeta = nil
	assert.Equal(t, "", DateOf(rec))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "May 1, 2025", FormatDate("2025-05-01"))
	assert.Equal(t, UnknownDate, FormatDate(""))
	assert.Equal(t, UnknownDate, FormatDate("   "))
	// Unparseable input degrades to the raw string, never an error.
	assert.Equal(t, "sometime last spring", FormatDate("sometime last spring"))
}

func TestNormalizeAppliesEveryAccessor(t *testing.T) {
	rec := Record{
		ID:      "exp-1",
		Company: "acme",
		Outcome: json.RawMessage(`{"result":"Accepted"}`),
		Metadata: &Metadata{
			Title: "Acme Platform Team Loop",
			Level: "Senior",
			Date:  "2025-03-15",
		},
	}

	normalized := Normalize(rec)

	assert.Equal(t, "Acme Platform Team Loop", normalized.Title)
	assert.Equal(t, "Accepted", normalized.Outcome)
	assert.Equal(t, "Senior", normalized.Level)
	assert.Equal(t, UnknownValue, normalized.PostType)
	assert.Equal(t, "2025-03-15", normalized.Date)
	assert.Equal(t, "Mar 15, 2025", normalized.DateDisplay)
}

func TestOccurrencesConcatenatesAllLists(t *testing.T) {
	rec := Record{
		CodingQuestions:       []Occurrence{{ID: "c1"}},
		SystemDesignQuestions: []Occurrence{{ID: "s1"}, {ID: "s2"}},
		BehavioralQuestions:   []Occurrence{{ID: "b1"}},
	}

	occ := rec.Occurrences()
	assert.Len(t, occ, 4)
	assert.Equal(t, "c1", occ[0].ID)
	assert.Equal(t, "b1", occ[3].ID)
}
