package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDataset() *QuestionsDataset {
	validateStack := question("q1", "Validate Stack Sequence", Source{SourceID: "exp-1", RoundName: "Round 1"})
	validateStack.Category = "DSA/Stacks"
	validateStack.Topics = []string{"Binary Tree", "DFS"}

	twoSum := question("q2", "Two Sum", Source{SourceID: "exp-1", RoundName: "Round 1"})
	twoSum.Category = "DSA/Arrays"

	twoSumAgain := question("q2", "Two Sum",
		Source{SourceID: "exp-2", RoundName: "Round 2"},
		Source{SourceID: "exp-3", RoundName: "Round 2"},
	)
	twoSumAgain.Category = "DSA/Arrays"

	parkingLot := question("q3", "Design a Parking Lot", Source{SourceID: "exp-2", RoundName: "Round 2"})
	parkingLot.Category = "LLD/OOP Design"
	parkingLot.Variations = []string{"Design a parking garage with multiple levels"}

	return &QuestionsDataset{
		GeneratedAt: "2025-06-01T00:00:00Z",
		Rounds: map[string]RoundBucket{
			"1": bucketWith(validateStack, twoSum),
			"2": bucketWith(twoSumAgain, parkingLot),
		},
	}
}

func TestApplySortsByPopularityDescending(t *testing.T) {
	result := Apply(testDataset(), Query{Round: RoundAll})

	assert.Len(t, result, 3)
	assert.Equal(t, "q2", result[0].ID, "three sources should rank first")
	assert.Equal(t, 3, result[0].Popularity())
}

func TestApplySingleRoundReturnsBucketUnmerged(t *testing.T) {
	result := Apply(testDataset(), Query{Round: "2"})

	assert.Len(t, result, 2)
	for _, q := range result {
		if q.ID == "q2" {
			assert.Len(t, q.Sources, 2, "round 2 bucket is served as-is, without round 1's source")
		}
	}
}

func TestApplyUnknownRoundIsEmptyNotError(t *testing.T) {
	assert.Empty(t, Apply(testDataset(), Query{Round: "4"}))
	assert.Empty(t, Apply(testDataset(), Query{Round: "bogus"}))
}

func TestApplyCategoryFilterExactMatch(t *testing.T) {
	result := Apply(testDataset(), Query{Round: RoundAll, Category: "LLD/OOP Design"})

	assert.Len(t, result, 1)
	assert.Equal(t, "q3", result[0].ID)

	all := Apply(testDataset(), Query{Round: RoundAll, Category: CategoryAll})
	assert.Len(t, all, 3, `"all" category passes everything through`)
}

func TestApplySearchMatchesTopicsNotJustName(t *testing.T) {
	// "tree" only appears in q1's topics; its name does not contain it.
	result := Apply(testDataset(), Query{Round: RoundAll, Search: "tree"})

	assert.Len(t, result, 1)
	assert.Equal(t, "Validate Stack Sequence", result[0].Name)
}

func TestApplySearchMatchesVariations(t *testing.T) {
	result := Apply(testDataset(), Query{Round: RoundAll, Search: "garage"})

	assert.Len(t, result, 1)
	assert.Equal(t, "q3", result[0].ID)
}

func TestApplyBlankSearchIsNoOp(t *testing.T) {
	assert.Len(t, Apply(testDataset(), Query{Round: RoundAll, Search: "   "}), 3)
	assert.Len(t, Apply(testDataset(), Query{Round: RoundAll, Search: ""}), 3)
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	upper := Apply(testDataset(), Query{Round: RoundAll, Search: "TWO SUM"})
	lower := Apply(testDataset(), Query{Round: RoundAll, Search: "two sum"})

	assert.Len(t, upper, 1)
	assert.Equal(t, upper, lower)
}

func TestFilterCompositionIsOrderIndependent(t *testing.T) {
	questions := Apply(testDataset(), Query{Round: RoundAll})

	categoryFirst := filterSearch(filterCategory(questions, "DSA/Stacks"), "tree")
	searchFirst := filterCategory(filterSearch(questions, "tree"), "DSA/Stacks")

	assert.Equal(t, categoryFirst, searchFirst)
}

func TestApplyNilDataset(t *testing.T) {
	assert.Nil(t, Apply(nil, Query{Round: RoundAll}))
}
