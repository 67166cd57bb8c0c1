package catalog

// Round selector and category filter wildcards.
const (
	RoundAll    = "all"
	CategoryAll = "all"
)

// Numbered interview rounds covered by the catalog.
const (
	MinRound = 1
	MaxRound = 5
)

// Source identifies where a question was asked: one experience, one round.
// Two sources are the same when both fields match.
type Source struct {
	SourceID  string `json:"sourceId"`
	RoundName string `json:"roundName"`
}

// Question is the cross-round, deduplicated view of one logical question.
// Identity is the ID; phrasing may differ between occurrences, so every
// distinct phrasing is kept in Variations.
type Question struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Sources         []Source `json:"sources"`
	Variations      []string `json:"variations"`
	FollowUps       []string `json:"followUps"`
	Gotchas         []string `json:"gotchas"`
	Difficulty      string   `json:"difficulty,omitempty"`
	LeetcodeSimilar []string `json:"leetcodeSimilar,omitempty"`
	Approaches      []string `json:"approaches,omitempty"`
	Topics          []string `json:"topics,omitempty"`
}

// Popularity is the number of distinct (experience, round) pairs that asked
// this question. It is the default sort key for the catalog.
func (q Question) Popularity() int {
	return len(q.Sources)
}

// RoundBucket holds one numbered round's precomputed totals plus the round's
// question list, aggregated within the round at data-preparation time.
type RoundBucket struct {
	TotalQuestions  int        `json:"totalQuestions"`
	CommonPatterns  int        `json:"commonPatterns"`
	UniqueQuestions int        `json:"uniqueQuestions"`
	Questions       []Question `json:"questions"`
}

// RoundStats mirrors the bucket counters inside the global stats block.
type RoundStats struct {
	Total  int `json:"total"`
	Common int `json:"common"`
	Unique int `json:"unique"`
}

// GlobalStats summarizes the whole dataset.
type GlobalStats struct {
	TotalQuestions int                   `json:"totalQuestions"`
	Rounds         map[string]RoundStats `json:"rounds"`
}

// TopQuestion is one row of the precomputed leaderboard.
type TopQuestion struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Rounds   []string `json:"rounds"`
}

// QuestionsDataset is the generated catalog document the API serves from.
// Rounds is keyed by the round number rendered as a string ("1".."5"); a
// sparse mapping is legal and missing rounds simply contribute nothing.
type QuestionsDataset struct {
	GeneratedAt      string                 `json:"generatedAt" validate:"required"`
	TotalExperiences int                    `json:"totalExperiences"`
	Categories       []string               `json:"categories"`
	TopQuestions     []TopQuestion          `json:"topQuestions"`
	Stats            GlobalStats            `json:"stats"`
	Rounds           map[string]RoundBucket `json:"rounds" validate:"required"`
}
