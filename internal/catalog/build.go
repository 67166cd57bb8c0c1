package catalog

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/experience"
)

const topQuestionLimit = 25

// BuildDataset folds raw per-company experience documents into the questions
// dataset: per-round buckets with common/unique classification, the
// top-questions leaderboard, and the global stats block. This runs at data
// preparation time; the serving path only consumes its output.
func BuildDataset(docs []experience.CompanyDoc, now time.Time) QuestionsDataset {
	buckets := make(map[int]map[string]*Question)
	encounter := make(map[int][]string)
	categories := make(map[string]struct{})
	totalExperiences := 0

	for _, doc := range docs {
		for _, rec := range doc.Experiences {
			totalExperiences++
			for _, occ := range rec.Occurrences() {
				round := roundNumberFor(rec, occ)
				if round < MinRound || round > MaxRound {
					continue
				}
				byID := buckets[round]
				if byID == nil {
					byID = make(map[string]*Question)
					buckets[round] = byID
				}
				q := questionFromOccurrence(occ, rec)
				if existing, ok := byID[occ.ID]; ok {
					mergeInto(existing, q)
				} else {
					byID[occ.ID] = &q
					encounter[round] = append(encounter[round], occ.ID)
				}
				if occ.Category != "" {
					categories[occ.Category] = struct{}{}
				}
			}
		}
	}

	// Which rounds each id shows up in, for the common/unique split.
	roundsOf := make(map[string]map[int]struct{})
	for round, byID := range buckets {
		for id := range byID {
			if roundsOf[id] == nil {
				roundsOf[id] = make(map[int]struct{})
			}
			roundsOf[id][round] = struct{}{}
		}
	}

	rounds := make(map[string]RoundBucket)
	statsRounds := make(map[string]RoundStats)
	for round := MinRound; round <= MaxRound; round++ {
		ids := encounter[round]
		if len(ids) == 0 {
			continue
		}
		questions := make([]Question, 0, len(ids))
		common := 0
		for _, id := range ids {
			questions = append(questions, *buckets[round][id])
			if len(roundsOf[id]) > 1 {
				common++
			}
		}
		key := strconv.Itoa(round)
		rounds[key] = RoundBucket{
			TotalQuestions:  len(questions),
			CommonPatterns:  common,
			UniqueQuestions: len(questions) - common,
			Questions:       questions,
		}
		statsRounds[key] = RoundStats{
			Total:  len(questions),
			Common: common,
			Unique: len(questions) - common,
		}
	}

	return QuestionsDataset{
		GeneratedAt:      now.UTC().Format(time.RFC3339),
		TotalExperiences: totalExperiences,
		Categories:       sortedKeys(categories),
		TopQuestions:     buildTopQuestions(rounds, roundsOf),
		Stats: GlobalStats{
			TotalQuestions: len(roundsOf),
			Rounds:         statsRounds,
		},
		Rounds: rounds,
	}
}

// buildTopQuestions ranks the merged catalog by popularity and keeps the head
// of the list as the precomputed leaderboard.
func buildTopQuestions(rounds map[string]RoundBucket, roundsOf map[string]map[int]struct{}) []TopQuestion {
	merged := MergeRounds(rounds)
	sort.SliceStable(merged, func(i, j int) bool {
		return len(merged[i].Sources) > len(merged[j].Sources)
	})
	if len(merged) > topQuestionLimit {
		merged = merged[:topQuestionLimit]
	}

	top := make([]TopQuestion, 0, len(merged))
	for _, q := range merged {
		var roundNums []int
		for round := range roundsOf[q.ID] {
			roundNums = append(roundNums, round)
		}
		sort.Ints(roundNums)
		roundKeys := make([]string, 0, len(roundNums))
		for _, n := range roundNums {
			roundKeys = append(roundKeys, strconv.Itoa(n))
		}
		top = append(top, TopQuestion{
			ID:       q.ID,
			Name:     q.Name,
			Category: q.Category,
			Count:    len(q.Sources),
			Rounds:   roundKeys,
		})
	}
	return top
}

// questionFromOccurrence seeds a single-source aggregated question from one
// occurrence. A missing sourceId falls back to the record id so attribution
// never goes blank.
func questionFromOccurrence(occ experience.Occurrence, rec experience.Record) Question {
	sourceID := occ.SourceID
	if sourceID == "" {
		sourceID = rec.ID
	}
	q := Question{
		ID:              occ.ID,
		Name:            occ.Name,
		Category:        occ.Category,
		Sources:         []Source{{SourceID: sourceID, RoundName: occ.RoundName}},
		FollowUps:       append([]string(nil), occ.FollowUps...),
		Gotchas:         append([]string(nil), occ.Gotchas...),
		Difficulty:      occ.Difficulty,
		LeetcodeSimilar: append([]string(nil), occ.LeetcodeSimilar...),
		Approaches:      append([]string(nil), occ.Approaches...),
		Topics:          append([]string(nil), occ.Topics...),
	}
	if strings.TrimSpace(occ.VariationText) != "" {
		q.Variations = []string{occ.VariationText}
	}
	return q
}

// roundNumberFor resolves the numbered round an occurrence belongs to. The
// round name is matched against the record's round list first; failing that,
// the first round digit embedded in the name is used. Zero means the
// occurrence cannot be placed and is dropped by the caller.
func roundNumberFor(rec experience.Record, occ experience.Occurrence) int {
	for i, round := range rec.Rounds {
		if strings.EqualFold(round.Name, occ.RoundName) {
			if round.Number >= MinRound && round.Number <= MaxRound {
				return round.Number
			}
			return i + 1
		}
	}
	for _, r := range occ.RoundName {
		if r >= '1' && r <= '5' {
			return int(r - '0')
		}
	}
	return 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
