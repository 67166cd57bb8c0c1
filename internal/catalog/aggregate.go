package catalog

import "strconv"

// MergeRounds folds the numbered rounds, in ascending order, into a single
// deduplicated question list keyed by question ID. The first occurrence of an
// ID seeds the entry; later occurrences only contribute their sources and any
// phrasings not already present. Scalar metadata (name, category, difficulty,
// leetcode links, approaches, topics) keeps the first writer's values.
//
// Rounds absent from the mapping are skipped, never treated as an error.
// Output order is first-encounter order, which is deterministic for a fixed
// input.
func MergeRounds(rounds map[string]RoundBucket) []Question {
	merged := make(map[string]*Question)
	order := make([]string, 0)

	for round := MinRound; round <= MaxRound; round++ {
		bucket, ok := rounds[strconv.Itoa(round)]
		if !ok {
			continue
		}
		for _, q := range bucket.Questions {
			existing, seen := merged[q.ID]
			if !seen {
				seeded := cloneQuestion(q)
				merged[q.ID] = &seeded
				order = append(order, q.ID)
				continue
			}
			mergeInto(existing, q)
		}
	}

	out := make([]Question, 0, len(order))
	for _, id := range order {
		out = append(out, *merged[id])
	}
	return out
}

// mergeInto folds a later occurrence into an already-seeded entry. Sources are
// deduplicated by (sourceId, roundName) value; variations, follow-ups and
// gotchas by exact string.
func mergeInto(dst *Question, src Question) {
	for _, s := range src.Sources {
		if !containsSource(dst.Sources, s) {
			dst.Sources = append(dst.Sources, s)
		}
	}
	dst.Variations = appendUnique(dst.Variations, src.Variations...)
	dst.FollowUps = appendUnique(dst.FollowUps, src.FollowUps...)
	dst.Gotchas = appendUnique(dst.Gotchas, src.Gotchas...)
}

// cloneQuestion copies the question with fresh slices so merging never writes
// through to the bucket the question came from.
func cloneQuestion(q Question) Question {
	out := q
	out.Sources = append([]Source(nil), q.Sources...)
	out.Variations = append([]string(nil), q.Variations...)
	out.FollowUps = append([]string(nil), q.FollowUps...)
	out.Gotchas = append([]string(nil), q.Gotchas...)
	out.LeetcodeSimilar = append([]string(nil), q.LeetcodeSimilar...)
	out.Approaches = append([]string(nil), q.Approaches...)
	out.Topics = append([]string(nil), q.Topics...)
	return out
}

func containsSource(list []Source, s Source) bool {
	for _, have := range list {
		if have == s {
			return true
		}
	}
	return false
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		present := false
		for _, have := range dst {
			if have == v {
				present = true
				break
			}
		}
		if !present {
			dst = append(dst, v)
		}
	}
	return dst
}
