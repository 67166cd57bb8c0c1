package catalog

import (
	"sort"
	"strings"
)

// Query selects and ranks questions from a dataset. The zero value means all
// rounds, all categories, no text search.
type Query struct {
	Round    string
	Category string
	Search   string
}

// Apply filters and ranks the catalog. It is a pure function of the dataset
// and query: the dataset is never mutated and no state is carried between
// calls.
//
// Filters run in a fixed order: round selection, category filter, text
// search, then the popularity sort. Category and search are independent
// predicates, so their relative order does not change the result set.
func Apply(ds *QuestionsDataset, q Query) []Question {
	if ds == nil {
		return nil
	}

	questions := selectRound(ds, q.Round)
	questions = filterCategory(questions, q.Category)
	questions = filterSearch(questions, q.Search)

	// Descending by popularity. Ordering between equal counts is whatever
	// sort.Slice leaves behind.
	sort.Slice(questions, func(i, j int) bool {
		return len(questions[i].Sources) > len(questions[j].Sources)
	})
	return questions
}

// selectRound returns the merged all-rounds catalog, a single round's bucket
// unmerged, or nothing at all for an unknown round key.
func selectRound(ds *QuestionsDataset, round string) []Question {
	if round == "" || round == RoundAll {
		return MergeRounds(ds.Rounds)
	}
	bucket, ok := ds.Rounds[round]
	if !ok {
		return nil
	}
	out := make([]Question, len(bucket.Questions))
	copy(out, bucket.Questions)
	return out
}

func filterCategory(questions []Question, category string) []Question {
	if category == "" || category == CategoryAll {
		return questions
	}
	kept := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Category == category {
			kept = append(kept, q)
		}
	}
	return kept
}

func filterSearch(questions []Question, raw string) []Question {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return questions
	}
	kept := make([]Question, 0, len(questions))
	for _, q := range questions {
		if matchesSearch(q, needle) {
			kept = append(kept, q)
		}
	}
	return kept
}

// matchesSearch reports whether the lowercased needle appears in the name,
// the category, or any variation, leetcode link or topic.
func matchesSearch(q Question, needle string) bool {
	if strings.Contains(strings.ToLower(q.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(q.Category), needle) {
		return true
	}
	return anyContains(q.Variations, needle) ||
		anyContains(q.LeetcodeSimilar, needle) ||
		anyContains(q.Topics, needle)
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
