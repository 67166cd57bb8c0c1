package experience

import "encoding/json"

// Occurrence is one appearance of a question inside one round of one
// experience. ID and Category are assigned upstream and treated as immutable
// identity: occurrences sharing an ID are the same logical question no matter
// how the phrasing differs.
type Occurrence struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	SourceID        string   `json:"sourceId"`
	RoundName       string   `json:"roundName"`
	VariationText   string   `json:"variationText"`
	FollowUps       []string `json:"followUps"`
	Gotchas         []string `json:"gotchas"`
	Difficulty      string   `json:"difficulty"`
	LeetcodeSimilar []string `json:"leetcodeSimilar"`
	Approaches      []string `json:"approaches"`
	Topics          []string `json:"topics"`
}

// Round describes one interview round of an experience.
type Round struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Focus  string `json:"focus"`
}

// Metadata is the optional nested metadata block on a record.
type Metadata struct {
	Title    string `json:"title"`
	Level    string `json:"level"`
	PostType string `json:"postType"`
	Date     string `json:"date"`
}

// SourceMeta carries attribution for the post the record was scraped from.
type SourceMeta struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
}

// Record is one raw interview experience. Outcome stays raw JSON because
// legacy records store a plain string where newer ones store an object with a
// result field; the accessors decode it on demand and never fail.
type Record struct {
	ID                    string          `json:"id"`
	Company               string          `json:"company"`
	Folder                string          `json:"folder"`
	Metadata              *Metadata       `json:"metadata"`
	SourceMeta            *SourceMeta     `json:"sourceMeta"`
	Outcome               json.RawMessage `json:"outcome"`
	Rounds                []Round         `json:"rounds"`
	CodingQuestions       []Occurrence    `json:"codingQuestions"`
	SystemDesignQuestions []Occurrence    `json:"systemDesignQuestions"`
	BehavioralQuestions   []Occurrence    `json:"behavioralQuestions"`
	Notes                 string          `json:"notes"`
}

// Occurrences returns every question occurrence on the record, coding first,
// then system design, then behavioral.
func (r Record) Occurrences() []Occurrence {
	out := make([]Occurrence, 0, len(r.CodingQuestions)+len(r.SystemDesignQuestions)+len(r.BehavioralQuestions))
	out = append(out, r.CodingQuestions...)
	out = append(out, r.SystemDesignQuestions...)
	out = append(out, r.BehavioralQuestions...)
	return out
}

// CompanyStats aggregates counts for one company document.
type CompanyStats struct {
	ByOutcome    map[string]int `json:"byOutcome"`
	ByPostType   map[string]int `json:"byPostType"`
	ByLevel      map[string]int `json:"byLevel"`
	ByDifficulty map[string]int `json:"byDifficulty"`
}

// CompanyDoc is one per-company experiences document.
type CompanyDoc struct {
	Company     string       `json:"company"`
	GeneratedAt string       `json:"generatedAt"`
	Stats       CompanyStats `json:"stats"`
	Experiences []Record     `json:"experiences"`
}
