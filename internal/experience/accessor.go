package experience

import (
	"encoding/json"
	"strings"
	"time"
)

// Fallback values returned by the accessors. Every accessor degrades to one
// of these instead of returning an error: downstream rendering assumes the
// values are always printable.
const (
	UnknownValue       = "unknown"
	UntitledExperience = "Untitled Experience"
	UnknownDate        = "Unknown date"
)

// OutcomeOf returns the record's outcome. It accepts both the legacy plain
// string form and the structured {"result": ...} form; anything absent or
// malformed reads as "unknown".
func OutcomeOf(r Record) string {
	if len(r.Outcome) == 0 {
		return UnknownValue
	}

	var plain string
	if err := json.Unmarshal(r.Outcome, &plain); err == nil {
		if strings.TrimSpace(plain) == "" {
			return UnknownValue
		}
		return plain
	}

	var structured struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(r.Outcome, &structured); err == nil && strings.TrimSpace(structured.Result) != "" {
		return structured.Result
	}
	return UnknownValue
}

// LevelOf returns the metadata level, or "unknown".
func LevelOf(r Record) string {
	if r.Metadata != nil && strings.TrimSpace(r.Metadata.Level) != "" {
		return r.Metadata.Level
	}
	return UnknownValue
}

// PostTypeOf returns the metadata post type, or "unknown".
func PostTypeOf(r Record) string {
	if r.Metadata != nil && strings.TrimSpace(r.Metadata.PostType) != "" {
		return r.Metadata.PostType
	}
	return UnknownValue
}

// TitleOf returns the display title. Precedence: explicit metadata title,
// then source-meta title, then the folder or id fallback, then the literal
// placeholder. The order is part of the display contract.
func TitleOf(r Record) string {
	if r.Metadata != nil && strings.TrimSpace(r.Metadata.Title) != "" {
		return r.Metadata.Title
	}
	if r.SourceMeta != nil && strings.TrimSpace(r.SourceMeta.Title) != "" {
		return r.SourceMeta.Title
	}
	if strings.TrimSpace(r.Folder) != "" {
		return r.Folder
	}
	if strings.TrimSpace(r.ID) != "" {
		return r.ID
	}
	return UntitledExperience
}

// DateOf returns the raw source date string, or "" when the record carries
// none. Formatting for display is FormatDate's job.
func DateOf(r Record) string {
	if r.Metadata != nil && strings.TrimSpace(r.Metadata.Date) != "" {
		return r.Metadata.Date
	}
	if r.SourceMeta != nil && strings.TrimSpace(r.SourceMeta.Date) != "" {
		return r.SourceMeta.Date
	}
	return ""
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
}

// FormatDate renders a raw date string for display. An empty input reads as
// "Unknown date"; a string no layout can parse is returned as-is rather than
// surfacing the parse error.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

// NormalizedRecord is the flattened, defaulted view of a Record, produced
// once at the system boundary so nothing downstream branches on record shape
// again.
type NormalizedRecord struct {
	ID                    string       `json:"id"`
	Company               string       `json:"company"`
	Title                 string       `json:"title"`
	Outcome               string       `json:"outcome"`
	Level                 string       `json:"level"`
	PostType              string       `json:"postType"`
	Date                  string       `json:"date,omitempty"`
	DateDisplay           string       `json:"dateDisplay"`
	Rounds                []Round      `json:"rounds"`
	CodingQuestions       []Occurrence `json:"codingQuestions"`
	SystemDesignQuestions []Occurrence `json:"systemDesignQuestions"`
	BehavioralQuestions   []Occurrence `json:"behavioralQuestions"`
	Notes                 string       `json:"notes,omitempty"`
}

// Normalize applies every accessor once and returns the uniform view.
func Normalize(r Record) NormalizedRecord {
	date := DateOf(r)
	return NormalizedRecord{
		ID:                    r.ID,
		Company:               r.Company,
		Title:                 TitleOf(r),
		Outcome:               OutcomeOf(r),
		Level:                 LevelOf(r),
		PostType:              PostTypeOf(r),
		Date:                  date,
		DateDisplay:           FormatDate(date),
		Rounds:                r.Rounds,
		CodingQuestions:       r.CodingQuestions,
		SystemDesignQuestions: r.SystemDesignQuestions,
		BehavioralQuestions:   r.BehavioralQuestions,
		Notes:                 r.Notes,
	}
}
