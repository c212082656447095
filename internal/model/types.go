// Package model defines shared data structures.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// VocabularyItem is a single corpus entry.
type VocabularyItem struct {
	Chinese  string `json:"chinese"`
	Jyutping string `json:"jyutping"`
	English  string `json:"english"`
	Icon     string `json:"icon"`
	Category string `json:"category,omitempty"`
}

// Field selects one string attribute of a VocabularyItem.
type Field string

const (
	FieldChinese  Field = "chinese"
	FieldEnglish  Field = "english"
	FieldJyutping Field = "jyutping"
	FieldIcon     Field = "icon"
)

// Value returns the item's value for f.
func (v VocabularyItem) Value(f Field) string {
	switch f {
	case FieldChinese:
		return v.Chinese
	case FieldEnglish:
		return v.English
	case FieldJyutping:
		return v.Jyutping
	case FieldIcon:
		return v.Icon
	default:
		return ""
	}
}

// QuestionType names a question builder.
type QuestionType string

const (
	FillChinese      QuestionType = "fill_chinese"
	SelectJyutping   QuestionType = "select_jyutping"
	SelectPicture    QuestionType = "select_picture"
	WordOrder        QuestionType = "word_order"
	MatchTranslation QuestionType = "match_translation"
	AudioIdentify    QuestionType = "audio_identify"
	Speaking         QuestionType = "speaking"
)

// Known reports whether t names a question builder.
func (t QuestionType) Known() bool {
	switch t {
	case FillChinese, SelectJyutping, SelectPicture, WordOrder, MatchTranslation, AudioIdentify, Speaking:
		return true
	}
	return false
}

// Question is a renderable quiz question. Which fields are set depends on Type.
type Question struct {
	Type      QuestionType `json:"type"`
	Picture   string       `json:"picture,omitempty"`
	Jyutping  string       `json:"jyutping,omitempty"`
	Chinese   string       `json:"chinese,omitempty"`
	English   string       `json:"english,omitempty"`
	AudioText string       `json:"audio_text,omitempty"`
	// Answer holds the correct value for every type except word_order.
	Answer string `json:"answer,omitempty"`
	// AnswerTokens holds the ordered tokens of a word_order question.
	AnswerTokens []string        `json:"answer_tokens,omitempty"`
	Options      []string        `json:"options,omitempty"`
	Scrambled    []string        `json:"scrambled,omitempty"`
	Item         *VocabularyItem `json:"speaking_item,omitempty"`
	// Word is the chinese of the vocabulary item the question was built from.
	Word string `json:"word,omitempty"`
}

// AnswerText returns the answer as a single string.
func (q Question) AnswerText() string {
	if q.Type == WordOrder {
		return strings.Join(q.AnswerTokens, "")
	}
	return q.Answer
}

// Key returns the word whose performance record the question grades.
// Questions built without a source word fall back to the answer.
func (q Question) Key() string {
	if q.Word != "" {
		return q.Word
	}
	return q.AnswerText()
}

// HistoryEntry is one graded attempt.
type HistoryEntry struct {
	At      time.Time `json:"timestamp"`
	Correct bool      `json:"correct"`
}

// WordPerformanceRecord holds spaced-repetition state for one word.
type WordPerformanceRecord struct {
	Word         string         `json:"word"`
	EaseFactor   float64        `json:"easeFactor"`
	Interval     int            `json:"interval"`
	Repetitions  int            `json:"repetitions"`
	NextReviewAt time.Time      `json:"nextReviewAt"`
	History      []HistoryEntry `json:"history"`
}

// Accuracy returns the share of correct attempts in the history, or 1 without history.
func (r WordPerformanceRecord) Accuracy() float64 {
	if len(r.History) == 0 {
		return 1.0
	}
	correct := 0
	for _, h := range r.History {
		if h.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(r.History))
}

// PerformanceTable maps a word to its record.
type PerformanceTable map[string]WordPerformanceRecord

// Clone returns a deep copy of the table.
func (t PerformanceTable) Clone() PerformanceTable {
	out := make(PerformanceTable, len(t))
	for k, v := range t {
		v.History = append([]HistoryEntry(nil), v.History...)
		out[k] = v
	}
	return out
}

// IndexRange is a [start,end) slice bound.
type IndexRange [2]int

// CategorySlice restricts category items by index, globally or per category.
type CategorySlice struct {
	Global      *IndexRange
	PerCategory map[string]IndexRange
}

// UnmarshalJSON accepts either [start,end] or {"category":[start,end]}.
func (c *CategorySlice) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var r IndexRange
		if err := json.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("invalid category slice: %w", err)
		}
		c.Global = &r
		return nil
	}
	var m map[string]IndexRange
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("invalid category slice: %w", err)
	}
	c.PerCategory = m
	return nil
}

// MarshalJSON writes the slice in the same shape it was read.
func (c CategorySlice) MarshalJSON() ([]byte, error) {
	if c.Global != nil {
		return json.Marshal(c.Global)
	}
	return json.Marshal(c.PerCategory)
}

// Range returns the bound for category, if any.
func (c *CategorySlice) Range(category string) (IndexRange, bool) {
	if c == nil {
		return IndexRange{}, false
	}
	if c.Global != nil {
		return *c.Global, true
	}
	r, ok := c.PerCategory[category]
	return r, ok
}

// Distribution is an ordered question-type mix.
type Distribution []TypeCount

// TypeCount is one entry of a Distribution.
type TypeCount struct {
	Type  QuestionType
	Count int
}

// Total sums all counts.
func (d Distribution) Total() int {
	total := 0
	for _, tc := range d {
		total += tc.Count
	}
	return total
}

// UnmarshalJSON reads a JSON object while keeping key order.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("question distribution must be an object")
	}
	var out Distribution
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("invalid count for %q: %w", key, err)
		}
		out = append(out, TypeCount{Type: QuestionType(key), Count: count})
	}
	*d = out
	return nil
}

// SectionConfig describes how to assemble one quiz section.
type SectionConfig struct {
	ID                   string         `json:"id" validate:"required"`
	Name                 string         `json:"name" validate:"required"`
	ChineseName          string         `json:"chineseName,omitempty"`
	Icon                 string         `json:"icon,omitempty"`
	Categories           []string       `json:"categories,omitempty"`
	CategorySlice        *CategorySlice `json:"categorySlice,omitempty"`
	QuestionDistribution Distribution   `json:"questionDistribution,omitempty"`
	Focus                string         `json:"focus,omitempty"`
	Initials             []string       `json:"initials,omitempty"`
	Vowels               []string       `json:"vowels,omitempty"`
	Endings              []string       `json:"endings,omitempty"`
	Tones                []int          `json:"tones,omitempty"`
	IsMixedReview        bool           `json:"isMixedReview,omitempty"`
}

// TestConfig groups sections under a shared question distribution.
type TestConfig struct {
	ID                   string          `json:"id" validate:"required"`
	Name                 string          `json:"name" validate:"required"`
	ChineseName          string          `json:"chineseName,omitempty"`
	Icon                 string          `json:"icon,omitempty"`
	Description          string          `json:"description,omitempty"`
	QuestionsPerSection  int             `json:"questionsPerSection" validate:"gte=0"`
	Sections             []SectionConfig `json:"sections" validate:"required,min=1,dive"`
	QuestionDistribution Distribution    `json:"questionDistribution"`
}

// Config defines quiz runtime settings.
type Config struct {
	TestID        string  `validate:"required"`
	SectionID     string  `validate:"required"`
	Adaptive      bool
	PriorityRatio float64 `validate:"gte=0,lte=1"`
	Seed          int64
	Speech        bool
}

// AnswerRecord is one graded answer inside a session.
type AnswerRecord struct {
	Number        int
	Type          QuestionType
	Picture       string
	Prompt        string
	CorrectAnswer string
	UserAnswer    string
	Correct       bool
	At            time.Time
}

// SessionSummary is a finished quiz session.
type SessionSummary struct {
	ID        string
	TestID    string
	SectionID string
	StartedAt time.Time
	EndedAt   time.Time
	Score     int
	Total     int
}
