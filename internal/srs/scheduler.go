// Package srs schedules word reviews with a simplified SM-2 algorithm.
package srs

import (
	"math"
	"sort"
	"time"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

const day = 24 * time.Hour

// Scheduler updates and queries word performance records.
type Scheduler struct {
	params *Params
}

// NewScheduler returns a Scheduler. Nil params means NewDefaultParams().
func NewScheduler(params *Params) *Scheduler {
	if params == nil {
		params = NewDefaultParams()
	}
	return &Scheduler{params: params}
}

// Params returns the scheduler's parameters.
func (s *Scheduler) Params() Params {
	return *s.params
}

// NewRecord returns the state of a word that has never been graded.
func (s *Scheduler) NewRecord(word string, now time.Time) model.WordPerformanceRecord {
	return model.WordPerformanceRecord{
		Word:         word,
		EaseFactor:   s.params.InitialEaseFactor,
		Interval:     s.params.FirstInterval,
		NextReviewAt: now,
		History:      []model.HistoryEntry{},
	}
}

// Next returns rec after one graded attempt at now. rec is not modified.
func (s *Scheduler) Next(rec model.WordPerformanceRecord, correct bool, now time.Time) model.WordPerformanceRecord {
	history := make([]model.HistoryEntry, 0, len(rec.History)+1)
	history = append(history, rec.History...)
	history = append(history, model.HistoryEntry{At: now, Correct: correct})
	if limit := s.params.HistoryLimit; limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	rec.History = history

	if correct {
		rec.Repetitions++
		switch rec.Repetitions {
		case 1:
			rec.Interval = s.params.FirstInterval
		case 2:
			rec.Interval = s.params.SecondInterval
		default:
			rec.Interval = int(math.Round(float64(rec.Interval) * rec.EaseFactor))
		}
		rec.EaseFactor = math.Min(rec.EaseFactor+s.params.CorrectEaseBonus, s.params.MaxEaseFactor)
	} else {
		rec.Repetitions = 0
		rec.Interval = s.params.FirstInterval
		rec.EaseFactor = math.Max(rec.EaseFactor-s.params.IncorrectEasePenalty, s.params.MinEaseFactor)
	}
	if rec.Interval < 1 {
		rec.Interval = 1
	}
	rec.NextReviewAt = now.AddDate(0, 0, rec.Interval)
	return rec
}

// Grade records an attempt for word and returns the updated table. The input
// table is not modified.
func (s *Scheduler) Grade(table model.PerformanceTable, word string, correct bool, now time.Time) model.PerformanceTable {
	out := table.Clone()
	rec, ok := out[word]
	if !ok {
		rec = s.NewRecord(word, now)
	}
	out[word] = s.Next(rec, correct, now)
	return out
}

// DueWord is a record whose review is due.
type DueWord struct {
	model.WordPerformanceRecord
	DaysOverdue int
}

// DueForReview returns records due at now, most overdue first.
func (s *Scheduler) DueForReview(table model.PerformanceTable, now time.Time) []DueWord {
	due := make([]DueWord, 0)
	for word, rec := range table {
		if rec.NextReviewAt.After(now) {
			continue
		}
		rec.Word = word
		due = append(due, DueWord{
			WordPerformanceRecord: rec,
			DaysOverdue:           int(now.Sub(rec.NextReviewAt) / day),
		})
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].DaysOverdue != due[j].DaysOverdue {
			return due[i].DaysOverdue > due[j].DaysOverdue
		}
		return due[i].Word < due[j].Word
	})
	return due
}

// DifficultWord is a record ranked by accuracy.
type DifficultWord struct {
	model.WordPerformanceRecord
	// Accuracy is the rounded percentage of correct attempts.
	Accuracy int
}

// DifficultWords returns up to limit records with enough history, lowest
// accuracy first.
func (s *Scheduler) DifficultWords(table model.PerformanceTable, limit int) []DifficultWord {
	words := make([]DifficultWord, 0)
	for word, rec := range table {
		if len(rec.History) < s.params.DifficultMinAttempts {
			continue
		}
		rec.Word = word
		words = append(words, DifficultWord{WordPerformanceRecord: rec, Accuracy: AccuracyPercent(rec)})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Accuracy != words[j].Accuracy {
			return words[i].Accuracy < words[j].Accuracy
		}
		return words[i].Word < words[j].Word
	})
	if limit >= 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// AccuracyPercent returns the rounded accuracy of rec, 100 without history.
func AccuracyPercent(rec model.WordPerformanceRecord) int {
	return int(math.Round(rec.Accuracy() * 100))
}
