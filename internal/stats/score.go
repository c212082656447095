// Package stats contains score summaries and reporting.
package stats

import "math"

// Adjustment suggests how the next section should change.
type Adjustment string

const (
	AdjustHarder Adjustment = "harder"
	AdjustSame   Adjustment = "same"
	AdjustEasier Adjustment = "easier"
)

// ScoreSummary describes a finished section.
type ScoreSummary struct {
	Correct    int
	Total      int
	Percentage int
	Emoji      string
	Message    string
	Adjustment Adjustment
}

// Percentage returns correct/total as a rounded percentage, 0 without questions.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Summarize grades a section score.
func Summarize(correct, total int) ScoreSummary {
	pct := Percentage(correct, total)
	s := ScoreSummary{Correct: correct, Total: total, Percentage: pct, Adjustment: AdjustmentFor(pct)}
	switch {
	case pct >= 90:
		s.Emoji, s.Message = "🏆", "Outstanding! You're a Cantonese master!"
	case pct >= 75:
		s.Emoji, s.Message = "🌟", "Great job! You're doing excellent!"
	case pct >= 60:
		s.Emoji, s.Message = "⭐", "Good work! Keep practicing!"
	default:
		s.Emoji, s.Message = "📚", "Keep learning! You're getting better!"
	}
	return s
}

// AdjustmentFor maps a percentage to a difficulty hint.
func AdjustmentFor(pct int) Adjustment {
	if pct >= 90 {
		return AdjustHarder
	}
	if pct <= 50 {
		return AdjustEasier
	}
	return AdjustSame
}
