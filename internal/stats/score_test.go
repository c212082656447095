package stats

import "testing"

func TestSummarize(t *testing.T) {
	cases := []struct {
		correct, total int
		pct            int
		emoji          string
		adjust         Adjustment
	}{
		{correct: 20, total: 20, pct: 100, emoji: "🏆", adjust: AdjustHarder},
		{correct: 18, total: 20, pct: 90, emoji: "🏆", adjust: AdjustHarder},
		{correct: 15, total: 20, pct: 75, emoji: "🌟", adjust: AdjustSame},
		{correct: 2, total: 3, pct: 67, emoji: "⭐", adjust: AdjustSame},
		{correct: 11, total: 20, pct: 55, emoji: "📚", adjust: AdjustSame},
		{correct: 10, total: 20, pct: 50, emoji: "📚", adjust: AdjustEasier},
		{correct: 0, total: 0, pct: 0, emoji: "📚", adjust: AdjustEasier},
	}
	for _, tc := range cases {
		got := Summarize(tc.correct, tc.total)
		if got.Percentage != tc.pct {
			t.Fatalf("%d/%d: expected %d%%, got %d%%", tc.correct, tc.total, tc.pct, got.Percentage)
		}
		if got.Emoji != tc.emoji {
			t.Fatalf("%d/%d: expected %s, got %s", tc.correct, tc.total, tc.emoji, got.Emoji)
		}
		if got.Adjustment != tc.adjust {
			t.Fatalf("%d/%d: expected %s, got %s", tc.correct, tc.total, tc.adjust, got.Adjustment)
		}
		if got.Message == "" {
			t.Fatalf("%d/%d: expected a message", tc.correct, tc.total)
		}
	}
}
