package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/srs"
)

const dateLayout = "2006-01-02 15:04"

// RenderReport prints every section of r.
func RenderReport(w io.Writer, r Report) error {
	if err := RenderOverview(w, r.Overview); err != nil {
		return err
	}
	if err := RenderSessions(w, r.Sessions); err != nil {
		return err
	}
	if err := RenderTypeAccuracy(w, r.ByType); err != nil {
		return err
	}
	if err := RenderDue(w, r.Due); err != nil {
		return err
	}
	return RenderDifficult(w, r.Difficult)
}

// RenderOverview prints the learning overview.
func RenderOverview(w io.Writer, o Overview) error {
	rows := [][]string{
		{"Words learned", fmt.Sprintf("%d", o.WordsLearned)},
		{"Total practices", fmt.Sprintf("%d", o.TotalPractices)},
		{"Sessions", fmt.Sprintf("%d", o.Sessions)},
		{"Avg score", fmt.Sprintf("%d%%", o.AvgScore)},
	}
	return writeTable(w, "Overview", nil, rows, map[int]bool{1: true})
}

// RenderSessions prints finished sessions with their score tier.
func RenderSessions(w io.Writer, sessions []model.SessionSummary) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		summary := Summarize(s.Score, s.Total)
		rows = append(rows, []string{
			s.EndedAt.Local().Format(dateLayout),
			s.TestID,
			s.SectionID,
			fmt.Sprintf("%d/%d", s.Score, s.Total),
			fmt.Sprintf("%d%%", summary.Percentage),
			summary.Emoji,
			string(summary.Adjustment),
		})
	}
	headers := []string{"Ended", "Test", "Section", "Score", "Pct", "", "Next"}
	return writeTable(w, "Sessions", headers, rows, map[int]bool{3: true, 4: true})
}

// RenderTypeAccuracy prints accuracy per question type.
func RenderTypeAccuracy(w io.Writer, byType []TypeAccuracy) error {
	if len(byType) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(byType))
	for _, acc := range byType {
		rows = append(rows, []string{
			string(acc.Type),
			fmt.Sprintf("%d%%", Percentage(acc.Correct, acc.Total)),
			fmt.Sprintf("%d", acc.Correct),
			fmt.Sprintf("%d", acc.Total),
		})
	}
	headers := []string{"Type", "Accuracy", "Correct", "Total"}
	return writeTable(w, "By Question Type", headers, rows, map[int]bool{1: true, 2: true, 3: true})
}

// RenderDue prints words due for review, most overdue first.
func RenderDue(w io.Writer, due []srs.DueWord) error {
	if len(due) == 0 {
		_, err := fmt.Fprintln(w, "No words due for review.")
		return err
	}
	rows := make([][]string, 0, len(due))
	for _, d := range due {
		rows = append(rows, []string{
			d.Word,
			fmt.Sprintf("%d", d.DaysOverdue),
			fmt.Sprintf("%d", d.Interval),
			fmt.Sprintf("%.2f", d.EaseFactor),
		})
	}
	headers := []string{"Word", "Overdue (d)", "Interval", "Ease"}
	return writeTable(w, fmt.Sprintf("Words to Review (%d)", len(due)), headers, rows, map[int]bool{1: true, 2: true, 3: true})
}

// RenderDifficult prints the lowest-accuracy words.
func RenderDifficult(w io.Writer, words []srs.DifficultWord) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No difficult words yet.")
		return err
	}
	rows := make([][]string, 0, len(words))
	for _, d := range words {
		rows = append(rows, []string{
			d.Word,
			fmt.Sprintf("%d%%", d.Accuracy),
			fmt.Sprintf("%d", len(d.History)),
		})
	}
	headers := []string{"Word", "Accuracy", "Attempts"}
	return writeTable(w, "Practice These Words", headers, rows, map[int]bool{1: true, 2: true})
}

// RenderAnswers prints the answer review of one session.
func RenderAnswers(w io.Writer, answers []model.AnswerRecord) error {
	rows := make([][]string, 0, len(answers))
	for _, a := range answers {
		mark := "✅"
		yours := ""
		if !a.Correct {
			mark = "❌"
			yours = a.UserAnswer
		}
		rows = append(rows, []string{
			mark,
			fmt.Sprintf("Q%d", a.Number),
			a.Picture,
			a.Prompt,
			a.CorrectAnswer,
			yours,
		})
	}
	headers := []string{"", "#", "", "Prompt", "Answer", "Yours"}
	return writeTable(w, "Your Answers", headers, rows, nil)
}
