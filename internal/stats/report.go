package stats

import (
	"context"
	"sort"
	"time"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/srs"
	"github.com/verte-zerg/jyutquiz/internal/store"
)

// Overview summarizes overall learning progress.
type Overview struct {
	WordsLearned   int
	TotalPractices int
	Sessions       int
	AvgScore       int
}

// TypeAccuracy aggregates answers of one question type.
type TypeAccuracy struct {
	Type    model.QuestionType
	Correct int
	Total   int
}

// ReportConfig selects what BuildReport loads.
type ReportConfig struct {
	Filter         store.SessionFilter
	DifficultLimit int
	Now            time.Time
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Overview  Overview
	Sessions  []model.SessionSummary
	ByType    []TypeAccuracy
	Due       []srs.DueWord
	Difficult []srs.DifficultWord
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, sched *srs.Scheduler, cfg ReportConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg.Filter)
	if err != nil {
		return Report{}, err
	}
	answers, err := st.ListAnswers(ctx, sessionIDs(sessions))
	if err != nil {
		return Report{}, err
	}
	table, err := st.LoadPerformance(ctx)
	if err != nil {
		return Report{}, err
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	return Report{
		Overview:  overview(sessions, table),
		Sessions:  sessions,
		ByType:    accuracyByType(answers),
		Due:       sched.DueForReview(table, now),
		Difficult: sched.DifficultWords(table, cfg.DifficultLimit),
	}, nil
}

func overview(sessions []model.SessionSummary, table model.PerformanceTable) Overview {
	o := Overview{WordsLearned: len(table), Sessions: len(sessions)}
	for _, rec := range table {
		o.TotalPractices += len(rec.History)
	}
	if len(sessions) > 0 {
		sum := 0
		for _, s := range sessions {
			sum += Percentage(s.Score, s.Total)
		}
		o.AvgScore = Percentage(sum, len(sessions)*100)
	}
	return o
}

func accuracyByType(answers map[string][]model.AnswerRecord) []TypeAccuracy {
	byType := map[model.QuestionType]*TypeAccuracy{}
	for _, list := range answers {
		for _, a := range list {
			acc, ok := byType[a.Type]
			if !ok {
				acc = &TypeAccuracy{Type: a.Type}
				byType[a.Type] = acc
			}
			acc.Total++
			if a.Correct {
				acc.Correct++
			}
		}
	}
	out := make([]TypeAccuracy, 0, len(byType))
	for _, acc := range byType {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

func sessionIDs(sessions []model.SessionSummary) []string {
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}
