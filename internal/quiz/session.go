// Package quiz holds the state of one running quiz section.
package quiz

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/phonetic"
	"github.com/verte-zerg/jyutquiz/internal/speech"
	"github.com/verte-zerg/jyutquiz/internal/srs"
)

var (
	// ErrSessionFinished is returned when every question has been answered.
	ErrSessionFinished = errors.New("quiz session finished")
	// ErrAlreadyAnswered is returned when the current question was graded already.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// Option customizes a Session.
type Option func(*Session)

// WithScheduler sets the scheduler fed by every graded answer.
func WithScheduler(s *srs.Scheduler) Option {
	return func(sess *Session) { sess.scheduler = s }
}

// WithMatcher sets the matcher used for speaking questions.
func WithMatcher(m speech.Matcher) Option {
	return func(sess *Session) { sess.matcher = m }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(sess *Session) { sess.now = now }
}

// Session walks a fixed question list. It is not safe for concurrent use.
type Session struct {
	id        string
	testID    string
	sectionID string
	startedAt time.Time

	questions []model.Question
	index     int
	answered  bool
	answers   []model.AnswerRecord

	scheduler *srs.Scheduler
	matcher   speech.Matcher
	now       func() time.Time
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// New starts a session over questions. An empty id gets a generated one.
func New(id, testID, sectionID string, questions []model.Question, opts ...Option) *Session {
	if id == "" {
		id = NewID()
	}
	s := &Session{
		id:        id,
		testID:    testID,
		sectionID: sectionID,
		questions: append([]model.Question(nil), questions...),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scheduler == nil {
		s.scheduler = srs.NewScheduler(nil)
	}
	if s.matcher == nil {
		s.matcher = phonetic.NewMatcher(nil)
	}
	s.startedAt = s.now()
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Answered reports whether the current question has been graded.
func (s *Session) Answered() bool { return s.answered }

// Finished reports whether no questions remain.
func (s *Session) Finished() bool {
	return s.index >= len(s.questions)
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (model.Question, bool) {
	if s.Finished() {
		return model.Question{}, false
	}
	return s.questions[s.index], true
}

// Next advances past the current question.
func (s *Session) Next() bool {
	if s.Finished() {
		return false
	}
	s.index++
	s.answered = false
	return !s.Finished()
}

// Answer grades a choice for option and fill questions.
func (s *Session) Answer(table model.PerformanceTable, choice string) (model.AnswerRecord, model.PerformanceTable, error) {
	q, err := s.pending()
	if err != nil {
		return model.AnswerRecord{}, table, err
	}
	return s.record(table, q, choice, choice == q.AnswerText())
}

// AnswerTokens grades an ordered token arrangement.
func (s *Session) AnswerTokens(table model.PerformanceTable, tokens []string) (model.AnswerRecord, model.PerformanceTable, error) {
	q, err := s.pending()
	if err != nil {
		return model.AnswerRecord{}, table, err
	}
	joined := strings.Join(tokens, "")
	return s.record(table, q, joined, joined == q.AnswerText())
}

// AnswerSpeech grades ranked transcript alternatives. The first alternative
// that matches is recorded; otherwise the top one, or NoSpeech when empty.
func (s *Session) AnswerSpeech(table model.PerformanceTable, alternatives []string) (model.AnswerRecord, model.PerformanceTable, error) {
	q, err := s.pending()
	if err != nil {
		return model.AnswerRecord{}, table, err
	}
	transcript, correct := speech.Evaluate(s.matcher, speakingItem(q), speech.Result{Alternatives: alternatives})
	if transcript == "" {
		transcript = speech.NoSpeech
	}
	return s.record(table, q, transcript, correct)
}

// AnswerRecognition grades a recognizer result. Failures count as incorrect.
func (s *Session) AnswerRecognition(table model.PerformanceTable, r speech.Result) (model.AnswerRecord, model.PerformanceTable, error) {
	if r.Failed() {
		return s.AnswerSpeech(table, nil)
	}
	return s.AnswerSpeech(table, r.Alternatives)
}

// Answers returns the graded answers so far.
func (s *Session) Answers() []model.AnswerRecord {
	return append([]model.AnswerRecord(nil), s.answers...)
}

// Summary reports the session score.
func (s *Session) Summary() model.SessionSummary {
	score := 0
	ended := s.startedAt
	for _, a := range s.answers {
		if a.Correct {
			score++
		}
		if a.At.After(ended) {
			ended = a.At
		}
	}
	return model.SessionSummary{
		ID:        s.id,
		TestID:    s.testID,
		SectionID: s.sectionID,
		StartedAt: s.startedAt,
		EndedAt:   ended,
		Score:     score,
		Total:     len(s.questions),
	}
}

func (s *Session) pending() (model.Question, error) {
	q, ok := s.Current()
	if !ok {
		return model.Question{}, ErrSessionFinished
	}
	if s.answered {
		return model.Question{}, ErrAlreadyAnswered
	}
	return q, nil
}

func (s *Session) record(table model.PerformanceTable, q model.Question, answer string, correct bool) (model.AnswerRecord, model.PerformanceTable, error) {
	now := s.now()
	rec := model.AnswerRecord{
		Number:        s.index + 1,
		Type:          q.Type,
		Picture:       q.Picture,
		Prompt:        Prompt(q),
		CorrectAnswer: q.AnswerText(),
		UserAnswer:    answer,
		Correct:       correct,
		At:            now,
	}
	s.answers = append(s.answers, rec)
	s.answered = true
	return rec, s.scheduler.Grade(table, q.Key(), correct, now), nil
}

// Prompt returns the text shown for q.
func Prompt(q model.Question) string {
	switch q.Type {
	case model.AudioIdentify:
		return q.Jyutping
	case model.WordOrder:
		return q.English
	default:
		if q.Chinese != "" {
			return q.Chinese
		}
		return q.English
	}
}

func speakingItem(q model.Question) model.VocabularyItem {
	if q.Item != nil {
		return *q.Item
	}
	return model.VocabularyItem{Chinese: q.Answer, Jyutping: q.Jyutping, English: q.English}
}
