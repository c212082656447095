package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/phonetic"
)

var catItem = model.VocabularyItem{Chinese: "貓", Jyutping: "maau1", English: "Cat", Icon: "🐱", Category: "animals"}

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

func sampleQuestions() []model.Question {
	item := catItem
	return []model.Question{
		{Type: model.SelectPicture, Chinese: "貓", English: "Cat", Answer: "🐱", Options: []string{"🐶", "🐱", "🐟", "🐴"}},
		{Type: model.WordOrder, English: "I like cats", AnswerTokens: []string{"我", "鍾意", "貓"}, Scrambled: []string{"貓", "我", "鍾意"}},
		{Type: model.Speaking, Chinese: "貓", Jyutping: "maau1", English: "Cat", Answer: "貓", Item: &item},
	}
}

func TestSessionGradesEveryType(t *testing.T) {
	t.Parallel()

	sess := New("", "test1", "1.1", sampleQuestions(),
		WithClock(fixedClock()),
		WithMatcher(phonetic.NewMatcher([]model.VocabularyItem{catItem})),
	)
	require.NotEmpty(t, sess.ID())
	require.Equal(t, 3, sess.Len())

	table := model.PerformanceTable{}

	rec, table, err := sess.Answer(table, "🐱")
	require.NoError(t, err)
	assert.True(t, rec.Correct)
	assert.Equal(t, 1, rec.Number)
	assert.Equal(t, "貓", rec.Prompt)
	require.Contains(t, table, "🐱")
	assert.Equal(t, 1, table["🐱"].Repetitions)
	require.True(t, sess.Next())

	rec, table, err = sess.AnswerTokens(table, []string{"貓", "我", "鍾意"})
	require.NoError(t, err)
	assert.False(t, rec.Correct)
	assert.Equal(t, "我鍾意貓", rec.CorrectAnswer)
	assert.Equal(t, 0, table["我鍾意貓"].Repetitions)
	require.True(t, sess.Next())

	rec, table, err = sess.AnswerSpeech(table, []string{"狗", "maau1"})
	require.NoError(t, err)
	assert.True(t, rec.Correct)
	assert.Equal(t, "maau1", rec.UserAnswer)
	assert.Contains(t, table, "貓")
	assert.False(t, sess.Next())
	assert.True(t, sess.Finished())

	_, _, err = sess.Answer(table, "🐱")
	assert.ErrorIs(t, err, ErrSessionFinished)

	summary := sess.Summary()
	assert.Equal(t, "test1", summary.TestID)
	assert.Equal(t, "1.1", summary.SectionID)
	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 3, summary.Total)
	assert.True(t, summary.EndedAt.After(summary.StartedAt))
	assert.Len(t, sess.Answers(), 3)
}

func TestSessionRejectsDoubleAnswer(t *testing.T) {
	t.Parallel()

	sess := New("s1", "test1", "1.1", sampleQuestions())
	table := model.PerformanceTable{}

	_, table, err := sess.Answer(table, "🐶")
	require.NoError(t, err)
	_, after, err := sess.Answer(table, "🐱")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Equal(t, table, after)
	assert.Len(t, sess.Answers(), 1)
}

func TestSessionDoesNotMutateTable(t *testing.T) {
	t.Parallel()

	sess := New("s1", "test1", "1.1", sampleQuestions())
	table := model.PerformanceTable{}
	_, updated, err := sess.Answer(table, "🐱")
	require.NoError(t, err)
	assert.Empty(t, table)
	assert.Len(t, updated, 1)
}

func TestSessionSpeechFailure(t *testing.T) {
	t.Parallel()

	questions := sampleQuestions()[2:]
	sess := New("s1", "test1", "1.1", questions)

	rec, _, err := sess.AnswerSpeech(model.PerformanceTable{}, nil)
	require.NoError(t, err)
	assert.False(t, rec.Correct)
	assert.Equal(t, "(no speech)", rec.UserAnswer)
}

func TestSessionSpeechRecordsTopAlternative(t *testing.T) {
	t.Parallel()

	questions := sampleQuestions()[2:]
	sess := New("s1", "test1", "1.1", questions)

	rec, _, err := sess.AnswerSpeech(model.PerformanceTable{}, []string{"gau2", "jyu2"})
	require.NoError(t, err)
	assert.False(t, rec.Correct)
	assert.Equal(t, "gau2", rec.UserAnswer)
}

func TestEmptySession(t *testing.T) {
	t.Parallel()

	sess := New("s1", "test1", "1.1", nil)
	assert.True(t, sess.Finished())
	_, ok := sess.Current()
	assert.False(t, ok)
	assert.False(t, sess.Next())
	assert.Equal(t, 0, sess.Summary().Total)
}

func TestSessionKeysRecordsBySourceWord(t *testing.T) {
	t.Parallel()

	questions := []model.Question{
		{Type: model.SelectPicture, Word: "貓", Chinese: "貓", Answer: "🐱", Options: []string{"🐶", "🐱"}},
		{Type: model.SelectJyutping, Word: "貓", Chinese: "貓", Answer: "maau1", Options: []string{"gau2", "maau1"}},
		{Type: model.MatchTranslation, Word: "貓", Chinese: "貓", Answer: "Cat", Options: []string{"Dog", "Cat"}},
	}
	sess := New("s1", "test1", "1.1", questions, WithClock(fixedClock()))

	table := model.PerformanceTable{}
	var err error
	for _, choice := range []string{"🐱", "maau1", "Dog"} {
		_, table, err = sess.Answer(table, choice)
		require.NoError(t, err)
		sess.Next()
	}

	require.Len(t, table, 1)
	rec := table["貓"]
	assert.Len(t, rec.History, 3)
	assert.Equal(t, 0, rec.Repetitions)
}
