package generator

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

func newTestGenerator(speech bool) *Generator {
	return NewWithRand(rand.New(rand.NewSource(7)), speech)
}

func animalPool() []model.VocabularyItem {
	return []model.VocabularyItem{
		{Chinese: "貓", Jyutping: "maau1", English: "Cat", Icon: "🐱", Category: "animals"},
		{Chinese: "狗", Jyutping: "gau2", English: "Dog", Icon: "🐶", Category: "animals"},
		{Chinese: "魚", Jyutping: "jyu2", English: "Fish", Icon: "🐟", Category: "animals"},
		{Chinese: "馬", Jyutping: "maa5", English: "Horse", Icon: "🐴", Category: "animals"},
		{Chinese: "兔仔", Jyutping: "tou3 zai2", English: "Rabbit", Icon: "🐰", Category: "animals"},
		{Chinese: "雀仔", Jyutping: "zoek3 zai2", English: "Bird", Icon: "🐦", Category: "animals"},
	}
}

func countOf(values []string, want string) int {
	n := 0
	for _, v := range values {
		if v == want {
			n++
		}
	}
	return n
}

func assertDistinct(t *testing.T, values []string) {
	t.Helper()
	seen := map[string]struct{}{}
	for _, v := range values {
		_, dup := seen[v]
		require.False(t, dup, "duplicate value %q in %v", v, values)
		seen[v] = struct{}{}
	}
}

func TestSelectPictureCat(t *testing.T) {
	t.Parallel()

	pool := animalPool()
	q := newTestGenerator(false).SelectPicture(pool[0], pool)

	assert.Equal(t, model.SelectPicture, q.Type)
	require.Len(t, q.Options, 4)
	assert.Equal(t, 1, countOf(q.Options, "🐱"))
	assert.Equal(t, "🐱", q.Answer)
	assert.Equal(t, "貓", q.Chinese)
	assertDistinct(t, q.Options)
}

func TestDistractors(t *testing.T) {
	t.Parallel()

	pool := animalPool()
	cat := pool[0]

	t.Run("distinct and never the target", func(t *testing.T) {
		t.Parallel()
		for _, field := range []model.Field{model.FieldChinese, model.FieldEnglish, model.FieldJyutping, model.FieldIcon} {
			got := newTestGenerator(false).Distractors(cat, field, pool, 3)
			require.Len(t, got, 3, "field %s", field)
			assertDistinct(t, got)
			assert.NotContains(t, got, cat.Value(field))
		}
	})

	t.Run("same length first", func(t *testing.T) {
		t.Parallel()
		got := newTestGenerator(false).Distractors(cat, model.FieldChinese, pool, 3)
		assert.ElementsMatch(t, []string{"狗", "魚", "馬"}, got)
	})

	t.Run("skips same word from another category", func(t *testing.T) {
		t.Parallel()
		dup := append(animalPool(), model.VocabularyItem{Chinese: "貓", English: "Kitty", Icon: "😺"})
		got := newTestGenerator(false).Distractors(cat, model.FieldEnglish, dup, 10)
		assert.NotContains(t, got, "Kitty")
	})

	t.Run("duplicate values collapse", func(t *testing.T) {
		t.Parallel()
		twins := []model.VocabularyItem{
			cat,
			{Chinese: "狗", Icon: "🐶"},
			{Chinese: "狗仔", Icon: "🐶"},
		}
		got := newTestGenerator(false).Distractors(cat, model.FieldIcon, twins, 3)
		assert.Equal(t, 1, countOf(got, "🐶"))
		assert.Len(t, got, 3)
	})

	t.Run("pads from generic table by length", func(t *testing.T) {
		t.Parallel()
		got := newTestGenerator(false).Distractors(cat, model.FieldEnglish, nil, 3)
		assert.Equal(t, []string{"Yes", "No", "Maybe"}, got)
	})

	t.Run("generic table skips the target", func(t *testing.T) {
		t.Parallel()
		target := model.VocabularyItem{Chinese: "係", Jyutping: "hai6"}
		got := newTestGenerator(false).Distractors(target, model.FieldChinese, nil, 3)
		assert.NotContains(t, got, "係")
		assert.Len(t, got, 3)
	})

	t.Run("unknown field exhausts", func(t *testing.T) {
		t.Parallel()
		got := newTestGenerator(false).Distractors(cat, model.Field("category"), nil, 3)
		assert.Equal(t, []string{"?"}, got)
	})
}

func TestFillChineseShortWord(t *testing.T) {
	t.Parallel()

	pool := animalPool()
	allowed := []string{"我有一隻___。", "呢隻係___。", "我鍾意___。"}
	g := newTestGenerator(false)
	for i := 0; i < 20; i++ {
		q := g.FillChinese(pool[0], pool)
		assert.Equal(t, model.FillChinese, q.Type)
		assert.Equal(t, "📝", q.Picture)
		assert.Equal(t, "貓", q.Answer)
		assert.Equal(t, "maau1", q.Jyutping)
		assert.Contains(t, allowed, q.Chinese)
		require.Len(t, q.Options, 4)
		assert.Equal(t, 1, countOf(q.Options, "貓"))
	}
}

func TestFillChineseTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		item    model.VocabularyItem
		allowed []string
	}{
		{
			name:    "unknown category uses defaults",
			item:    model.VocabularyItem{Chinese: "波", Category: "toys"},
			allowed: []string{"___係乜嘢？", "你識唔識___？"},
		},
		{
			name:    "default template excluded by overlap",
			item:    model.VocabularyItem{Chinese: "識", Category: "toys"},
			allowed: []string{"___係乜嘢？"},
		},
		{
			name:    "every template rejected",
			item:    model.VocabularyItem{Chinese: "我", Category: "family"},
			allowed: []string{"___係咩？"},
		},
		{
			name:    "farewell kept out of greetings",
			item:    model.VocabularyItem{Chinese: "拜拜", Category: "manners"},
			allowed: []string{"___，聽日見！"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := newTestGenerator(false)
			for i := 0; i < 10; i++ {
				q := g.FillChinese(tc.item, animalPool())
				assert.Contains(t, tc.allowed, q.Chinese)
				assert.Equal(t, tc.item.Chinese, q.Answer)
			}
		})
	}
}

func TestFillChinesePhrase(t *testing.T) {
	t.Parallel()

	pool := animalPool()

	t.Run("blanks one token", func(t *testing.T) {
		t.Parallel()
		item := model.VocabularyItem{Chinese: "我鍾意食雪糕", Jyutping: "ngo5 zung1 ji3 sik6 syut3 gou1", Category: "foods"}
		tokens := []string{"我", "鍾意", "食", "雪糕"}
		q := newTestGenerator(false).FillChinese(item, pool)
		assert.Contains(t, tokens, q.Answer)
		assert.Equal(t, 1, strings.Count(q.Chinese, Blank))
		assert.Equal(t, item.Chinese, strings.Replace(q.Chinese, Blank, q.Answer, 1))
		assert.Equal(t, 1, countOf(q.Options, q.Answer))
		assertDistinct(t, q.Options)
	})

	t.Run("single token falls back to prefix blank", func(t *testing.T) {
		t.Parallel()
		item := model.VocabularyItem{Chinese: "好高興認識你", Jyutping: "hou2 gou1 hing3 jing6 sik1 nei5"}
		q := newTestGenerator(false).FillChinese(item, pool)
		assert.Equal(t, "___係高興認識你", q.Chinese)
		assert.Equal(t, "好高興認識你", q.Answer)
	})
}

func TestWordOrder(t *testing.T) {
	t.Parallel()

	item := model.VocabularyItem{Chinese: "我鍾意食雪糕。", English: "I like eating ice cream", Jyutping: "ngo5 zung1 ji3 sik6 syut3 gou1"}
	for seed := int64(0); seed < 25; seed++ {
		g := NewWithRand(rand.New(rand.NewSource(seed)), false)
		q := g.WordOrder(item, nil)
		require.Equal(t, model.WordOrder, q.Type)
		assert.Equal(t, []string{"我", "鍾意", "食", "雪糕"}, q.AnswerTokens)
		assert.NotEqual(t, q.AnswerTokens, q.Scrambled)
		assert.Equal(t, "🔀", q.Picture)

		sortedA := append([]string(nil), q.AnswerTokens...)
		sortedS := append([]string(nil), q.Scrambled...)
		sort.Strings(sortedA)
		sort.Strings(sortedS)
		assert.Equal(t, sortedA, sortedS)
	}
}

func TestWordOrderShortSentence(t *testing.T) {
	t.Parallel()

	item := model.VocabularyItem{Chinese: "你好！", Category: "introduction"}
	q := newTestGenerator(false).WordOrder(item, animalPool())
	assert.Equal(t, model.FillChinese, q.Type)
	assert.Empty(t, q.Scrambled)
}

func TestSpeaking(t *testing.T) {
	t.Parallel()

	pool := animalPool()

	q := newTestGenerator(true).Speaking(pool[1], pool)
	assert.Equal(t, model.Speaking, q.Type)
	require.NotNil(t, q.Item)
	assert.Equal(t, "狗", q.Item.Chinese)
	assert.Empty(t, q.Options)

	fallback := newTestGenerator(false).Speaking(pool[1], pool)
	assert.Equal(t, model.AudioIdentify, fallback.Type)
	assert.Equal(t, "狗", fallback.AudioText)
	assert.Len(t, fallback.Options, 4)
}

func TestDisplayFields(t *testing.T) {
	t.Parallel()

	pool := animalPool()
	bare := model.VocabularyItem{Chinese: "蛇", Jyutping: "se4", English: "Snake"}
	g := newTestGenerator(true)

	assert.Equal(t, "🗣️", g.SelectJyutping(bare, pool).Picture)
	assert.Equal(t, "❓", g.SelectPicture(bare, pool).Answer)
	assert.Equal(t, "🔄", g.MatchTranslation(pool[0], pool).Picture)
	assert.Equal(t, "🔊", g.AudioIdentify(bare, pool).Picture)
	assert.Equal(t, "🎤", g.Speaking(bare, pool).Picture)

	picture := g.SelectPicture(bare, pool)
	assert.Equal(t, 1, countOf(picture.Options, "❓"))
}

func TestBuild(t *testing.T) {
	t.Parallel()

	pool := animalPool()
	g := newTestGenerator(true)
	types := []model.QuestionType{
		model.FillChinese, model.SelectJyutping, model.SelectPicture, model.WordOrder,
		model.MatchTranslation, model.AudioIdentify, model.Speaking,
	}
	for _, qt := range types {
		q, ok := g.Build(qt, pool[0], pool)
		require.True(t, ok, "type %s", qt)
		assert.Equal(t, "貓", q.Word, "type %s", qt)
		if qt == model.WordOrder {
			// 貓 is a single token.
			assert.Equal(t, model.FillChinese, q.Type)
			continue
		}
		assert.Equal(t, qt, q.Type)
		if qt != model.Speaking {
			assert.Equal(t, 1, countOf(q.Options, q.Answer), "type %s", qt)
		}
	}

	_, ok := g.Build("drawing", pool[0], pool)
	assert.False(t, ok)
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	pool := animalPool()
	a := NewWithRand(rand.New(rand.NewSource(42)), false)
	b := NewWithRand(rand.New(rand.NewSource(42)), false)
	for _, item := range pool {
		assert.Equal(t, a.FillChinese(item, pool), b.FillChinese(item, pool))
		assert.Equal(t, a.SelectJyutping(item, pool), b.SelectJyutping(item, pool))
	}
}
