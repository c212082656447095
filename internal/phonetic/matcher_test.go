package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/jyutquiz/internal/corpus"
	"github.com/verte-zerg/jyutquiz/internal/model"
)

func testMatcher() *Matcher {
	return NewMatcher([]model.VocabularyItem{
		{Chinese: "紅色", Jyutping: "hung4 sik1"},
		{Chinese: "白色", Jyutping: "baak6 sik1"},
		{Chinese: "行", Jyutping: "hang4"},
		{Chinese: "行", Jyutping: "haang4"},
		{Chinese: "唔該", Jyutping: "m4 goi1 sai3"},
	})
}

func TestMatchTiers(t *testing.T) {
	t.Parallel()

	m := testMatcher()
	hai := model.VocabularyItem{Chinese: "係", Jyutping: "hai6", English: "Yes / Is"}
	thanks := model.VocabularyItem{Chinese: "多謝", Jyutping: "do1 ze6", English: "Thank you"}
	six := model.VocabularyItem{Chinese: "六", Jyutping: "luk6", English: "Six"}
	bear := model.VocabularyItem{Chinese: "熊", Jyutping: "hung4", English: "Bear"}
	cat := model.VocabularyItem{Chinese: "貓", Jyutping: "maau1", English: "Cat"}
	time := model.VocabularyItem{Chinese: "時候", Jyutping: "si4 hau6", English: "Time"}

	tests := []struct {
		name       string
		recognized string
		item       model.VocabularyItem
		want       Tier
	}{
		{name: "exact chinese", recognized: "多謝", item: thanks, want: TierChinese},
		{name: "chinese with punctuation", recognized: "多謝！", item: thanks, want: TierChinese},
		{name: "chinese inside sentence", recognized: "我話多謝你", item: thanks, want: TierChinese},
		{name: "jyutping with tone", recognized: "hai6", item: hai, want: TierJyutping},
		{name: "jyutping upper case", recognized: " HAI6 ", item: hai, want: TierJyutping},
		{name: "jyutping without tones", recognized: "do ze", item: thanks, want: TierJyutping},
		{name: "syllables run together", recognized: "doze6", item: thanks, want: TierSyllables},
		{name: "english sound-alike", recognized: "six", item: six, want: TierSoundAlike},
		{name: "sound-alike per word", recognized: "see hau", item: time, want: TierSoundAlike},
		{name: "simplified homophone", recognized: "红", item: bear, want: TierFuzzy},
		{name: "english meaning", recognized: "Cat", item: cat, want: TierEnglish},
		{name: "english inside phrase", recognized: "a cat please", item: cat, want: TierEnglish},
		{name: "wrong word", recognized: "狗", item: cat, want: NoMatch},
		{name: "empty", recognized: "", item: cat, want: NoMatch},
		{name: "blank", recognized: "   ", item: cat, want: NoMatch},
		{name: "punctuation only", recognized: "，。", item: cat, want: NoMatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, m.Match(tc.recognized, tc.item), "got tier %s", m.Match(tc.recognized, tc.item))
			assert.Equal(t, tc.want != NoMatch, m.Matches(tc.recognized, tc.item))
		})
	}
}

func TestCharacterMap(t *testing.T) {
	t.Parallel()

	m := testMatcher()
	assert.Equal(t, []string{"hung", "sik"}, m.ToSyllables("紅色"))
	assert.Equal(t, []string{"hang"}, m.ToSyllables("行"))
	assert.Equal(t, []string{"該"}, m.ToSyllables("該"))
	assert.Equal(t, []string{"hung", "baak"}, m.ToSyllables("红，白"))
	assert.Equal(t, []string{}, m.ToSyllables(""))
}

func TestFuzzyThreshold(t *testing.T) {
	t.Parallel()

	m := testMatcher()
	mixed := model.VocabularyItem{Chinese: "白紅", Jyutping: "baak6 hung4"}
	assert.Equal(t, TierFuzzy, m.Match("白红", mixed))

	red := model.VocabularyItem{Chinese: "紅色", Jyutping: "hung4 sik1", English: "Red"}
	assert.Equal(t, NoMatch, m.Match("红白", red))
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Similarity(nil, nil))
	assert.Equal(t, 1.0, Similarity([]string{"a", "b"}, []string{"a", "b"}))
	assert.Equal(t, 0.5, Similarity([]string{"a"}, []string{"a", "b"}))
	assert.Equal(t, 0.0, Similarity([]string{"b", "a"}, []string{"a", "b"}))
}

func TestStripTones(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "m goi", StripTones(" M4 Goi1 "))
	assert.Equal(t, "", StripTones("123"))
}

func TestCorpusItemsMatchThemselves(t *testing.T) {
	t.Parallel()

	c, err := corpus.Default()
	require.NoError(t, err)
	items := c.All()
	m := NewMatcher(items)
	for _, item := range items {
		assert.True(t, m.Matches(item.Chinese, item), "%s should match itself", item.Chinese)
		assert.True(t, m.Matches(item.Jyutping, item), "%s jyutping should match", item.Chinese)
		assert.False(t, m.Matches("", item))
	}
}
