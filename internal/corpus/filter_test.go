package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

func filterPool() []model.VocabularyItem {
	return []model.VocabularyItem{
		{Chinese: "貓", Jyutping: "maau1"},
		{Chinese: "狗", Jyutping: "gau2"},
		{Chinese: "牛", Jyutping: "ngau4"},
		{Chinese: "兔仔", Jyutping: "tou3 zai2"},
		{Chinese: "鴨", Jyutping: "aap3"},
		{Chinese: "熊", Jyutping: "hung4"},
	}
}

func keptChinese(section model.SectionConfig) []string {
	var out []string
	for _, item := range Filter(filterPool(), FilterForFocus(section)) {
		out = append(out, item.Chinese)
	}
	return out
}

func TestFilterForFocus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section model.SectionConfig
		want    []string
	}{
		{name: "initials", section: model.SectionConfig{Focus: FocusInitialsBasic, Initials: []string{"m", "t"}}, want: []string{"貓", "兔仔"}},
		{name: "advanced initials", section: model.SectionConfig{Focus: FocusInitialsAdvanced, Initials: []string{"ng", "h"}}, want: []string{"牛", "熊"}},
		{name: "tones use first digit", section: model.SectionConfig{Focus: FocusTones, Tones: []int{3, 4}}, want: []string{"牛", "兔仔", "鴨", "熊"}},
		{name: "vowels", section: model.SectionConfig{Focus: FocusVowels, Vowels: []string{"aa"}}, want: []string{"貓", "鴨"}},
		{name: "endings", section: model.SectionConfig{Focus: FocusEndings, Endings: []string{"ng", "p"}}, want: []string{"鴨", "熊"}},
		{name: "complex", section: model.SectionConfig{Focus: FocusComplex}, want: []string{"兔仔"}},
		{name: "mixed keeps all", section: model.SectionConfig{Focus: FocusMixed}, want: []string{"貓", "狗", "牛", "兔仔", "鴨", "熊"}},
		{name: "missing list keeps all", section: model.SectionConfig{Focus: FocusEndings}, want: []string{"貓", "狗", "牛", "兔仔", "鴨", "熊"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, keptChinese(tc.section))
		})
	}
}
