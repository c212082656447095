package generator

import (
	"sort"
	"unicode/utf8"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

var genericDistractors = map[model.Field][]string{
	model.FieldChinese:  {"係", "唔係", "有", "冇", "好嘅", "可以", "得"},
	model.FieldEnglish:  {"Yes", "No", "Maybe", "Unknown"},
	model.FieldJyutping: {"hai6", "m4 hai6", "jau5", "mou5"},
	model.FieldIcon:     {"❓", "❔", "🔶", "🔷"},
}

var genericFallback = []string{"?"}

// Distractors picks up to count wrong values of field for target. Values with
// the same rune length as the target come first; the generic table pads the
// result when the pool runs short.
func (g *Generator) Distractors(target model.VocabularyItem, field model.Field, pool []model.VocabularyItem, count int) []string {
	targetValue := target.Value(field)
	if field == model.FieldIcon {
		targetValue = orDefault(targetValue, unknownIcon)
	}
	targetLen := utf8.RuneCountInString(targetValue)

	var sameLen, diffLen []string
	for _, item := range pool {
		value := item.Value(field)
		if value == "" || value == targetValue || item.Chinese == target.Chinese {
			continue
		}
		if utf8.RuneCountInString(value) == targetLen {
			sameLen = append(sameLen, value)
		} else {
			diffLen = append(diffLen, value)
		}
	}
	g.Shuffle(sameLen)
	g.Shuffle(diffLen)

	chosen := make([]string, 0, count)
	seen := map[string]struct{}{}
	for _, value := range append(sameLen, diffLen...) {
		if len(chosen) >= count {
			break
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		chosen = append(chosen, value)
	}
	if len(chosen) >= count {
		return chosen
	}

	generic, ok := genericDistractors[field]
	if !ok {
		generic = genericFallback
	}
	unused := make([]string, 0, len(generic))
	for _, value := range generic {
		if _, dup := seen[value]; dup || value == targetValue {
			continue
		}
		unused = append(unused, value)
	}
	sort.SliceStable(unused, func(i, j int) bool {
		return lengthGap(unused[i], targetLen) < lengthGap(unused[j], targetLen)
	})
	for _, value := range unused {
		if len(chosen) >= count {
			break
		}
		chosen = append(chosen, value)
	}
	return chosen
}

func lengthGap(value string, targetLen int) int {
	gap := utf8.RuneCountInString(value) - targetLen
	if gap < 0 {
		return -gap
	}
	return gap
}
