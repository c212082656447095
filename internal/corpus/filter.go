package corpus

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

// Focus values for jyutping practice sections.
const (
	FocusInitialsBasic    = "initials_basic"
	FocusInitialsAdvanced = "initials_advanced"
	FocusTones            = "tones"
	FocusVowels           = "vowels"
	FocusEndings          = "endings"
	FocusComplex          = "complex"
	FocusMixed            = "mixed"
)

// BasicCategories feed every jyutping focus section.
var BasicCategories = []string{
	"manners", "numbers", "animals", "colors", "foods",
	"weather", "clothing", "body", "family",
}

var toneDigit = regexp.MustCompile(`[1-6]`)

// FilterFunc returns true when an item should be kept.
type FilterFunc func(model.VocabularyItem) bool

// FilterForFocus returns the item filter of a focus section.
func FilterForFocus(section model.SectionConfig) FilterFunc {
	switch section.Focus {
	case FocusInitialsBasic, FocusInitialsAdvanced:
		if section.Initials == nil {
			return keepAll
		}
		return func(item model.VocabularyItem) bool {
			first := firstSyllable(item.Jyutping)
			return anyOf(section.Initials, func(initial string) bool { return strings.HasPrefix(first, initial) })
		}
	case FocusTones:
		if section.Tones == nil {
			return keepAll
		}
		return func(item model.VocabularyItem) bool {
			digit := toneDigit.FindString(item.Jyutping)
			if digit == "" {
				return false
			}
			tone, _ := strconv.Atoi(digit)
			for _, t := range section.Tones {
				if t == tone {
					return true
				}
			}
			return false
		}
	case FocusVowels:
		if section.Vowels == nil {
			return keepAll
		}
		return func(item model.VocabularyItem) bool {
			first := firstSyllable(item.Jyutping)
			return anyOf(section.Vowels, func(vowel string) bool { return strings.Contains(first, vowel) })
		}
	case FocusEndings:
		if section.Endings == nil {
			return keepAll
		}
		return func(item model.VocabularyItem) bool {
			first := firstSyllable(item.Jyutping)
			return anyOf(section.Endings, func(ending string) bool { return strings.HasSuffix(first, ending) })
		}
	case FocusComplex:
		return func(item model.VocabularyItem) bool {
			return strings.Contains(item.Jyutping, " ")
		}
	default:
		return keepAll
	}
}

// Filter returns the items that keep accepts.
func Filter(items []model.VocabularyItem, keep FilterFunc) []model.VocabularyItem {
	out := make([]model.VocabularyItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func keepAll(model.VocabularyItem) bool { return true }

// firstSyllable returns the first space-separated syllable without digits.
func firstSyllable(jyutping string) string {
	first, _, _ := strings.Cut(jyutping, " ")
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, first)
}

func anyOf(values []string, match func(string) bool) bool {
	for _, v := range values {
		if match(v) {
			return true
		}
	}
	return false
}
