// Package phonetic grades recognized speech against an expected item.
package phonetic

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/segment"
)

// DefaultThreshold is the syllable similarity a fuzzy match needs.
const DefaultThreshold = 0.8

// Tier identifies which comparison accepted a transcript.
type Tier int

const (
	NoMatch Tier = iota
	TierChinese
	TierJyutping
	TierSyllables
	TierSoundAlike
	TierFuzzy
	TierEnglish
)

func (t Tier) String() string {
	switch t {
	case TierChinese:
		return "chinese"
	case TierJyutping:
		return "jyutping"
	case TierSyllables:
		return "syllables"
	case TierSoundAlike:
		return "sound-alike"
	case TierFuzzy:
		return "fuzzy"
	case TierEnglish:
		return "english"
	default:
		return "none"
	}
}

// Matcher compares transcripts with the pronunciation of corpus items.
type Matcher struct {
	charSyllables map[rune]string
	threshold     float64
}

// NewMatcher builds the character to syllable map from items. Only items
// whose character count equals their syllable count contribute; the first
// occurrence of a character wins.
func NewMatcher(items []model.VocabularyItem) *Matcher {
	m := &Matcher{charSyllables: make(map[rune]string), threshold: DefaultThreshold}
	for _, item := range items {
		chars := []rune(segment.StripSeparators(item.Chinese))
		syllables := strings.Fields(item.Jyutping)
		if len(chars) != len(syllables) {
			continue
		}
		for i, ch := range chars {
			if _, ok := m.charSyllables[ch]; !ok {
				m.charSyllables[ch] = StripTones(syllables[i])
			}
		}
	}
	for ch, syl := range homophones {
		if _, ok := m.charSyllables[ch]; !ok {
			m.charSyllables[ch] = syl
		}
	}
	return m
}

// Matches reports whether recognized is an acceptable reading of item.
func (m *Matcher) Matches(recognized string, item model.VocabularyItem) bool {
	return m.Match(recognized, item) != NoMatch
}

// Match returns the first tier that accepts recognized, or NoMatch.
func (m *Matcher) Match(recognized string, item model.VocabularyItem) Tier {
	if strings.TrimSpace(recognized) == "" {
		return NoMatch
	}
	r := segment.StripSeparators(recognized)
	chinese := segment.StripSeparators(item.Chinese)
	jyutping := strings.ToLower(strings.TrimSpace(item.Jyutping))
	toneless := StripTones(jyutping)
	english := strings.ToLower(strings.TrimSpace(item.English))
	rLower := strings.ToLower(strings.TrimSpace(recognized))

	if r != "" && chinese != "" && (strings.Contains(r, chinese) || strings.Contains(chinese, r)) {
		return TierChinese
	}
	if rLower == jyutping || rLower == toneless {
		return TierJyutping
	}
	rSyllables := removeSpaces(StripTones(rLower))
	if rSyllables != "" && rSyllables == removeSpaces(toneless) {
		return TierSyllables
	}
	if toneless != "" && soundsAlike(rLower, toneless) {
		return TierSoundAlike
	}
	if r != "" && toneless != "" {
		if Similarity(m.ToSyllables(recognized), strings.Fields(toneless)) >= m.threshold {
			return TierFuzzy
		}
	}
	if english != "" && (strings.Contains(rLower, english) || strings.Contains(english, rLower)) {
		return TierEnglish
	}
	return NoMatch
}

// ToSyllables converts text to toneless syllables. Unknown characters are kept.
func (m *Matcher) ToSyllables(text string) []string {
	chars := segment.StripSeparators(text)
	out := make([]string, 0, len(chars))
	for _, ch := range chars {
		if syl, ok := m.charSyllables[ch]; ok {
			out = append(out, syl)
		} else {
			out = append(out, string(ch))
		}
	}
	return out
}

// Similarity returns the share of aligned positions where a and b agree,
// relative to the longer sequence.
func Similarity(a, b []string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(maxLen)
}

// StripTones removes tone digits and lowercases jyutping.
func StripTones(jyutping string) string {
	return strings.TrimSpace(strings.ToLower(strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, jyutping)))
}

func soundsAlike(english, toneless string) bool {
	e := removeSpaces(english)
	j := removeSpaces(toneless)
	if e == j {
		return true
	}
	if mapped, ok := englishSoundAlikes[e]; ok && mapped == j {
		return true
	}
	words := strings.Fields(english)
	syllables := strings.Fields(toneless)
	if len(words) != len(syllables) {
		return false
	}
	for i, word := range words {
		if englishSoundAlikes[word] != syllables[i] && word != syllables[i] {
			return false
		}
	}
	return true
}

func removeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
