// Package generator builds quiz questions from vocabulary items.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/segment"
)

// Blank marks the gap in a cloze prompt.
const Blank = "___"

const (
	fillPicture        = "📝"
	jyutpingPicture    = "🗣️"
	unknownIcon        = "❓"
	wordOrderPicture   = "🔀"
	translationPicture = "🔄"
	audioPicture       = "🔊"
	speakingPicture    = "🎤"

	optionDistractors = 3
	scrambleAttempts  = 10
)

type clozeTemplate struct {
	text    string
	exclude []string
}

// Generator produces randomized questions.
type Generator struct {
	rnd    *rand.Rand
	speech bool
}

// New returns a Generator seeded with the current time.
func New(speechAvailable bool) *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())), speechAvailable)
}

// NewWithRand returns a Generator drawing from rnd.
func NewWithRand(rnd *rand.Rand, speechAvailable bool) *Generator {
	return &Generator{rnd: rnd, speech: speechAvailable}
}

// SpeechAvailable reports whether speaking questions are produced.
func (g *Generator) SpeechAvailable() bool {
	return g.speech
}

// Intn returns a random int in [0,n).
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Build dispatches to the builder for qt. It reports false for unknown types.
func (g *Generator) Build(qt model.QuestionType, item model.VocabularyItem, pool []model.VocabularyItem) (model.Question, bool) {
	switch qt {
	case model.FillChinese:
		return g.FillChinese(item, pool), true
	case model.SelectJyutping:
		return g.SelectJyutping(item, pool), true
	case model.SelectPicture:
		return g.SelectPicture(item, pool), true
	case model.WordOrder:
		return g.WordOrder(item, pool), true
	case model.MatchTranslation:
		return g.MatchTranslation(item, pool), true
	case model.AudioIdentify:
		return g.AudioIdentify(item, pool), true
	case model.Speaking:
		return g.Speaking(item, pool), true
	default:
		return model.Question{}, false
	}
}

// FillChinese builds a cloze question for item.
func (g *Generator) FillChinese(item model.VocabularyItem, pool []model.VocabularyItem) model.Question {
	chinese := item.Chinese
	var prompt string
	if utf8.RuneCountInString(chinese) <= 3 {
		prompt = g.pickTemplate(item).text
	} else {
		tokens := segment.Segment(chinese)
		if len(tokens) >= 2 {
			blankIdx := g.rnd.Intn(len(tokens))
			answer := tokens[blankIdx]
			parts := append([]string(nil), tokens...)
			parts[blankIdx] = Blank
			target := item
			target.Chinese = answer
			return model.Question{
				Type:     model.FillChinese,
				Word:     item.Chinese,
				Picture:  fillPicture,
				Jyutping: item.Jyutping,
				Chinese:  strings.Join(parts, ""),
				Answer:   answer,
				Options:  g.options(answer, g.Distractors(target, model.FieldChinese, pool, optionDistractors)),
			}
		}
		_, size := utf8.DecodeRuneInString(chinese)
		prompt = Blank + "係" + chinese[size:]
	}
	return model.Question{
		Type:     model.FillChinese,
		Word:     item.Chinese,
		Picture:  fillPicture,
		Jyutping: item.Jyutping,
		Chinese:  prompt,
		Answer:   chinese,
		Options:  g.options(chinese, g.Distractors(item, model.FieldChinese, pool, optionDistractors)),
	}
}

func (g *Generator) pickTemplate(item model.VocabularyItem) clozeTemplate {
	templates, ok := clozeTemplates[item.Category]
	if !ok {
		templates = defaultTemplates
	}
	valid := make([]clozeTemplate, 0, len(templates))
	for _, tmpl := range templates {
		if templateFits(tmpl, item.Chinese) {
			valid = append(valid, tmpl)
		}
	}
	if len(valid) == 0 {
		return fallbackTemplate
	}
	return valid[g.rnd.Intn(len(valid))]
}

func templateFits(tmpl clozeTemplate, word string) bool {
	if strings.Contains(tmpl.text, word) {
		return false
	}
	for _, ex := range tmpl.exclude {
		if strings.Contains(word, ex) || strings.Contains(ex, word) {
			return false
		}
	}
	return true
}

// SelectJyutping asks for the romanization of item.
func (g *Generator) SelectJyutping(item model.VocabularyItem, pool []model.VocabularyItem) model.Question {
	return model.Question{
		Type:    model.SelectJyutping,
		Word:    item.Chinese,
		Picture: orDefault(item.Icon, jyutpingPicture),
		Chinese: item.Chinese,
		English: item.English,
		Answer:  item.Jyutping,
		Options: g.options(item.Jyutping, g.Distractors(item, model.FieldJyutping, pool, optionDistractors)),
	}
}

// SelectPicture asks for the icon of item.
func (g *Generator) SelectPicture(item model.VocabularyItem, pool []model.VocabularyItem) model.Question {
	answer := orDefault(item.Icon, unknownIcon)
	return model.Question{
		Type:     model.SelectPicture,
		Word:     item.Chinese,
		Chinese:  item.Chinese,
		Jyutping: item.Jyutping,
		English:  item.English,
		Answer:   answer,
		Options:  g.options(answer, g.Distractors(item, model.FieldIcon, pool, optionDistractors)),
	}
}

// WordOrder asks to reorder the tokens of a sentence. Sentences with fewer
// than three tokens become fill_chinese questions.
func (g *Generator) WordOrder(item model.VocabularyItem, pool []model.VocabularyItem) model.Question {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '？', '！', '。', '，':
			return -1
		}
		return r
	}, item.Chinese)
	tokens := segment.Segment(stripped)
	if len(tokens) < 3 {
		return g.FillChinese(item, pool)
	}

	original := strings.Join(tokens, "")
	scrambled := g.shuffled(tokens)
	for attempts := 0; strings.Join(scrambled, "") == original && attempts < scrambleAttempts; attempts++ {
		g.Shuffle(scrambled)
	}
	return model.Question{
		Type:         model.WordOrder,
		Word:         item.Chinese,
		English:      item.English,
		Jyutping:     item.Jyutping,
		Picture:      orDefault(item.Icon, wordOrderPicture),
		AnswerTokens: tokens,
		Scrambled:    scrambled,
	}
}

// MatchTranslation asks for the English meaning of item.
func (g *Generator) MatchTranslation(item model.VocabularyItem, pool []model.VocabularyItem) model.Question {
	return model.Question{
		Type:     model.MatchTranslation,
		Word:     item.Chinese,
		Chinese:  item.Chinese,
		Jyutping: item.Jyutping,
		Picture:  translationPicture,
		Answer:   item.English,
		Options:  g.options(item.English, g.Distractors(item, model.FieldEnglish, pool, optionDistractors)),
	}
}

// AudioIdentify asks which characters were spoken.
func (g *Generator) AudioIdentify(item model.VocabularyItem, pool []model.VocabularyItem) model.Question {
	return model.Question{
		Type:      model.AudioIdentify,
		Word:      item.Chinese,
		AudioText: item.Chinese,
		Jyutping:  item.Jyutping,
		Picture:   orDefault(item.Icon, audioPicture),
		Answer:    item.Chinese,
		Options:   g.options(item.Chinese, g.Distractors(item, model.FieldChinese, pool, optionDistractors)),
	}
}

// Speaking asks the learner to say item aloud. Without speech recognition it
// returns an audio_identify question instead.
func (g *Generator) Speaking(item model.VocabularyItem, pool []model.VocabularyItem) model.Question {
	if !g.speech {
		return g.AudioIdentify(item, pool)
	}
	source := item
	return model.Question{
		Type:     model.Speaking,
		Word:     item.Chinese,
		Chinese:  item.Chinese,
		Jyutping: item.Jyutping,
		English:  item.English,
		Picture:  orDefault(item.Icon, speakingPicture),
		Answer:   item.Chinese,
		Item:     &source,
	}
}

func (g *Generator) options(answer string, distractors []string) []string {
	opts := make([]string, 0, len(distractors)+1)
	opts = append(opts, answer)
	opts = append(opts, distractors...)
	g.Shuffle(opts)
	return opts
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
