// Package segment splits Cantonese text into dictionary tokens.
package segment

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var dictionary = []string{
	// Phrases.
	"唔好意思", "對唔住", "好高興", "認識你", "幾多錢", "幾多位",
	"可以去", "可以食", "可以飲", "可以睇", "可以玩",
	"食飽喇", "做完喇", "返嚟喇", "放學喇",
	"早晨老師", "聖誕快樂", "新年快樂", "生日快樂",
	"恭喜發財", "好高興認識你",
	// Words.
	"你好", "我哋", "你哋", "佢哋", "唔該", "多謝",
	"早晨", "晚安", "再見", "拜拜",
	"點解", "點樣", "邊度", "邊個", "幾時", "幾多",
	"乜嘢", "咩嘢", "呢個", "嗰個",
	"因為", "所以", "如果", "但係", "同埋", "或者", "然後", "仲有",
	"可以", "唔可以", "唔想", "好想", "鍾意", "唔鍾意",
	"老師", "同學", "朋友", "屋企", "學校", "餐廳", "廁所",
	"功課", "蛋糕", "雪糕", "禮物", "電視",
	"開心", "攰", "肚餓", "好靚",
	// Particles and single characters.
	"我", "你", "佢", "係", "有", "冇", "去", "嚟", "食", "飲",
	"睇", "聽", "講", "做", "玩", "瞓", "買", "賣", "俾", "攞",
	"想", "要", "愛", "好", "唔", "都", "又", "仲",
	"呀", "呢", "喇", "嘅", "咗", "緊", "過", "完",
}

// longestFirst is the dictionary ordered by descending rune length.
var longestFirst = sortLongestFirst(dictionary)

func sortLongestFirst(words []string) []string {
	out := append([]string(nil), words...)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}

// Segment tokenizes text by greedy longest match. Unknown characters become
// single-rune tokens; punctuation and whitespace are dropped.
func Segment(text string) []string {
	tokens := []string{}
	remaining := text
	for remaining != "" {
		matched := false
		for _, word := range longestFirst {
			if strings.HasPrefix(remaining, word) {
				tokens = append(tokens, word)
				remaining = remaining[len(word):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r, size := utf8.DecodeRuneInString(remaining)
		if !IsSeparator(r) {
			tokens = append(tokens, remaining[:size])
		}
		remaining = remaining[size:]
	}
	return tokens
}

// IsSeparator reports whether r is sentence punctuation or whitespace.
func IsSeparator(r rune) bool {
	switch r {
	case '，', '。', '！', '？', '、':
		return true
	}
	return unicode.IsSpace(r)
}

// StripSeparators removes every rune IsSeparator accepts.
func StripSeparators(text string) string {
	return strings.Map(func(r rune) rune {
		if IsSeparator(r) {
			return -1
		}
		return r
	}, text)
}
