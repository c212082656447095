// Package corpus loads the vocabulary corpus and the test catalog.
package corpus

import (
	_ "embed" // Embedded default data.
	"encoding/json"
	"fmt"
	"os"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

//go:embed data/vocabulary.json
var defaultVocabulary []byte

// Category is one named group of vocabulary items.
type Category struct {
	Key   string                 `json:"key"`
	Name  string                 `json:"name"`
	Items []model.VocabularyItem `json:"items"`
}

type vocabularyFile struct {
	Categories []Category `json:"categories"`
}

// Corpus is a read-only vocabulary catalog keyed by category.
type Corpus struct {
	categories []Category
	index      map[string]int
}

// New builds a Corpus from categories, keeping their order. Items are tagged
// with their category key.
func New(categories []Category) *Corpus {
	c := &Corpus{index: make(map[string]int, len(categories))}
	for _, cat := range categories {
		items := make([]model.VocabularyItem, len(cat.Items))
		for i, item := range cat.Items {
			item.Category = cat.Key
			items[i] = item
		}
		cat.Items = items
		if idx, ok := c.index[cat.Key]; ok {
			c.categories[idx].Items = append(c.categories[idx].Items, items...)
			continue
		}
		c.index[cat.Key] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c
}

// Default returns the embedded corpus.
func Default() (*Corpus, error) {
	return Parse(defaultVocabulary)
}

// Load reads a corpus JSON file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	return Parse(data)
}

// Parse decodes corpus JSON.
func Parse(data []byte) (*Corpus, error) {
	var file vocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return New(file.Categories), nil
}

// Marshal encodes categories in the corpus file format.
func Marshal(categories []Category) ([]byte, error) {
	return json.MarshalIndent(vocabularyFile{Categories: categories}, "", " ")
}

// Categories returns all categories in corpus order.
func (c *Corpus) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Name returns the display name of a category, or its key.
func (c *Corpus) Name(key string) string {
	if idx, ok := c.index[key]; ok && c.categories[idx].Name != "" {
		return c.categories[idx].Name
	}
	return key
}

// Items returns the items of a category. Unknown categories yield nil.
func (c *Corpus) Items(key string) []model.VocabularyItem {
	idx, ok := c.index[key]
	if !ok {
		return nil
	}
	return append([]model.VocabularyItem(nil), c.categories[idx].Items...)
}

// All returns every item in corpus order.
func (c *Corpus) All() []model.VocabularyItem {
	var out []model.VocabularyItem
	for _, cat := range c.categories {
		out = append(out, cat.Items...)
	}
	return out
}

// Collect gathers the items of keys in order, applying slice to each category.
func (c *Corpus) Collect(keys []string, slice *model.CategorySlice) []model.VocabularyItem {
	var out []model.VocabularyItem
	for _, key := range keys {
		items := c.Items(key)
		if r, ok := slice.Range(key); ok {
			items = clampSlice(items, r)
		}
		out = append(out, items...)
	}
	return out
}

func clampSlice(items []model.VocabularyItem, r model.IndexRange) []model.VocabularyItem {
	start, end := clampIndex(r[0], len(items)), clampIndex(r[1], len(items))
	if start >= end {
		return nil
	}
	return items[start:end]
}

// clampIndex resolves negative indexes from the end and bounds the result to [0,n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
