// Package section assembles the question list of a quiz section.
package section

import (
	"log/slog"

	"github.com/verte-zerg/jyutquiz/internal/corpus"
	"github.com/verte-zerg/jyutquiz/internal/generator"
	"github.com/verte-zerg/jyutquiz/internal/model"
)

// Builder draws corpus items for a section and turns them into questions.
type Builder struct {
	gen    *generator.Generator
	corpus *corpus.Corpus
	log    *slog.Logger
}

// NewBuilder returns a Builder. A nil logger means slog.Default().
func NewBuilder(gen *generator.Generator, c *corpus.Corpus, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{gen: gen, corpus: c, log: log}
}

// Pool returns the items a section draws from, before shuffling.
func (b *Builder) Pool(cfg model.SectionConfig) []model.VocabularyItem {
	if cfg.Focus != "" {
		items := b.corpus.Collect(corpus.BasicCategories, nil)
		return corpus.Filter(items, corpus.FilterForFocus(cfg))
	}
	return b.corpus.Collect(cfg.Categories, cfg.CategorySlice)
}

// Build returns the shuffled questions of a section. It returns fewer
// questions than requested only when the pool is empty or a type is unknown.
func (b *Builder) Build(cfg model.SectionConfig) []model.Question {
	pool := b.Pool(cfg)
	if len(pool) == 0 {
		b.log.Warn("section has no vocabulary", "section", cfg.ID)
		return []model.Question{}
	}
	generator.Shuffle(b.gen, pool)

	dist := make(model.Distribution, 0, len(cfg.QuestionDistribution))
	for _, tc := range cfg.QuestionDistribution {
		if !tc.Type.Known() {
			b.log.Warn("unknown question type", "section", cfg.ID, "type", tc.Type)
			continue
		}
		dist = append(dist, tc)
	}
	total := dist.Total()
	if len(pool) < total {
		b.log.Warn("vocabulary smaller than questions needed, items may repeat",
			"section", cfg.ID, "vocabulary", len(pool), "needed", total)
	}

	d := newDrawer(b.gen, pool)
	questions := make([]model.Question, 0, total)
	for _, tc := range dist {
		for i := 0; i < tc.Count; i++ {
			q, _ := b.gen.Build(tc.Type, d.next(), d.pool)
			questions = append(questions, q)
		}
	}
	generator.Shuffle(b.gen, questions)
	return questions
}

// drawer walks the pool cyclically without repeating an item until the pool
// has been cycled once. Wraparound reshuffles the pool.
type drawer struct {
	gen    *generator.Generator
	pool   []model.VocabularyItem
	idx    int
	cycles int
	used   map[string]struct{}
}

func newDrawer(gen *generator.Generator, pool []model.VocabularyItem) *drawer {
	return &drawer{gen: gen, pool: pool, used: make(map[string]struct{}, len(pool))}
}

func (d *drawer) next() model.VocabularyItem {
	for attempts := 0; attempts < len(d.pool)*2; attempts++ {
		if d.idx >= len(d.pool) {
			d.idx = 0
			d.cycles++
			generator.Shuffle(d.gen, d.pool)
			if len(d.used) >= len(d.pool) {
				clear(d.used)
			}
		}
		item := d.pool[d.idx]
		d.idx++
		if _, seen := d.used[item.Chinese]; !seen || d.cycles > 0 {
			d.used[item.Chinese] = struct{}{}
			return item
		}
	}
	return d.pool[d.gen.Intn(len(d.pool))]
}
