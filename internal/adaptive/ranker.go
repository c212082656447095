// Package adaptive reorders questions toward a learner's weak words.
package adaptive

import (
	"math/rand"
	"sort"
	"time"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/srs"
)

// DefaultPriorityRatio is the share of questions treated as priority.
const DefaultPriorityRatio = 0.3

// NeutralScore is the difficulty of a word without a record.
const NeutralScore = 50.0

// priorityEvery places a priority question at every third position.
const priorityEvery = 3

// Ranker interleaves the hardest questions through a shuffled remainder.
type Ranker struct {
	rnd *rand.Rand
}

// New returns a Ranker seeded with the current time.
func New() *Ranker {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Ranker drawing from rnd.
func NewWithRand(rnd *rand.Rand) *Ranker {
	return &Ranker{rnd: rnd}
}

// Score returns the difficulty of word in table, from 0 (easy) to about 100.
func Score(table model.PerformanceTable, word string) float64 {
	rec, ok := table[word]
	if !ok {
		return NeutralScore
	}
	easeScore := 100 - (rec.EaseFactor-1.3)*50
	return (easeScore + float64(100-srs.AccuracyPercent(rec))) / 2
}

// Rank returns a permutation of questions with the top ratio by difficulty
// spread through the rest. A nil table leaves the order unchanged.
func (r *Ranker) Rank(questions []model.Question, table model.PerformanceTable, ratio float64) []model.Question {
	out := append([]model.Question(nil), questions...)
	if table == nil || len(out) == 0 {
		return out
	}
	ratio = clampRatio(ratio)

	scores := make([]float64, len(out))
	order := make([]int, len(out))
	for i, q := range out {
		scores[i] = Score(table, q.Key())
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	numPriority := int(float64(len(out)) * ratio)
	priority := order[:numPriority]
	other := append([]int(nil), order[numPriority:]...)
	r.rnd.Shuffle(len(other), func(i, j int) { other[i], other[j] = other[j], other[i] })

	result := make([]model.Question, 0, len(out))
	p, o := 0, 0
	for i := 0; i < len(out); i++ {
		if p < len(priority) && (i%priorityEvery == 0 || o >= len(other)) {
			result = append(result, out[priority[p]])
			p++
		} else if o < len(other) {
			result = append(result, out[other[o]])
			o++
		}
	}
	return result
}

func clampRatio(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
