// Package rank combines textual similarity, price fitness, social proof,
// attribute match and keyword hits into a single relevance score, with
// near-duplicate suppression. Filters only nudge rank; nothing here ever
// excludes a listing for failing to match.
package rank

import (
	"math"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"shopscout-engine/internal/domain"
)

// Weights is the linear blend over the five signals. The five base weights
// are expected to sum to 1.0; the keyword bonus is additive and capped.
type Weights struct {
	Similarity float64 `yaml:"similarity" json:"similarity"`
	Price      float64 `yaml:"price" json:"price"`
	Rating     float64 `yaml:"rating" json:"rating"`
	Reviews    float64 `yaml:"reviews" json:"reviews"`
	Attributes float64 `yaml:"attributes" json:"attributes"`
	KeywordHit float64 `yaml:"keyword_hit" json:"keyword_hit"`
	KeywordCap float64 `yaml:"keyword_cap" json:"keyword_cap"`
}

func DefaultWeights() Weights {
	return Weights{
		Similarity: 0.30,
		Price:      0.30,
		Rating:     0.18,
		Reviews:    0.10,
		Attributes: 0.12,
		KeywordHit: 0.03,
		KeywordCap: 0.15,
	}
}

// scoreCeiling bounds the final score; the base blend tops out near 1.0
// plus the keyword bonus, with headroom for tuned weight overrides.
const scoreCeiling = 1.6

type Scorer struct {
	W Weights
}

func NewScorer(w Weights) Scorer {
	return Scorer{W: w}
}

// Score is pure and total: every missing field degrades to its neutral
// contribution, never an error.
func (s Scorer) Score(l domain.Listing, c domain.Constraints, query string) float64 {
	titleLower := strings.ToLower(l.Title)

	sim := float64(fuzzy.TokenSetRatio(titleLower, strings.ToLower(query))) / 100.0

	rating := 0.0
	if l.Rating != nil {
		rating = *l.Rating / 5.0
	}
	reviews := 0.0
	if l.ReviewCount != nil {
		// saturates around 600+ reviews so volume never dominates linearly
		reviews = math.Tanh(float64(*l.ReviewCount) / 600.0)
	}

	bonus := 0.0
	for _, kw := range c.Keywords {
		if kw != "" && strings.Contains(titleLower, kw) {
			bonus += s.W.KeywordHit
		}
	}
	if bonus > s.W.KeywordCap {
		bonus = s.W.KeywordCap
	}

	total := s.W.Similarity*sim +
		s.W.Price*priceFitness(l, c) +
		s.W.Rating*rating +
		s.W.Reviews*reviews +
		s.W.Attributes*AttributeMatch(l, c) +
		bonus

	return clamp(total, 0.0, scoreCeiling)
}

// priceFitness rewards cheaper under-budget listings (floored at 0.25) and
// softly penalizes over-budget ones (floored at 0.05) so a near miss is not
// zeroed out. Unknown price or budget is neutral.
func priceFitness(l domain.Listing, c domain.Constraints) float64 {
	price, okP := l.PriceValue()
	budget, okB := c.BudgetValue()
	if !okP || !okB || price <= 0 || budget <= 0 {
		return 0.45
	}

	b := float64(budget)
	if price <= b {
		return math.Max(0.25, 1.0-(price/b)*0.6)
	}
	return math.Max(0.05, 1.0-((price-b)/b)*1.2)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
